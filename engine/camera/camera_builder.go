package camera

import "github.com/Carmen-Shannon/oxy-map/engine/game_object"

// CameraBuilderOption configures a camera during construction.
type CameraBuilderOption func(*cameraImpl)

// WithFov sets the vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: an option applying the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the viewport aspect ratio (width / height). Non-positive values keep the default.
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithNear sets the near clipping distance. Non-positive values keep the default, so a
// zero from configuration leaves the camera untouched.
//
// Parameters:
//   - near: near plane distance in scene units
//
// Returns:
//   - CameraBuilderOption: an option applying the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if near > 0 {
			c.near = near
		}
	}
}

// WithFar sets the far clipping distance. Non-positive values keep the default.
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if far > 0 {
			c.far = far
		}
	}
}

// WithTransform places the camera on an existing scene handle instead of a new one.
//
// Parameters:
//   - transform: the GameObject positioning the camera
//
// Returns:
//   - CameraBuilderOption: an option applying the transform
func WithTransform(transform game_object.GameObject) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.transform = transform
	}
}
