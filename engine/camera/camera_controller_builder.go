package camera

// CameraControllerOption configures a CameraController during construction.
// Bounds are applied after every option, so option order does not matter.
type CameraControllerOption func(*cameraControllerImpl)

// WithRadius sets the starting distance between camera and target.
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithAzimuth sets the starting heading around the Y axis.
//
// Parameters:
//   - azimuth: radians; 0 puts the camera on +Z of the target, looking north
//
// Returns:
//   - CameraControllerOption: an option applying the heading
func WithAzimuth(azimuth float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.azimuth = azimuth
	}
}

// WithElevation sets the starting angle above the ground plane, in radians.
func WithElevation(elevation float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.elevation = elevation
	}
}

// WithTarget sets the point the camera orbits and pans with.
//
// Parameters:
//   - x, y, z: target position in the space's local frame
//
// Returns:
//   - CameraControllerOption: an option applying the target
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}

// WithRadiusBounds limits how close and how far zooming can take the camera.
//
// Parameters:
//   - min: closest distance to the target
//   - max: farthest distance from the target
//
// Returns:
//   - CameraControllerOption: an option applying the bounds
func WithRadiusBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minRadius, cc.maxRadius = min, max
	}
}

// WithElevationBounds limits the orbit's vertical angle. Globe spaces allow negative
// elevations for the southern hemisphere; flat spaces keep the camera above the horizon.
//
// Parameters:
//   - min: lowest elevation in radians
//   - max: highest elevation in radians
//
// Returns:
//   - CameraControllerOption: an option applying the bounds
func WithElevationBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minElevation, cc.maxElevation = min, max
	}
}

// WithOrbitSpeed sets the radians turned per held-key orbit step. Non-positive values keep the default.
func WithOrbitSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if speed > 0 {
			cc.orbitSpeed = speed
		}
	}
}

// WithMouseSensitivity sets the radians turned per pixel of drag. Non-positive values keep the default.
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if sensitivity > 0 {
			cc.mouseSensitivity = sensitivity
		}
	}
}

// WithZoomSpeed sets the exponential zoom rate. A zoom delta of 1 scales the radius by exp(-speed).
//
// Parameters:
//   - speed: exponent per unit of zoom input
//
// Returns:
//   - CameraControllerOption: an option applying the rate
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed scales planar panning. Gesture strategies already scale pan deltas by the
// orbit radius, so the multiplier is relative to the current height. Non-positive values
// keep the default.
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if speed > 0 {
			cc.panSpeed = speed
		}
	}
}
