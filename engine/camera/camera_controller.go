package camera

import "github.com/Carmen-Shannon/oxy-map/engine/game_object"

// CameraController defines the union interface for camera rig control.
// A controller owns spherical state (target, radius, azimuth, elevation) and writes it onto
// a pivot/camera rig: the pivot sits at the target rotated by (-elevation, azimuth, 0) and the
// camera sits on the pivot's local +Z axis at the orbit radius. Orbit and planar controls work
// simultaneously from a single controller instance.
type CameraController interface {
	orbitCameraController
	planarCameraController

	// Position returns the camera's world-space position derived from the spherical state.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Zoom scales the orbit radius exponentially so each step covers the same visual distance
	// at any height. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// ReadRig loads the spherical state from a pivot and its camera transform.
	// The target is taken from the pivot position, azimuth and elevation from the pivot
	// rotation, and the radius from the camera's local Z offset. Bounds are applied.
	//
	// Parameters:
	//   - pivot: the rig pivot
	//   - cam: the camera transform parented to the pivot
	ReadRig(pivot, cam game_object.GameObject)

	// WriteRig applies the spherical state onto a pivot and its camera transform.
	//
	// Parameters:
	//   - pivot: the rig pivot
	//   - cam: the camera transform parented to the pivot
	WriteRig(pivot, cam game_object.GameObject)
}

// orbitCameraController defines orbit-specific control methods.
// Provides orbit controls using spherical coordinates (radius, azimuth, elevation)
// relative to the target/pivot point.
type orbitCameraController interface {
	// OrbitLeft rotates the camera left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Orbit applies a mouse drag to azimuth and elevation, scaled by MouseSensitivity.
	//
	// Parameters:
	//   - dx: horizontal drag in pixels
	//   - dy: vertical drag in pixels
	Orbit(dx, dy float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)
}

// planarCameraController defines planar translation control methods.
// Panning shifts both position and target by the same offset, preserving the orbit relationship.
type planarCameraController interface {
	// PanRight translates the target along the camera's horizontal right axis.
	// Positive delta moves right, negative moves left.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanRight(delta float32)

	// PanUp translates the target along world +Y. Positive delta moves up.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanUp(delta float32)

	// PanForward translates the target along the camera's heading projected onto the ground plane.
	// Positive delta moves away from the camera.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanForward(delta float32)
}
