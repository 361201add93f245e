package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

// cameraControllerImpl is the single implementation of CameraController.
// Orbit methods modify spherical coordinates; planar methods translate the target
// along the ground-projected camera axes, preserving the orbit relationship.
type cameraControllerImpl struct {
	mu *sync.Mutex

	target [3]float32

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with map-friendly defaults:
// a 1 km orbit looking steeply down, radius bounded between 10 m and 40,000 km.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		radius:    1000.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 3),

		minRadius:    10.0,
		maxRadius:    4e7,
		minElevation: 0.05,
		maxElevation: float32(math.Pi/2 - 0.001),

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.1,
		panSpeed:         1.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clamp()
	return cc
}

// --- internal helpers ---

// clamp applies radius and elevation bounds.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clamp() {
	cc.radius = common.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.elevation = common.Clamp(cc.elevation, cc.minElevation, cc.maxElevation)
}

// position computes the camera position from the target and spherical coordinates.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) position() [3]float32 {
	cosElev := float32(math.Cos(float64(cc.elevation)))
	sinElev := float32(math.Sin(float64(cc.elevation)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))

	return [3]float32{
		cc.target[0] + cc.radius*cosElev*sinAzim,
		cc.target[1] + cc.radius*sinElev,
		cc.target[2] + cc.radius*cosElev*cosAzim,
	}
}

// groundAxes returns the camera's heading (away from the camera) and right vectors
// projected onto the XZ plane. Both are unit length.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) groundAxes() (forward, right [3]float32) {
	sinAzim := float32(math.Sin(float64(cc.azimuth)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	forward = [3]float32{-sinAzim, 0, -cosAzim}
	right = [3]float32{cosAzim, 0, -sinAzim}
	return
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	p := cc.position()
	return p[0], p[1], p[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius *= float32(math.Exp(float64(-delta * cc.zoomSpeed)))
	cc.clamp()
}

func (cc *cameraControllerImpl) ReadRig(pivot, cam game_object.GameObject) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	x, y, z := pivot.Position()
	rx, ry, _ := pivot.Rotation()
	_, _, cz := cam.Position()

	cc.target = [3]float32{x, y, z}
	cc.elevation = -rx
	cc.azimuth = ry
	cc.radius = cz
	cc.clamp()
}

func (cc *cameraControllerImpl) WriteRig(pivot, cam game_object.GameObject) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	pivot.SetPosition(cc.target[0], cc.target[1], cc.target[2])
	pivot.SetRotation(-cc.elevation, cc.azimuth, 0)
	cam.SetPosition(0, 0, cc.radius)
	cam.SetRotation(0, 0, 0)
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += cc.orbitSpeed
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation += cc.orbitSpeed
	cc.clamp()
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation -= cc.orbitSpeed
	cc.clamp()
}

func (cc *cameraControllerImpl) Orbit(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= dx * cc.mouseSensitivity
	cc.elevation += dy * cc.mouseSensitivity
	cc.clamp()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clamp()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = elevation
	cc.clamp()
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) PanRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, right := cc.groundAxes()
	offset := delta * cc.panSpeed
	cc.target[0] += right[0] * offset
	cc.target[2] += right[2] * offset
}

func (cc *cameraControllerImpl) PanUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target[1] += delta * cc.panSpeed
}

func (cc *cameraControllerImpl) PanForward(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	forward, _ := cc.groundAxes()
	offset := delta * cc.panSpeed
	cc.target[0] += forward[0] * offset
	cc.target[2] += forward[2] * offset
}
