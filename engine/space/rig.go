package space

import (
	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/config"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
	"github.com/Carmen-Shannon/oxy-map/engine/light"
	"github.com/Carmen-Shannon/oxy-map/engine/tiling"
)

// Rig groups the scene handles a space borrows. The camera and light hang from the pivot,
// which hangs from the target container:
//
//	Target
//	└── Pivot
//	    ├── Camera
//	    └── Directional Light
type Rig struct {
	Target game_object.GameObject
	// Pivot may be left nil; spaces use the tile controller's pivot.
	Pivot  game_object.GameObject
	Camera camera.Camera
	Light  light.Light
}

// NewRig builds a rig under a new target container. The target starts disabled.
//
// Parameters:
//   - name: the target container name
//   - cameraOptions: functional options for the camera
//
// Returns:
//   - Rig: the new rig
func NewRig(name string, cameraOptions ...camera.CameraBuilderOption) Rig {
	target := game_object.NewGameObject(game_object.WithName(name), game_object.WithEnabled(false))
	pivot := game_object.NewGameObject(game_object.WithName("Pivot"), game_object.WithParent(target))

	cam := camera.NewCamera(cameraOptions...)
	cam.Transform().SetParent(pivot)

	lt := light.NewDirectionalLight(light.WithTransform(
		game_object.NewGameObject(game_object.WithName("Directional Light"), game_object.WithParent(pivot)),
	))

	return Rig{Target: target, Pivot: pivot, Camera: cam, Light: lt}
}

// validate checks the rig against the tile controller and returns the pivot to use.
func (r Rig) validate(tiles tiling.TileController) (game_object.GameObject, error) {
	if r.Target == nil {
		return nil, errors.Wrap(ErrMissingHandle, "target container")
	}
	if r.Camera == nil {
		return nil, errors.Wrap(ErrMissingHandle, "camera")
	}
	if r.Light == nil {
		return nil, errors.Wrap(ErrMissingHandle, "light")
	}
	if tiles == nil {
		return nil, errors.Wrap(ErrMissingHandle, "tile controller")
	}

	pivot := tiles.Pivot()
	if pivot == nil {
		return nil, errors.Wrap(ErrMissingHandle, "pivot")
	}
	if r.Pivot != nil && r.Pivot != pivot {
		return nil, errors.Wrap(ErrMissingHandle, "rig pivot differs from the tile controller's pivot")
	}
	if r.Camera.Transform().Parent() != pivot {
		return nil, errors.Wrap(ErrMissingHandle, "camera is not a child of the pivot")
	}
	if r.Light.Transform().Parent() != pivot {
		return nil, errors.Wrap(ErrMissingHandle, "light is not a child of the pivot")
	}
	return pivot, nil
}

// applySun colors the rig's light. A zero config leaves the light as it is.
func (r Rig) applySun(sun config.SunConfig) {
	if sun == (config.SunConfig{}) {
		return
	}
	r.Light.SetColor(sun.Color[0], sun.Color[1], sun.Color[2])
	r.Light.SetIntensity(sun.Intensity)
}

// controlOptions maps configured gesture speeds onto controller options.
func controlOptions(c config.ControlsConfig) []camera.CameraControllerOption {
	return []camera.CameraControllerOption{
		camera.WithOrbitSpeed(c.OrbitSpeed),
		camera.WithMouseSensitivity(c.MouseSensitivity),
		camera.WithPanSpeed(c.PanSpeed),
	}
}
