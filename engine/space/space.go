package space

import (
	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/animator"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
	"github.com/Carmen-Shannon/oxy-map/engine/gesture"
	"github.com/Carmen-Shannon/oxy-map/engine/light"
	"github.com/Carmen-Shannon/oxy-map/engine/logger"
	"github.com/Carmen-Shannon/oxy-map/engine/tiling"
)

var (
	// ErrMissingHandle is returned by New when a scene handle or collaborator is absent
	// or the camera and light are not parented to the tile controller's pivot.
	ErrMissingHandle = errors.New("missing scene handle")
	// ErrAlreadyActive is returned by EnterTop and EnterBottom on an active space.
	ErrAlreadyActive = errors.New("space is already active")
	// ErrNotActive is returned by Update and Leave on an inactive space.
	ErrNotActive = errors.New("space is not active")
	// ErrNegativeDelta is returned by Update for a negative frame time.
	ErrNegativeDelta = errors.New("negative delta time")
)

// State is the lifecycle state of a Space.
type State int

const (
	StateInactive State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Variant is implemented by each kind of space (globe, surface, detail) and supplies
// what differs between them.
type Variant interface {
	// OnEnter frames the coordinate. It runs after the rig was reset to the canonical frame,
	// so it only expresses deltas from the origin.
	//
	// Parameters:
	//   - coord: the coordinate to frame
	//   - isFromTop: true when arriving from the space above, false when arriving from below
	OnEnter(coord common.GeoCoordinate, isFromTop bool)

	// OnExit runs last in Leave, after the target container was deactivated.
	OnExit()

	// Animator returns the animator owned by the variant.
	//
	// Returns:
	//   - animator.SpaceAnimator: the variant's animator
	Animator() animator.SpaceAnimator
}

// Space is one view mode of the map viewer. It owns a tile controller, a gesture strategy
// and the animator supplied by its variant; it borrows the rig's scene handles.
//
// A space is either inactive or active. EnterTop and EnterBottom activate it, Update advances
// it once per frame while active and Leave deactivates it. Out-of-order calls return
// ErrAlreadyActive or ErrNotActive and leave every collaborator untouched. Dispose is
// independent of the state and releases the tile controller's resources.
//
// A space is driven from a single goroutine.
type Space interface {
	// Name returns the name the space logs with.
	//
	// Returns:
	//   - string: the space name
	Name() string

	// State returns the current lifecycle state.
	//
	// Returns:
	//   - State: inactive or active
	State() State

	// TileController returns the owned tile controller.
	//
	// Returns:
	//   - tiling.TileController: the tile controller
	TileController() tiling.TileController

	// Gestures returns the owned gesture strategy. The space never invokes it.
	//
	// Returns:
	//   - gesture.GestureStrategy: the gesture strategy
	Gestures() gesture.GestureStrategy

	// Animator returns the variant's animator.
	//
	// Returns:
	//   - animator.SpaceAnimator: the animator
	Animator() animator.SpaceAnimator

	// Target returns the container the space's tiles live in.
	//
	// Returns:
	//   - game_object.GameObject: the target container
	Target() game_object.GameObject

	// Pivot returns the rig pivot, taken from the tile controller.
	//
	// Returns:
	//   - game_object.GameObject: the pivot
	Pivot() game_object.GameObject

	// Camera returns the camera parented to the pivot.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Light returns the directional light parented to the pivot.
	//
	// Returns:
	//   - light.Light: the light
	Light() light.Light

	// EnterTop activates the space arriving from the space above it.
	//
	// Parameters:
	//   - coord: the coordinate to frame
	//
	// Returns:
	//   - error: ErrAlreadyActive if the space is active
	EnterTop(coord common.GeoCoordinate) error

	// EnterBottom activates the space arriving from the space below it.
	//
	// Parameters:
	//   - coord: the coordinate to frame
	//
	// Returns:
	//   - error: ErrAlreadyActive if the space is active
	EnterBottom(coord common.GeoCoordinate) error

	// Update advances the animator by deltaTime, then refreshes the tile controller against
	// the target container.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds (non-negative)
	//
	// Returns:
	//   - error: ErrNotActive if inactive, ErrNegativeDelta for a negative deltaTime
	Update(deltaTime float32) error

	// Leave cancels the animation, disposes the tile controller, deactivates the target
	// container and runs the variant's exit hook, in that order. The space is inactive
	// afterwards even if disposal failed.
	//
	// Returns:
	//   - error: ErrNotActive if inactive, otherwise the tile controller's disposal error
	Leave() error

	// Dispose releases the tile controller's resources. It does not require a prior Leave.
	//
	// Returns:
	//   - error: the tile controller's disposal error
	Dispose() error
}

type spaceImpl struct {
	name     string
	state    State
	variant  Variant
	tiles    tiling.TileController
	gestures gesture.GestureStrategy

	target game_object.GameObject
	pivot  game_object.GameObject
	camera camera.Camera
	light  light.Light
}

var _ Space = &spaceImpl{}

// New creates an inactive Space over a rig. The pivot is taken from tiles; the rig's camera
// and light must be parented to it.
//
// Parameters:
//   - rig: the scene handles the space borrows
//   - tiles: the tile controller the space owns
//   - gestures: the gesture strategy the space owns
//   - variant: the variant supplying entry/exit hooks and the animator
//   - options: functional options to configure the space
//
// Returns:
//   - Space: the newly created space
//   - error: a wrapped ErrMissingHandle naming the absent or misplaced handle
func New(rig Rig, tiles tiling.TileController, gestures gesture.GestureStrategy, variant Variant, options ...SpaceBuilderOption) (Space, error) {
	pivot, err := rig.validate(tiles)
	if err != nil {
		return nil, err
	}
	if gestures == nil {
		return nil, errors.Wrap(ErrMissingHandle, "gesture strategy")
	}
	if variant == nil {
		return nil, errors.Wrap(ErrMissingHandle, "variant")
	}
	if variant.Animator() == nil {
		return nil, errors.Wrap(ErrMissingHandle, "animator")
	}

	s := &spaceImpl{
		name:     "space",
		state:    StateInactive,
		variant:  variant,
		tiles:    tiles,
		gestures: gestures,
		target:   rig.Target,
		pivot:    pivot,
		camera:   rig.Camera,
		light:    rig.Light,
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

func (s *spaceImpl) Name() string {
	return s.name
}

func (s *spaceImpl) State() State {
	return s.state
}

func (s *spaceImpl) TileController() tiling.TileController {
	return s.tiles
}

func (s *spaceImpl) Gestures() gesture.GestureStrategy {
	return s.gestures
}

func (s *spaceImpl) Animator() animator.SpaceAnimator {
	return s.variant.Animator()
}

func (s *spaceImpl) Target() game_object.GameObject {
	return s.target
}

func (s *spaceImpl) Pivot() game_object.GameObject {
	return s.pivot
}

func (s *spaceImpl) Camera() camera.Camera {
	return s.camera
}

func (s *spaceImpl) Light() light.Light {
	return s.light
}

func (s *spaceImpl) EnterTop(coord common.GeoCoordinate) error {
	return s.enter(coord, true)
}

func (s *spaceImpl) EnterBottom(coord common.GeoCoordinate) error {
	return s.enter(coord, false)
}

func (s *spaceImpl) enter(coord common.GeoCoordinate, isFromTop bool) error {
	if s.state == StateActive {
		return errors.Wrapf(ErrAlreadyActive, "enter %s", s.name)
	}
	logger.Debugf("space %s: enter at %s (from top: %t)", s.name, coord, isFromTop)

	s.setDefaults()
	s.state = StateActive
	s.variant.OnEnter(coord, isFromTop)
	return nil
}

// setDefaults activates the target and puts the rig in the canonical frame.
func (s *spaceImpl) setDefaults() {
	s.target.SetEnabled(true)

	s.camera.Transform().ResetTransform()
	s.pivot.ResetTransform()
	s.light.Transform().ResetTransform()

	s.camera.SetFov(s.tiles.FieldOfView())
	s.camera.Update()
}

func (s *spaceImpl) Update(deltaTime float32) error {
	if s.state != StateActive {
		return errors.Wrapf(ErrNotActive, "update %s", s.name)
	}
	if deltaTime < 0 {
		return errors.Wrapf(ErrNegativeDelta, "update %s with %v", s.name, deltaTime)
	}

	s.variant.Animator().Update(deltaTime)
	s.tiles.Update(s.target)
	s.camera.Update()
	return nil
}

func (s *spaceImpl) Leave() error {
	if s.state != StateActive {
		return errors.Wrapf(ErrNotActive, "leave %s", s.name)
	}
	logger.Debugf("space %s: leave", s.name)

	s.variant.Animator().Cancel()
	err := s.tiles.Dispose()
	s.target.SetEnabled(false)
	s.state = StateInactive

	s.variant.OnExit()
	return err
}

func (s *spaceImpl) Dispose() error {
	return s.tiles.Dispose()
}
