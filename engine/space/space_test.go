package space

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/animator"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
	"github.com/Carmen-Shannon/oxy-map/engine/gesture"
)

// callLog records collaborator calls across spies in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

type spyTiles struct {
	log        *callLog
	pivot      game_object.GameObject
	fov        float32
	targets    []game_object.GameObject
	disposed   int
	disposeErr error
}

func (t *spyTiles) Pivot() game_object.GameObject { return t.pivot }
func (t *spyTiles) FieldOfView() float32          { return t.fov }

func (t *spyTiles) Update(target game_object.GameObject) {
	t.log.add("tiles.Update")
	t.targets = append(t.targets, target)
}

func (t *spyTiles) Dispose() error {
	t.log.add("tiles.Dispose")
	t.disposed++
	return t.disposeErr
}

type spyAnimator struct {
	log       *callLog
	deltas    []float32
	cancelled int
	animating bool
}

func (a *spyAnimator) Update(deltaTime float32) {
	a.log.add("animator.Update")
	a.deltas = append(a.deltas, deltaTime)
}

func (a *spyAnimator) Cancel() {
	a.log.add("animator.Cancel")
	a.cancelled++
	a.animating = false
}

func (a *spyAnimator) Animating() bool { return a.animating }

// rigSnapshot is the rig as the entry hook observed it.
type rigSnapshot struct {
	targetEnabled bool
	fov           float32
	pivotPos      [3]float32
	pivotRot      [3]float32
	cameraPos     [3]float32
	cameraRot     [3]float32
	lightPos      [3]float32
	lightRot      [3]float32
}

type enterCall struct {
	coord     common.GeoCoordinate
	isFromTop bool
	rig       rigSnapshot
}

type spyVariant struct {
	log   *callLog
	rig   Rig
	anim  animator.SpaceAnimator
	enter []enterCall
	// targetEnabledOnExit records the container state OnExit observed.
	targetEnabledOnExit []bool
}

func (v *spyVariant) OnEnter(coord common.GeoCoordinate, isFromTop bool) {
	v.log.add("variant.OnEnter")
	pos := func(o game_object.GameObject) [3]float32 {
		x, y, z := o.Position()
		return [3]float32{x, y, z}
	}
	rot := func(o game_object.GameObject) [3]float32 {
		x, y, z := o.Rotation()
		return [3]float32{x, y, z}
	}
	v.enter = append(v.enter, enterCall{
		coord:     coord,
		isFromTop: isFromTop,
		rig: rigSnapshot{
			targetEnabled: v.rig.Target.Enabled(),
			fov:           v.rig.Camera.Fov(),
			pivotPos:      pos(v.rig.Pivot),
			pivotRot:      rot(v.rig.Pivot),
			cameraPos:     pos(v.rig.Camera.Transform()),
			cameraRot:     rot(v.rig.Camera.Transform()),
			lightPos:      pos(v.rig.Light.Transform()),
			lightRot:      rot(v.rig.Light.Transform()),
		},
	})
}

func (v *spyVariant) OnExit() {
	v.log.add("variant.OnExit")
	v.targetEnabledOnExit = append(v.targetEnabledOnExit, v.rig.Target.Enabled())
}

func (v *spyVariant) Animator() animator.SpaceAnimator { return v.anim }

type spyGestures struct {
	log     *callLog
	applied []float32
	resets  int
}

func (g *spyGestures) Controller() camera.CameraController { return nil }
func (g *spyGestures) OnKey(int, bool)                     {}
func (g *spyGestures) OnScroll(float32)                    {}
func (g *spyGestures) OnDrag(float32, float32)             {}
func (g *spyGestures) Capture()                            { g.log.add("gestures.Capture") }

func (g *spyGestures) Apply(deltaTime float32) bool {
	g.log.add("gestures.Apply")
	g.applied = append(g.applied, deltaTime)
	return false
}

func (g *spyGestures) Reset() { g.resets++ }

var _ gesture.GestureStrategy = &spyGestures{}

// fixture is a space wired to spies.
type fixture struct {
	log      *callLog
	rig      Rig
	tiles    *spyTiles
	anim     *spyAnimator
	variant  *spyVariant
	gestures *spyGestures
	space    Space
}

func newFixture(t *testing.T, name string) *fixture {
	t.Helper()
	log := &callLog{}
	rig := NewRig(name)
	f := &fixture{
		log:      log,
		rig:      rig,
		tiles:    &spyTiles{log: log, pivot: rig.Pivot, fov: 60},
		anim:     &spyAnimator{log: log},
		gestures: &spyGestures{log: log},
	}
	f.variant = &spyVariant{log: log, rig: rig, anim: f.anim}

	s, err := New(rig, f.tiles, f.gestures, f.variant, WithName(name))
	require.NoError(t, err)
	f.space = s
	return f
}

func TestSpace_Scenario(t *testing.T) {
	f := newFixture(t, "globe")
	coord := common.NewGeoCoordinate(52.52, 13.405)

	assert.Equal(t, StateInactive, f.space.State())
	assert.False(t, f.rig.Target.Enabled())

	require.NoError(t, f.space.EnterTop(coord))
	assert.Equal(t, StateActive, f.space.State())
	assert.True(t, f.rig.Target.Enabled())
	assert.Equal(t, float32(60), f.rig.Camera.Fov())
	require.Len(t, f.variant.enter, 1)
	assert.Equal(t, coord, f.variant.enter[0].coord)
	assert.True(t, f.variant.enter[0].isFromTop)

	f.log.calls = nil
	require.NoError(t, f.space.Update(0.016))
	assert.Equal(t, []float32{0.016}, f.anim.deltas)
	require.Len(t, f.tiles.targets, 1)
	assert.Equal(t, f.rig.Target, f.tiles.targets[0])
	assert.Equal(t, []string{"animator.Update", "tiles.Update"}, f.log.calls)

	f.log.calls = nil
	require.NoError(t, f.space.Leave())
	assert.Equal(t, 1, f.anim.cancelled)
	assert.Equal(t, 1, f.tiles.disposed)
	assert.False(t, f.rig.Target.Enabled())
	assert.Equal(t, StateInactive, f.space.State())
	assert.Equal(t, []string{"animator.Cancel", "tiles.Dispose", "variant.OnExit"}, f.log.calls)
	assert.Equal(t, []bool{false}, f.variant.targetEnabledOnExit)
}

func TestSpace_EnterResetsRigBeforeHook(t *testing.T) {
	f := newFixture(t, "surface")
	f.tiles.fov = 45
	f.rig.Camera.SetFov(90)
	f.rig.Pivot.SetPosition(1, 2, 3)
	f.rig.Pivot.SetRotation(0.1, 0.2, 0.3)
	f.rig.Camera.Transform().SetPosition(0, 0, 500)
	f.rig.Camera.Transform().SetRotation(1, 0, 0)
	f.rig.Light.Transform().SetPosition(4, 5, 6)
	f.rig.Light.Transform().SetRotation(0, 1, 0)

	require.NoError(t, f.space.EnterBottom(common.NewGeoCoordinate(-33.86, 151.2)))

	require.Len(t, f.variant.enter, 1)
	call := f.variant.enter[0]
	assert.False(t, call.isFromTop)
	assert.Equal(t, rigSnapshot{targetEnabled: true, fov: 45}, call.rig)
	assert.Equal(t, float32(45), f.rig.Camera.Fov())
}

func TestSpace_ResetKeepsScale(t *testing.T) {
	f := newFixture(t, "detail")
	f.rig.Pivot.SetScale(2, 2, 2)
	require.NoError(t, f.space.EnterTop(common.GeoCoordinate{}))

	sx, sy, sz := f.rig.Pivot.Scale()
	assert.Equal(t, [3]float32{2, 2, 2}, [3]float32{sx, sy, sz})
}

func TestSpace_OutOfOrderCalls(t *testing.T) {
	f := newFixture(t, "globe")

	require.ErrorIs(t, f.space.Update(0.016), ErrNotActive)
	require.ErrorIs(t, f.space.Leave(), ErrNotActive)
	assert.Empty(t, f.log.calls, "no collaborator is touched while inactive")

	require.NoError(t, f.space.EnterTop(common.GeoCoordinate{}))
	require.ErrorIs(t, f.space.EnterTop(common.GeoCoordinate{}), ErrAlreadyActive)
	require.ErrorIs(t, f.space.EnterBottom(common.GeoCoordinate{}), ErrAlreadyActive)
	assert.Len(t, f.variant.enter, 1)

	require.ErrorIs(t, f.space.Update(-1), ErrNegativeDelta)
	assert.Empty(t, f.anim.deltas)

	require.NoError(t, f.space.Leave())
	require.ErrorIs(t, f.space.Leave(), ErrNotActive)
	assert.Equal(t, 1, f.tiles.disposed)
	assert.Equal(t, 1, f.anim.cancelled)
}

func TestSpace_UpdateAcceptsZeroDelta(t *testing.T) {
	f := newFixture(t, "globe")
	require.NoError(t, f.space.EnterTop(common.GeoCoordinate{}))
	require.NoError(t, f.space.Update(0))
	assert.Equal(t, []float32{0}, f.anim.deltas)
}

func TestSpace_LeavePropagatesDisposeError(t *testing.T) {
	f := newFixture(t, "globe")
	errDispose := errors.New("tile cache locked")
	f.tiles.disposeErr = errDispose

	require.NoError(t, f.space.EnterTop(common.GeoCoordinate{}))
	err := f.space.Leave()
	assert.Equal(t, errDispose, err, "disposal errors propagate unchanged")

	// The transition still completes.
	assert.Equal(t, StateInactive, f.space.State())
	assert.False(t, f.rig.Target.Enabled())
	assert.Len(t, f.variant.targetEnabledOnExit, 1)
}

func TestSpace_DisposeWithoutLeave(t *testing.T) {
	f := newFixture(t, "globe")
	require.NoError(t, f.space.Dispose())
	assert.Equal(t, 1, f.tiles.disposed)

	require.NoError(t, f.space.EnterTop(common.GeoCoordinate{}))
	require.NoError(t, f.space.Dispose())
	assert.Equal(t, 2, f.tiles.disposed)
	assert.Zero(t, f.anim.cancelled, "dispose is not a leave")

	f.tiles.disposeErr = errors.New("busy")
	assert.Equal(t, f.tiles.disposeErr, f.space.Dispose())
}

func TestSpace_Reenter(t *testing.T) {
	f := newFixture(t, "surface")
	coord := common.NewGeoCoordinate(10, 20)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.space.EnterTop(coord))
		require.NoError(t, f.space.Update(0.1))
		require.NoError(t, f.space.Leave())
	}
	assert.Len(t, f.variant.enter, 3)
	assert.Equal(t, 3, f.tiles.disposed)
	assert.Len(t, f.tiles.targets, 3)
}

func TestSpace_Accessors(t *testing.T) {
	f := newFixture(t, "globe")
	assert.Equal(t, "globe", f.space.Name())
	assert.Equal(t, f.tiles, f.space.TileController())
	assert.Equal(t, f.gestures, f.space.Gestures())
	assert.Equal(t, f.anim, f.space.Animator())
	assert.Equal(t, f.rig.Target, f.space.Target())
	assert.Equal(t, f.rig.Pivot, f.space.Pivot())
	assert.Equal(t, f.rig.Camera, f.space.Camera())
	assert.Equal(t, f.rig.Light, f.space.Light())
	assert.Equal(t, "active", StateActive.String())
}

func TestNew_MissingHandles(t *testing.T) {
	log := &callLog{}

	tests := []struct {
		name   string
		mutate func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant)
	}{
		{
			name: "no target",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				rig.Target = nil
				return &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "no camera",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				rig.Camera = nil
				return &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "no light",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				rig.Light = nil
				return &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "no pivot",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				rig.Pivot = nil
				tiles.pivot = nil
				return &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "camera outside pivot",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				rig.Camera.Transform().SetParent(rig.Target)
				return &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "light outside pivot",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				rig.Light.Transform().SetParent(nil)
				return &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "pivot mismatch",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				tiles.pivot = game_object.NewGameObject()
				return &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "no gestures",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				return nil, &spyVariant{log: log, anim: &spyAnimator{log: log}}
			},
		},
		{
			name: "no variant",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				return &spyGestures{log: log}, nil
			},
		},
		{
			name: "no animator",
			mutate: func(rig *Rig, tiles *spyTiles) (gesture.GestureStrategy, Variant) {
				return &spyGestures{log: log}, &spyVariant{log: log}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := NewRig("target")
			tiles := &spyTiles{log: log, pivot: rig.Pivot, fov: 60}
			g, v := tt.mutate(&rig, tiles)

			s, err := New(rig, tiles, g, v)
			require.ErrorIs(t, err, ErrMissingHandle)
			assert.Nil(t, s)
		})
	}

	t.Run("no tile controller", func(t *testing.T) {
		s, err := New(NewRig("target"), nil, &spyGestures{log: log}, &spyVariant{log: log, anim: &spyAnimator{log: log}})
		require.ErrorIs(t, err, ErrMissingHandle)
		assert.Nil(t, s)
	})
}
