package gesture

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

// GestureStrategy translates raw user input into camera rig motion for one view space.
//
// Input callbacks (OnKey, OnScroll, OnDrag) may arrive from the window thread; they only
// record input. Apply consumes the recorded input on the frame thread, drives the camera
// controller and writes the result onto the pivot/camera rig.
type GestureStrategy interface {
	// Controller returns the camera controller driven by this strategy.
	//
	// Returns:
	//   - camera.CameraController: the driven controller
	Controller() camera.CameraController

	// OnKey records a key press or release. Key codes are the values in common/key_codes.go;
	// arrow keys act as WASD and =/- zoom while held.
	//
	// Parameters:
	//   - key: the key code
	//   - pressed: true on press, false on release
	OnKey(key int, pressed bool)

	// OnScroll accumulates scroll input until the next Apply. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: scroll amount in wheel steps
	OnScroll(delta float32)

	// OnDrag accumulates pointer drag input until the next Apply.
	//
	// Parameters:
	//   - dx, dy: drag distance in pixels
	OnDrag(dx, dy float32)

	// Capture loads the controller state from the current rig. Call it after anything other
	// than this strategy moved the rig (entry framing, animations).
	Capture()

	// Apply consumes the recorded input for a frame.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	//
	// Returns:
	//   - bool: true if the rig was moved
	Apply(deltaTime float32) bool

	// Reset releases all held keys and drops pending scroll and drag input.
	Reset()
}

// input is the input recorded between two Apply calls.
type input struct {
	held   map[int]bool
	scroll float32
	dragX  float32
	dragY  float32
}

// keyZoomRate is the zoom applied per second while a zoom key is held, in scroll steps.
const keyZoomRate = 10

// keyAliases maps the arrow keys onto the WASD actions.
var keyAliases = map[int]int{
	common.KeyUp:    common.KeyW,
	common.KeyLeft:  common.KeyA,
	common.KeyDown:  common.KeyS,
	common.KeyRight: common.KeyD,
}

// gestures holds what orbit and planar strategies share. handle applies one frame of input
// to the controller and reports whether anything changed.
type gestures struct {
	mu *sync.Mutex

	ctrl  camera.CameraController
	pivot game_object.GameObject
	cam   game_object.GameObject

	in     input
	handle func(in input, deltaTime float32) bool
}

func newGestures(ctrl camera.CameraController, pivot, cam game_object.GameObject) *gestures {
	return &gestures{
		mu:    &sync.Mutex{},
		ctrl:  ctrl,
		pivot: pivot,
		cam:   cam,
		in:    input{held: make(map[int]bool)},
	}
}

func (g *gestures) Controller() camera.CameraController {
	return g.ctrl
}

func (g *gestures) OnKey(key int, pressed bool) {
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if pressed {
		g.in.held[key] = true
		return
	}
	delete(g.in.held, key)
}

func (g *gestures) OnScroll(delta float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.in.scroll += delta
}

func (g *gestures) OnDrag(dx, dy float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.in.dragX += dx
	g.in.dragY += dy
}

func (g *gestures) Capture() {
	g.ctrl.ReadRig(g.pivot, g.cam)
}

func (g *gestures) Apply(deltaTime float32) bool {
	g.mu.Lock()
	snapshot := input{
		held:   make(map[int]bool, len(g.in.held)),
		scroll: g.in.scroll,
		dragX:  g.in.dragX,
		dragY:  g.in.dragY,
	}
	for k, v := range g.in.held {
		snapshot.held[k] = v
	}
	g.in.scroll, g.in.dragX, g.in.dragY = 0, 0, 0
	g.mu.Unlock()

	if snapshot.held[common.KeyEqual] {
		snapshot.scroll += keyZoomRate * deltaTime
	}
	if snapshot.held[common.KeyMinus] {
		snapshot.scroll -= keyZoomRate * deltaTime
	}

	moved := g.handle(snapshot, deltaTime)
	if snapshot.scroll != 0 {
		g.ctrl.Zoom(snapshot.scroll)
		moved = true
	}
	if snapshot.dragX != 0 || snapshot.dragY != 0 {
		g.ctrl.Orbit(snapshot.dragX, snapshot.dragY)
		moved = true
	}
	if moved {
		g.ctrl.WriteRig(g.pivot, g.cam)
	}
	return moved
}

func (g *gestures) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.in = input{held: make(map[int]bool)}
}
