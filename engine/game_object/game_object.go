package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-map/common"
)

// objectCount is an atomic counter used to hand out unique IDs to objects created without WithID.
var objectCount atomic.Uint64

type gameObject struct {
	id      uint64
	name    string
	enabled atomic.Bool

	// local transform relative to the parent
	position [3]float32
	rotation [3]float32
	scale    [3]float32

	parent   *gameObject
	children []*gameObject
}

// GameObject defines the interface for a scene graph node.
// A GameObject carries an enabled flag and a local transform (position, Euler rotation, scale)
// relative to its parent. Containers, pivots, cameras and lights are all GameObjects so that
// view spaces can reset and animate them uniformly.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's human-readable name.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// Enabled returns whether this object is active.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled activates or deactivates the object.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Position returns the object's position relative to its parent.
	//
	// Returns:
	//   - x, y, z: local position components
	Position() (x, y, z float32)

	// SetPosition sets the object's position relative to its parent.
	//
	// Parameters:
	//   - x, y, z: new local position components
	SetPosition(x, y, z float32)

	// Rotation returns the object's Euler rotation relative to its parent, in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles around each axis
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the object's Euler rotation relative to its parent, in radians.
	// Rotation order is Y * X * Z (yaw-pitch-roll).
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// Scale returns the object's local scale.
	//
	// Returns:
	//   - sx, sy, sz: scale factors
	Scale() (sx, sy, sz float32)

	// SetScale sets the object's local scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// Parent returns the object this one is attached to, or nil for a root object.
	//
	// Returns:
	//   - GameObject: the parent or nil
	Parent() GameObject

	// SetParent attaches the object to a new parent, detaching it from the previous one.
	// Pass nil to make the object a root. The local transform is kept as is.
	//
	// Parameters:
	//   - parent: the new parent or nil
	SetParent(parent GameObject)

	// Children returns a copy of the objects attached to this one.
	//
	// Returns:
	//   - []GameObject: the direct children
	Children() []GameObject

	// Find returns the direct child with the given name, or nil if none matches.
	//
	// Parameters:
	//   - name: the child's name
	//
	// Returns:
	//   - GameObject: the matching child or nil
	Find(name string) GameObject

	// LocalMatrix builds the 4x4 column-major matrix of the local transform.
	//
	// Returns:
	//   - [16]float32: the local matrix
	LocalMatrix() [16]float32

	// WorldMatrix builds the 4x4 column-major matrix from object space to world space,
	// composing every parent's local matrix.
	//
	// Returns:
	//   - [16]float32: the world matrix
	WorldMatrix() [16]float32

	// WorldPosition returns the object's origin in world space.
	//
	// Returns:
	//   - [3]float32: the world position
	WorldPosition() [3]float32

	// ResetTransform sets position to the origin and rotation to zero. Scale is preserved.
	ResetTransform()
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// The object starts enabled, at the origin, with zero rotation and unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		id:    objectCount.Add(1),
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) Parent() GameObject {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *gameObject) SetParent(parent GameObject) {
	if g.parent != nil {
		g.parent.removeChild(g)
		g.parent = nil
	}
	p, ok := parent.(*gameObject)
	if !ok || p == nil {
		return
	}
	g.parent = p
	p.children = append(p.children, g)
}

func (g *gameObject) Children() []GameObject {
	out := make([]GameObject, len(g.children))
	for i, c := range g.children {
		out[i] = c
	}
	return out
}

func (g *gameObject) Find(name string) GameObject {
	for _, c := range g.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (g *gameObject) LocalMatrix() [16]float32 {
	var m [16]float32
	common.BuildModelMatrix(m[:],
		g.position[0], g.position[1], g.position[2],
		g.rotation[0], g.rotation[1], g.rotation[2],
		g.scale[0], g.scale[1], g.scale[2],
	)
	return m
}

func (g *gameObject) WorldMatrix() [16]float32 {
	m := g.LocalMatrix()
	for p := g.parent; p != nil; p = p.parent {
		pm := p.LocalMatrix()
		common.Mul4(m[:], pm[:], m[:])
	}
	return m
}

func (g *gameObject) WorldPosition() [3]float32 {
	m := g.WorldMatrix()
	return [3]float32{m[12], m[13], m[14]}
}

func (g *gameObject) ResetTransform() {
	g.position = [3]float32{}
	g.rotation = [3]float32{}
}

// removeChild detaches child from g's children list, preserving order.
func (g *gameObject) removeChild(child *gameObject) {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return
		}
	}
}
