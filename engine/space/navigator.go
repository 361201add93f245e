package space

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/gesture"
	"github.com/Carmen-Shannon/oxy-map/engine/logger"
)

// ErrNoSpace is returned when zooming past the first or last space of a Navigator.
var ErrNoSpace = errors.New("no space in that direction")

// Navigator moves the viewer between spaces ordered from the top of the view stack
// (globe) to its bottom (street level). At most one space is active at a time.
type Navigator interface {
	// Start enters the top space.
	//
	// Parameters:
	//   - coord: the coordinate to frame
	//
	// Returns:
	//   - error: ErrAlreadyActive if a space is already active
	Start(coord common.GeoCoordinate) error

	// ZoomIn leaves the active space and enters the next lower one from the top.
	//
	// Parameters:
	//   - coord: the coordinate to frame
	//
	// Returns:
	//   - error: ErrNoSpace at the bottom, ErrNotActive before Start, or the left space's disposal error
	ZoomIn(coord common.GeoCoordinate) error

	// ZoomOut leaves the active space and enters the next upper one from the bottom.
	//
	// Parameters:
	//   - coord: the coordinate to frame
	//
	// Returns:
	//   - error: ErrNoSpace at the top, ErrNotActive before Start, or the left space's disposal error
	ZoomOut(coord common.GeoCoordinate) error

	// Update advances the active space. Once its animation has settled, the gesture strategy
	// picks up the rig and applies the frame's input.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	//
	// Returns:
	//   - error: ErrNotActive before Start, or the space's update error
	Update(deltaTime float32) error

	// Current returns the active space, or nil.
	//
	// Returns:
	//   - Space: the active space
	Current() Space

	// Level returns the index of the active space in the stack, or -1.
	//
	// Returns:
	//   - int: the active level
	Level() int

	// Gestures returns the active space's gesture strategy, or nil.
	//
	// Returns:
	//   - gesture.GestureStrategy: the gesture strategy input should be routed to
	Gestures() gesture.GestureStrategy

	// Close leaves the active space and disposes every space.
	//
	// Returns:
	//   - error: every leave and disposal error combined
	Close() error
}

type navigator struct {
	spaces []Space
	level  int
	// settled is false while the active space's entry animation runs.
	settled bool
}

var _ Navigator = &navigator{}

// NewNavigator creates a Navigator over spaces ordered from top to bottom.
// It panics if no space is given.
//
// Parameters:
//   - spaces: the view stack, top first
//
// Returns:
//   - Navigator: the navigator, with no active space
func NewNavigator(spaces ...Space) Navigator {
	if len(spaces) == 0 {
		panic("space: NewNavigator requires at least one space")
	}
	return &navigator{spaces: spaces, level: -1}
}

func (n *navigator) Start(coord common.GeoCoordinate) error {
	if n.level >= 0 {
		return errors.Wrap(ErrAlreadyActive, "start navigator")
	}
	if err := n.spaces[0].EnterTop(coord); err != nil {
		return err
	}
	n.level = 0
	n.settled = false
	return nil
}

func (n *navigator) ZoomIn(coord common.GeoCoordinate) error {
	return n.move(coord, 1)
}

func (n *navigator) ZoomOut(coord common.GeoCoordinate) error {
	return n.move(coord, -1)
}

// move leaves the active space and enters its neighbour in direction dir.
func (n *navigator) move(coord common.GeoCoordinate, dir int) error {
	if n.level < 0 {
		return errors.Wrap(ErrNotActive, "navigator not started")
	}
	next := n.level + dir
	if next < 0 || next >= len(n.spaces) {
		return errors.Wrapf(ErrNoSpace, "from %s", n.spaces[n.level].Name())
	}

	from, to := n.spaces[n.level], n.spaces[next]
	logger.Infof("navigator: %s -> %s at %s", from.Name(), to.Name(), coord)

	leaveErr := from.Leave()
	n.level = -1

	var err error
	if dir > 0 {
		err = to.EnterTop(coord)
	} else {
		err = to.EnterBottom(coord)
	}
	if err != nil {
		return multierr.Append(leaveErr, err)
	}
	n.level = next
	n.settled = false
	if leaveErr != nil {
		return errors.Wrapf(leaveErr, "leave %s", from.Name())
	}
	return nil
}

func (n *navigator) Update(deltaTime float32) error {
	s := n.Current()
	if s == nil {
		return errors.Wrap(ErrNotActive, "navigator not started")
	}
	if err := s.Update(deltaTime); err != nil {
		return err
	}
	if s.Animator().Animating() {
		return nil
	}

	g := s.Gestures()
	if !n.settled {
		g.Capture()
		n.settled = true
	}
	g.Apply(deltaTime)
	return nil
}

func (n *navigator) Current() Space {
	if n.level < 0 {
		return nil
	}
	return n.spaces[n.level]
}

func (n *navigator) Level() int {
	return n.level
}

func (n *navigator) Gestures() gesture.GestureStrategy {
	if s := n.Current(); s != nil {
		return s.Gestures()
	}
	return nil
}

func (n *navigator) Close() error {
	var err error
	if s := n.Current(); s != nil {
		if leaveErr := s.Leave(); leaveErr != nil {
			err = multierr.Append(err, errors.Wrapf(leaveErr, "leave %s", s.Name()))
		}
		n.level = -1
	}
	for _, s := range n.spaces {
		if disposeErr := s.Dispose(); disposeErr != nil {
			err = multierr.Append(err, errors.Wrapf(disposeErr, "dispose %s", s.Name()))
		}
	}
	return err
}
