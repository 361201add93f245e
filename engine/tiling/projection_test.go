package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

func TestSphereProjection_FocusMatchesProject(t *testing.T) {
	p := SphereProjection{Radius: 300}
	coord := common.NewGeoCoordinate(52.52, 13.405)

	pos := p.Project(coord)
	assert.InDelta(t, 300, pos[0]*pos[0]/300+pos[1]*pos[1]/300+pos[2]*pos[2]/300, 1e-2)

	pivot := game_object.NewGameObject(game_object.WithRotation(
		-common.DegToRad(coord.Latitude), common.DegToRad(coord.Longitude), 0,
	))
	focus := p.Focus(pivot.WorldMatrix())
	assert.InDelta(t, coord.Latitude, focus.Latitude, 1e-4)
	assert.InDelta(t, coord.Longitude, focus.Longitude, 1e-4)

	// The pivot's forward axis points at the projected coordinate.
	m := pivot.WorldMatrix()
	assert.InDelta(t, pos[0]/300, m[8], 1e-5)
	assert.InDelta(t, pos[1]/300, m[9], 1e-5)
	assert.InDelta(t, pos[2]/300, m[10], 1e-5)
}

func TestPlanarProjection_RoundTrip(t *testing.T) {
	origin := common.NewGeoCoordinate(48.8566, 2.3522)
	p := PlanarProjection{Origin: origin, Scale: 1}

	assert.Equal(t, [3]float32{0, 0, 0}, p.Project(origin))

	north := common.NewGeoCoordinate(48.8666, 2.3522)
	pos := p.Project(north)
	assert.InDelta(t, 0, pos[0], 1e-3)
	assert.Less(t, pos[2], float32(0), "north is -Z")

	east := p.Project(common.NewGeoCoordinate(48.8566, 2.3622))
	assert.Greater(t, east[0], float32(0), "east is +X")

	pivot := game_object.NewGameObject(game_object.WithPosition(pos[0], 0, pos[2]))
	focus := p.Focus(pivot.WorldMatrix())
	assert.InDelta(t, north.Latitude, focus.Latitude, 1e-5)
	assert.InDelta(t, north.Longitude, focus.Longitude, 1e-5)
}

func TestPlanarProjection_Scale(t *testing.T) {
	origin := common.NewGeoCoordinate(0, 0)
	meters := PlanarProjection{Origin: origin}
	km := PlanarProjection{Origin: origin, Scale: 1000}

	coord := common.NewGeoCoordinate(0, 1)
	assert.InDelta(t, meters.Project(coord)[0]/1000, km.Project(coord)[0], 1e-3)
}
