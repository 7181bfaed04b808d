package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFaceNormal(t *testing.T) {
	f := NewFace(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	assert.InDelta(t, 0.0, f.Normal.X, 0.001)
	assert.InDelta(t, -1.0, f.Normal.Y, 0.001)
}

func TestSideOfBack(t *testing.T) {
	f := NewFace(Vec2{X: 0, Y: 10}, Vec2{X: 10, Y: 10})
	side := f.SideOf(Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: -1})
	assert.Equal(t, Back, side)
}

func TestSideOfCoplanar(t *testing.T) {
	f1 := NewFace(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	f2 := NewFace(Vec2{X: 10, Y: 0}, Vec2{X: 20, Y: 0})
	assert.Equal(t, Coplanar, f2.SideOf(f1.V0, f1.Normal))
}

func TestSideOfIntersecting(t *testing.T) {
	f := NewFace(Vec2{X: -10, Y: -10}, Vec2{X: 10, Y: 10})
	side := f.SideOf(Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: -1})
	assert.Equal(t, Intersecting, side)
}

func TestFaceSplitOrdering(t *testing.T) {
	f := NewFace(Vec2{X: -10, Y: 0}, Vec2{X: 10, Y: 0})
	halves := f.Split(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})

	// The first half must be the front piece and the second the back
	// piece, even though v0 lies on the back side here.
	assert.Equal(t, Front, halves[0].SideOf(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}))
	assert.Equal(t, Back, halves[1].SideOf(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0}))
}

func TestFaceContainsPoint(t *testing.T) {
	f := NewFace(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	assert.True(t, f.ContainsPoint(Vec2{X: 5, Y: 0}))
	assert.True(t, f.ContainsPoint(Vec2{X: -0.05, Y: 0}))
	assert.False(t, f.ContainsPoint(Vec2{X: 20, Y: 0}))
}

func TestFaceOverlaps(t *testing.T) {
	f1 := NewFace(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	f2 := NewFace(Vec2{X: 5, Y: 0}, Vec2{X: 15, Y: 0})
	assert.True(t, f1.Overlaps(f2))

	f3 := NewFace(Vec2{X: 10, Y: 0}, Vec2{X: 20, Y: 0})
	assert.False(t, f1.Overlaps(f3))
}

func TestFaceAdjacent(t *testing.T) {
	wall := NewFace(Vec2{X: -5, Y: 0}, Vec2{X: 5, Y: 0})
	portal := NewFace(Vec2{X: 5, Y: 0}, Vec2{X: 15, Y: 0})
	assert.True(t, wall.Adjacent(portal))
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 1.0, v.Length(), 0.001)

	zero := Vec2{}.Normalize()
	assert.Equal(t, Vec2{}, zero)
}
