package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 3 — Coplanar merge.
func TestBuildCoplanarMerge(t *testing.T) {
	f1 := NewFace(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	f2 := NewFace(Vec2{X: 10, Y: 0}, Vec2{X: 20, Y: 0})

	tree := Build([]Face{f1, f2})
	require.True(t, tree.Root().Valid())

	root := tree.Node(tree.Root())
	assert.Len(t, root.Coplanar, 2)
	assert.False(t, root.Front.Valid())
	assert.False(t, root.Back.Valid())
	assert.False(t, root.DoublePlanar)
}

// Scenario 4 — Double-planar wall.
func TestBuildDoublePlanarWall(t *testing.T) {
	f1 := NewFace(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0})
	f2 := NewFace(Vec2{X: 10, Y: 0}, Vec2{X: 0, Y: 0})

	tree := Build([]Face{f1, f2})
	require.True(t, tree.Root().Valid())

	root := tree.Node(tree.Root())
	assert.True(t, root.DoublePlanar)

	start, ok := tree.Locate(Vec2{X: 5, Y: -1})
	require.True(t, ok)
	end, ok := tree.Locate(Vec2{X: 5, Y: 1})
	require.True(t, ok)
	assert.NotEqual(t, start.Covered, end.Covered)
}

func TestBuildEmpty(t *testing.T) {
	tree := Build(nil)
	assert.False(t, tree.Root().Valid())

	_, ok := tree.Locate(Vec2{X: 0, Y: 0})
	assert.False(t, ok)
}

// Scenario 5 — Push-out, using scenario 2's box.
func TestLocatePushOut(t *testing.T) {
	faces := boxCorridorScene()
	tree := Build(faces)

	loc, ok := tree.Locate(Vec2{X: 0, Y: 0})
	require.True(t, ok)
	assert.True(t, loc.Covered)
	assert.LessOrEqual(t, loc.PushOut.Length(), float32(25))
}

func TestLocateBounds(t *testing.T) {
	faces := []Face{
		NewFace(Vec2{X: -10, Y: -10}, Vec2{X: 10, Y: -10}),
		NewFace(Vec2{X: 10, Y: -10}, Vec2{X: 10, Y: 10}),
	}
	tree := Build(faces)
	// Root bounds must strictly contain every input vertex, so they're
	// padded past the tight min/max rather than touching it.
	assert.Equal(t, Vec2{X: -10 - boundsMargin, Y: -10 - boundsMargin}, tree.Lo)
	assert.Equal(t, Vec2{X: 10 + boundsMargin, Y: 10 + boundsMargin}, tree.Hi)
}
