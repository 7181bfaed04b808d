package navmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	ctx := New(boxCorridorScene())

	blob, err := ctx.Marshal()
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	restored, err := Unmarshal(blob)
	require.NoError(t, err)

	original := ctx.FindPath(Vec2{X: -100, Y: 0}, Vec2{X: 100, Y: 30}, EuclideanHeuristic, SearchInfo{})
	roundTripped := restored.FindPath(Vec2{X: -100, Y: 0}, Vec2{X: 100, Y: 30}, EuclideanHeuristic, SearchInfo{})

	require.NotNil(t, original)
	require.NotNil(t, roundTripped)
	assert.Equal(t, len(original.Points), len(roundTripped.Points))
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := Unmarshal([]byte("not a snapshot"))
	assert.Error(t, err)
}
