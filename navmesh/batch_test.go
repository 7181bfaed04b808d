package navmesh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPathsConcurrent(t *testing.T) {
	ctx := New(nil)

	requests := []Request{
		{Start: Vec2{X: 0, Y: 0}, End: Vec2{X: 10, Y: 10}, Heuristic: EuclideanHeuristic},
		{Start: Vec2{X: -5, Y: -5}, End: Vec2{X: 5, Y: 5}, Heuristic: EuclideanHeuristic},
		{Start: Vec2{X: 1, Y: 1}, End: Vec2{X: 2, Y: 2}, Heuristic: ManhattanHeuristic},
	}

	results, err := ctx.FindPaths(context.Background(), requests)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.NotNil(t, r)
	}
}

func TestFindPathsCancelledContext(t *testing.T) {
	ctx := New(nil)

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()

	requests := make([]Request, 8)
	for i := range requests {
		requests[i] = Request{Start: Vec2{X: 0, Y: 0}, End: Vec2{X: float32(i), Y: float32(i)}, Heuristic: EuclideanHeuristic}
	}

	_, err := ctx.FindPaths(cancelCtx, requests)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
