package navmesh

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Request is one query for FindPaths.
type Request struct {
	Start, End Vec2
	Heuristic  HeuristicFunc
	Info       SearchInfo
}

// FindPaths runs each request concurrently against the shared,
// read-only NavigationContext and returns results in request order.
// A query with no path contributes a nil entry rather than an error:
// per the core's contract, FindPath never fails except by finding
// nothing. The only error this can return is ctx cancellation.
func (c *NavigationContext) FindPaths(ctx context.Context, requests []Request) ([]*Path, error) {
	results := make([]*Path, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = c.FindPath(req.Start, req.End, req.Heuristic, req.Info)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
