package navmesh

import "sort"

// Layer is one floor of a LayeredNavigationContext: an independent 2D
// NavigationContext plus the height value it's keyed by.
type Layer struct {
	Height float32
	Ctx    *NavigationContext
}

// LayeredNavigationContext stacks independent 2D NavigationContexts
// keyed by a height value, for multi-floor scenes. This is not 3D
// partitioning: each floor is still a flat 2D BSP, looked up by
// height (the highest layer at or below the query height) rather than
// by a true vertical split.
type LayeredNavigationContext struct {
	layers []Layer
}

// NewLayered builds a LayeredNavigationContext from a set of layers,
// which need not be pre-sorted. Returns ErrNoLayers if layers is
// empty.
func NewLayered(layers []Layer) (*LayeredNavigationContext, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}

	sorted := make([]Layer, len(layers))
	copy(sorted, layers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Height < sorted[j].Height })

	return &LayeredNavigationContext{layers: sorted}, nil
}

// layerAt binary-searches for the layer whose height is closest to
// (and not above) h, falling back to the lowest layer if h is below
// all of them.
func (l *LayeredNavigationContext) layerAt(h float32) int {
	i := sort.Search(len(l.layers), func(i int) bool { return l.layers[i].Height > h })
	if i == 0 {
		return 0
	}
	return i - 1
}

// Locate finds the leaf containing point on the layer chosen by
// layerAt(h).
func (l *LayeredNavigationContext) Locate(h float32, point Vec2) (Location, bool) {
	return l.layers[l.layerAt(h)].Ctx.Locate(point)
}

// FindPath searches on the layer chosen by layerAt(h).
func (l *LayeredNavigationContext) FindPath(h float32, start, end Vec2, heuristic HeuristicFunc, info SearchInfo) *Path {
	return l.layers[l.layerAt(h)].Ctx.FindPath(start, end, heuristic, info)
}

// FindPathInc searches on the layer chosen by layerAt(h), reusing *out's backing
// storage where possible.
func (l *LayeredNavigationContext) FindPathInc(h float32, start, end Vec2, heuristic HeuristicFunc, info SearchInfo, out **Path) bool {
	return l.layers[l.layerAt(h)].Ctx.FindPathInc(start, end, heuristic, info, out)
}
