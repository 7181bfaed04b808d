package navmesh

import "log/slog"

// NavigationContext bundles an immutable BSP Tree with its derived
// portal graph and exposes the query surface callers use: Locate and
// the two FindPath variants. Once built it is read-only and safe for
// concurrent use by any number of goroutines (see batch.go).
type NavigationContext struct {
	tree    *Tree
	portals *Portals
}

// New builds a NavigationContext from a flat list of wall faces.
func New(faces []Face) *NavigationContext {
	tree := Build(faces)
	portals := BuildPortals(tree.GeneratePortals())
	slog.Info("navigation context built", "nodes", tree.NodeCount(), "portals", len(portals.FaceVec))
	return &NavigationContext{tree: tree, portals: portals}
}

// NewShuffled is New but shuffles face order at every partition step
// via rng, which can reduce expected tree depth for adversarially
// ordered input.
func NewShuffled(faces []Face, rng Shuffler) *NavigationContext {
	tree := BuildShuffled(faces, rng)
	portals := BuildPortals(tree.GeneratePortals())
	slog.Info("navigation context built", "nodes", tree.NodeCount(), "portals", len(portals.FaceVec), "shuffled", true)
	return &NavigationContext{tree: tree, portals: portals}
}

// Tree exposes the underlying BSP tree, e.g. for snapshotting.
func (c *NavigationContext) Tree() *Tree { return c.tree }

// Portals exposes the underlying portal graph, e.g. for snapshotting.
func (c *NavigationContext) Portals() *Portals { return c.portals }

// Locate returns the leaf containing point along with its covered and
// push-out state. The second return value is false for an empty
// context (no walls were ever added).
func (c *NavigationContext) Locate(point Vec2) (Location, bool) {
	return c.tree.Locate(point)
}

// FindPath searches for a path from start to end for an agent of the
// given radius, returning nil if no path exists (including when start
// or end falls on an occluded/covered side of a wall).
func (c *NavigationContext) FindPath(start, end Vec2, h HeuristicFunc, info SearchInfo) *Path {
	path := findPath(c.tree, c.portals, start, end, h, info, nil)
	if path == nil {
		return nil
	}
	shorten(path.Points, c.portals, info.AgentRadius)
	resolveClip(path.Points, c.portals, info.AgentRadius)
	path.Points = dedupeWaypoints(path.Points)
	return path
}

// FindPathInc is FindPath but reuses *out's backing storage when
// possible instead of allocating a new Path, for callers that
// repeatedly path-find every tick (e.g. a pursuing AI). *out may be
// nil on first call. Returns false (leaving *out untouched) if no
// path exists.
func (c *NavigationContext) FindPathInc(start, end Vec2, h HeuristicFunc, info SearchInfo, out **Path) bool {
	var reuse []WayPoint
	if *out != nil {
		reuse = (*out).Points
	}

	path := findPath(c.tree, c.portals, start, end, h, info, reuse)
	if path == nil {
		return false
	}
	shorten(path.Points, c.portals, info.AgentRadius)
	resolveClip(path.Points, c.portals, info.AgentRadius)
	path.Points = dedupeWaypoints(path.Points)

	*out = path
	return true
}
