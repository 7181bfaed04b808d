package navmesh

import "container/heap"

// WayPoint is one point along a resolved Path: either an endpoint
// (Portal is nil) or a portal crossing (Portal identifies which
// PortalRef was crossed to reach this point).
type WayPoint struct {
	Point  Vec2
	Node   NodeHandle
	Portal *PortalRef
}

// Path is an ordered sequence of WayPoints from a start to an end
// point. The first and last entries always have Portal == nil.
type Path struct {
	Points []WayPoint
}

// SearchInfo carries per-query tuning that doesn't belong in the
// heuristic function itself.
type SearchInfo struct {
	// AgentRadius shrinks portal margins so a circular agent of this
	// radius never clips a wall while crossing.
	AgentRadius float32

	// MaxIterations caps the number of A* pops before giving up and
	// reporting no path. Zero means unbounded.
	MaxIterations int
}

// backtrace is one A* frontier/closed-set entry: the leaf it reached,
// the point at which it entered that leaf, and how it got there.
type backtrace struct {
	node    NodeHandle
	point   Vec2
	portal  *PortalRef
	prev    NodeHandle
	hasPrev bool
	g, f    float32
	index   int // heap bookkeeping
}

type backtraceHeap []*backtrace

func (h backtraceHeap) Len() int            { return len(h) }
func (h backtraceHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h backtraceHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *backtraceHeap) Push(x any) {
	bt := x.(*backtrace)
	bt.index = len(*h)
	*h = append(*h, bt)
}
func (h *backtraceHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// findPath runs portal-graph A* from start to end, using reuse (if
// non-nil) as the backing array for the reconstructed path's points.
func findPath(tree *Tree, portals *Portals, start, end Vec2, h HeuristicFunc, info SearchInfo, reuse []WayPoint) *Path {
	if !tree.Root().Valid() {
		// No walls at all: the whole plane is open space, a straight
		// line always connects start and end.
		buf := reuse[:0]
		buf = append(buf, WayPoint{Point: start, Node: NullHandle}, WayPoint{Point: end, Node: NullHandle})
		return &Path{Points: buf}
	}

	startLoc, ok := tree.Locate(start)
	if !ok {
		return nil
	}
	endLoc, ok := tree.Locate(end)
	if !ok {
		return nil
	}
	if startLoc.Covered || endLoc.Covered {
		return nil
	}

	startLeaf, endLeaf := startLoc.Handle, endLoc.Handle

	open := &backtraceHeap{}
	heap.Init(open)

	traces := make(map[NodeHandle]*backtrace)
	startBT := &backtrace{node: startLeaf, point: start, f: h(start, end)}
	traces[startLeaf] = startBT
	heap.Push(open, startBT)

	closed := make(map[NodeHandle]bool)

	iterations := 0
	for open.Len() > 0 {
		iterations++
		if info.MaxIterations > 0 && iterations > info.MaxIterations {
			return nil
		}

		cur := heap.Pop(open).(*backtrace)
		if closed[cur.node] {
			continue
		}
		if cur.node == endLeaf {
			points := reconstruct(end, endLeaf, traces, info.AgentRadius, reuse)
			return &Path{Points: points}
		}
		closed[cur.node] = true

		for _, ref := range portals.PortalsOf(cur.node) {
			if closed[ref.Dst] || ref.Dst == cur.node {
				continue
			}
			face := portals.Face(ref)
			shrunk, ok := shrinkFace(face, info.AgentRadius)
			if !ok {
				continue
			}

			var p Vec2
			endRel := end.Sub(cur.point)
			if ref.Normal.Dot(endRel) > 0 {
				ix := faceIntersect(shrunk.V0, shrunk.V1, cur.point, endRel.Perp())
				switch {
				case ix.Distance <= 0:
					p = shrunk.V0
				case ix.Distance >= 1:
					p = shrunk.V1
				default:
					p = ix.Point
				}
			} else {
				if h(shrunk.V0, end) < h(shrunk.V1, end) {
					p = shrunk.V0
				} else {
					p = shrunk.V1
				}
			}

			refCopy := ref
			g := cur.g + cur.point.Distance(p)
			f := g + h(p, end)

			if existing, ok := traces[ref.Dst]; ok && existing.f <= f {
				continue
			}

			bt := &backtrace{
				node: ref.Dst, point: p, portal: &refCopy,
				prev: cur.node, hasPrev: true, g: g, f: f,
			}
			traces[ref.Dst] = bt
			heap.Push(open, bt)
		}
	}

	return nil
}

// reconstruct walks the backtrace chain from endLeaf back to the
// start, building the Path in start-to-end order. reuse's backing
// array is recycled via append when it has enough capacity.
func reconstruct(end Vec2, endLeaf NodeHandle, traces map[NodeHandle]*backtrace, agentRadius float32, reuse []WayPoint) []WayPoint {
	buf := reuse[:0]
	buf = append(buf, WayPoint{Point: end, Node: endLeaf})

	current := endLeaf
	for {
		node := traces[current]
		var p Vec2
		if node.portal != nil {
			p = node.point.Sub(node.portal.Normal.Scale(agentRadius))
		} else {
			p = node.point
		}
		buf = append(buf, WayPoint{Point: p, Node: node.node, Portal: node.portal})
		if node.hasPrev {
			current = node.prev
			continue
		}
		break
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return dedupeWaypoints(buf)
}

// dedupeWaypoints removes interior points that duplicate their
// predecessor within TOL^2, keeping the first and last entries
// intact.
func dedupeWaypoints(points []WayPoint) []WayPoint {
	if len(points) < 3 {
		return points
	}
	out := points[:1]
	for i := 1; i < len(points)-1; i++ {
		if points[i].Point.DistanceSquared(out[len(out)-1].Point) < TOL*TOL {
			continue
		}
		out = append(out, points[i])
	}
	out = append(out, points[len(points)-1])
	return out
}

// shorten performs string-pulling on path in place: for every
// consecutive triple (A, B, C) where B is a portal crossing, it tries
// to replace B's point with the line-face intersection of A->C
// against B's shrunk portal margin, provided that intersection lies
// strictly within the shrunk segment.
func shorten(path []WayPoint, portals *Portals, agentRadius float32) bool {
	if len(path) < 3 {
		return true
	}

	a, b, c := path[0], path[1], path[2]
	if b.Portal != nil {
		face := portals.Face(*b.Portal)
		if shrunk, ok := shrinkFace(face, agentRadius); ok {
			ix := faceIntersect(shrunk.V0, shrunk.V1, a.Point, c.Point.Sub(a.Point).Perp())
			if ix.Distance > 0 && ix.Distance < 1 {
				prev := path[1].Point
				path[1].Point = ix.Point
				if prev.DistanceSquared(ix.Point) < TOL*TOL {
					return false
				}
				if shorten(path[1:], portals, agentRadius) {
					shorten(path, portals, agentRadius)
				}
				return true
			}
		}
	}

	return shorten(path[1:], portals, agentRadius)
}

// resolveClip nudges intermediate waypoints that sit within
// agentRadius of a wall-docked portal endpoint away from that wall,
// scaled by the difference in incidence angle between the incoming
// and outgoing legs.
func resolveClip(path []WayPoint, portals *Portals, agentRadius float32) {
	if agentRadius <= 0 {
		return
	}

	for i := 1; i < len(path)-1; i++ {
		b := &path[i]
		if b.Portal == nil {
			continue
		}
		face := portals.Face(*b.Portal)

		idx := 0
		if b.Point.DistanceSquared(face.V1) < b.Point.DistanceSquared(face.V0) {
			idx = 1
		}
		endpoint := face.V0
		if idx == 1 {
			endpoint = face.V1
		}
		if !b.Portal.Adjacent[idx] {
			continue
		}
		if b.Point.Distance(endpoint) > agentRadius+TOL {
			continue
		}

		aPt := path[i-1].Point
		cPt := path[i+1].Point

		aInc := absF(aPt.Sub(b.Point).Normalize().PerpDot(b.Portal.Normal))
		cInc := absF(cPt.Sub(b.Point).Normalize().PerpDot(b.Portal.Normal))

		b.Point = b.Point.Add(b.Portal.Normal.Scale(agentRadius * (cInc - aInc)))
	}
}
