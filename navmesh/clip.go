package navmesh

// ClippedFace is a candidate portal segment in the process of being
// clipped against a Tree. Sides/Adjacent track, per endpoint, whether
// that endpoint has been pinned to a real wall (and on which side) as
// the candidate descends through ancestor nodes.
type ClippedFace struct {
	Face     Face
	Sides    [2]Side
	Adjacent [2]bool
	Src, Dst NodeHandle
}

// GeneratePortals walks every interior node of the tree and emits the
// walkable sub-segments of its splitting line as ClippedFace entries,
// each carrying the pair of leaves it connects.
func (t *Tree) GeneratePortals() []ClippedFace {
	var out []ClippedFace
	if !t.root.Valid() {
		return out
	}

	bounds := []Face{
		NewFace(Vec2{X: t.Lo.X, Y: t.Hi.Y}, t.Lo),
		NewFace(t.Lo, Vec2{X: t.Hi.X, Y: t.Lo.Y}),
		NewFace(Vec2{X: t.Hi.X, Y: t.Lo.Y}, t.Hi),
		NewFace(t.Hi, Vec2{X: t.Lo.X, Y: t.Hi.Y}),
	}

	t.generatePortalsRec(t.root, bounds, &out)
	return out
}

func (t *Tree) generatePortalsRec(handle NodeHandle, clippingPlanes []Face, out *[]ClippedFace) {
	n := &t.nodes[handle]

	dir := n.Normal.Perp()
	minT := float32(-1e30)
	maxT := float32(1e30)
	var minFace, maxFace Face
	haveMin, haveMax := false, false

	for _, c := range clippingPlanes {
		denom := dir.Dot(c.Normal)
		if absF(denom) < 1e-8 {
			continue
		}
		ix := faceIntersectDir(n.Origin, dir, c.V0, c.Normal)
		if ix.Distance < 0 {
			if ix.Distance > minT {
				minT, minFace, haveMin = ix.Distance, c, true
			}
		} else {
			if ix.Distance < maxT {
				maxT, maxFace, haveMax = ix.Distance, c, true
			}
		}
	}

	if !haveMin || !haveMax {
		// Unbounded candidate line: no enclosing boundary found on one
		// side. Shouldn't happen given a closed bounding rectangle, but
		// guard rather than emit a degenerate portal.
		t.recurseChildren(n, clippingPlanes, out)
		return
	}

	pMin := n.Origin.Add(dir.Scale(minT))
	pMax := n.Origin.Add(dir.Scale(maxT))

	candidate := ClippedFace{
		Face:     NewFace(pMax, pMin),
		Sides:    [2]Side{Front, Front},
		Adjacent: [2]bool{maxFace.ContainsPoint(pMax), minFace.ContainsPoint(pMin)},
		Src:      handle,
		Dst:      handle,
	}

	results := t.clip(t.root, candidate, Front)
	for _, cf := range results {
		if cf.Src == cf.Dst || !cf.Src.Valid() || !cf.Dst.Valid() {
			continue
		}
		if cf.Sides != [2]Side{Front, Front} {
			continue
		}
		overlapsWall := false
		for _, cf2 := range n.Coplanar {
			if cf2.Overlaps(cf.Face) {
				overlapsWall = true
				break
			}
		}
		if overlapsWall {
			continue
		}
		*out = append(*out, cf)
	}

	t.recurseChildren(n, clippingPlanes, out)
}

func (t *Tree) recurseChildren(n *BSPNode, clippingPlanes []Face, out *[]ClippedFace) {
	if !n.Front.Valid() && !n.Back.Valid() {
		return
	}

	childPlanes := make([]Face, len(clippingPlanes)+len(n.Coplanar))
	copy(childPlanes, clippingPlanes)
	copy(childPlanes[len(clippingPlanes):], n.Coplanar)

	if n.Front.Valid() {
		t.generatePortalsRec(n.Front, childPlanes, out)
	}
	if n.Back.Valid() {
		t.generatePortalsRec(n.Back, childPlanes, out)
	}
}

// clip recursively classifies cf against node and its descendants,
// returning the set of leaf-bound sub-segments cf decomposes into.
func (t *Tree) clip(node NodeHandle, cf ClippedFace, rootSide Side) []ClippedFace {
	n := &t.nodes[node]
	cf = annotateEndpoints(cf, n)
	side := cf.Face.SideOf(n.Origin, n.Normal)

	switch side {
	case Coplanar:
		switch {
		case n.Front.Valid() && n.Back.Valid():
			var out []ClippedFace
			for _, fr := range t.clip(n.Front, cf, Front) {
				out = append(out, t.clip(n.Back, fr, Back)...)
			}
			return out
		case n.Front.Valid():
			return t.clip(n.Front, cf, Front)
		case n.Back.Valid():
			return t.clip(n.Back, cf, Back)
		default:
			return []ClippedFace{terminal(cf, node, rootSide)}
		}

	case Front:
		if n.Front.Valid() {
			return t.clip(n.Front, cf, rootSide)
		}
		return []ClippedFace{terminal(cf, node, rootSide)}

	case Back:
		if n.Back.Valid() {
			return t.clip(n.Back, cf, rootSide)
		}
		return []ClippedFace{terminal(cf, node, rootSide)}

	default: // Intersecting
		frontHalf, backHalf := splitClippedFace(cf, n.Origin, n.Normal)
		var out []ClippedFace
		if n.Front.Valid() {
			out = append(out, t.clip(n.Front, frontHalf, rootSide)...)
		} else {
			out = append(out, terminal(frontHalf, node, rootSide))
		}
		if n.Back.Valid() {
			out = append(out, t.clip(n.Back, backHalf, rootSide)...)
		} else {
			out = append(out, terminal(backHalf, node, rootSide))
		}
		return out
	}
}

func terminal(cf ClippedFace, node NodeHandle, rootSide Side) ClippedFace {
	if rootSide == Back {
		cf.Dst = node
	} else {
		cf.Src = node
	}
	return cf
}

// annotateEndpoints implements the endpoint-docking rule of §4.5: an
// endpoint of cf that coincides with node's plane is pinned to
// Front/Back if it lies on one of node's own coplanar faces (a real
// wall), using the opposite endpoint to decide which side. On a
// double-planar node (a wall sealed from both sides) a docked endpoint
// is forced to Back instead, unless it lies outside every coplanar
// face of the node, in which case the override does not apply and any
// side tag from an ancestor is left untouched.
func annotateEndpoints(cf ClippedFace, n *BSPNode) ClippedFace {
	verts := cf.Face.Vertices()

	for i := 0; i < 2; i++ {
		v := verts[i]
		d := v.Sub(n.Origin).Dot(n.Normal)
		if absF(d) >= TOL {
			continue
		}

		dockedToWall := false
		for _, wall := range n.Coplanar {
			if wall.ContainsPoint(v) {
				dockedToWall = true
				break
			}
		}

		if dockedToWall {
			cf.Adjacent[i] = true
			if n.DoublePlanar {
				cf.Sides[i] = Back
			} else {
				other := verts[1-i]
				otherDot := other.Sub(n.Origin).Dot(n.Normal)
				if otherDot >= 0 {
					cf.Sides[i] = Front
				} else {
					cf.Sides[i] = Back
				}
			}
		}
	}

	return cf
}

// splitClippedFace divides cf at the plane through p with normal n,
// producing a front half and a back half that each retain cf's src/dst
// and the side/adjacency annotation of the endpoint they kept. The new
// endpoint at the split point lies in open space: both halves tag it
// Front and not adjacent.
func splitClippedFace(cf ClippedFace, p, n Vec2) (front, back ClippedFace) {
	v0, v1 := cf.Face.V0, cf.Face.V1
	ix := faceIntersect(v0, v1, p, n)
	i := ix.Point

	a := v0.Sub(p).Dot(n)
	if a >= -TOL {
		front = ClippedFace{
			Face:     NewFace(v0, i),
			Sides:    [2]Side{cf.Sides[0], Front},
			Adjacent: [2]bool{cf.Adjacent[0], false},
			Src:      cf.Src, Dst: cf.Dst,
		}
		back = ClippedFace{
			Face:     NewFace(i, v1),
			Sides:    [2]Side{Front, cf.Sides[1]},
			Adjacent: [2]bool{false, cf.Adjacent[1]},
			Src:      cf.Src, Dst: cf.Dst,
		}
		return
	}

	front = ClippedFace{
		Face:     NewFace(i, v1),
		Sides:    [2]Side{Front, cf.Sides[1]},
		Adjacent: [2]bool{false, cf.Adjacent[1]},
		Src:      cf.Src, Dst: cf.Dst,
	}
	back = ClippedFace{
		Face:     NewFace(v0, i),
		Sides:    [2]Side{cf.Sides[0], Front},
		Adjacent: [2]bool{cf.Adjacent[0], false},
		Src:      cf.Src, Dst: cf.Dst,
	}
	return
}
