package navmesh

// PortalRef is one directed crossing from a leaf into a neighboring
// leaf through a shared wall gap.
type PortalRef struct {
	Src, Dst NodeHandle
	Face     uint32 // index into Portals.FaceVec
	Normal   Vec2   // points from Src into Dst
	Adjacent [2]bool
}

// Portals is the built portal graph: the set of crossable segments
// between adjacent leaves, indexed for traversal from either leaf.
type Portals struct {
	FaceVec []Face
	PerLeaf map[NodeHandle][]PortalRef
}

// BuildPortals converts the raw clipped candidates produced by
// Tree.GeneratePortals into a symmetric, leaf-indexed portal graph.
func BuildPortals(candidates []ClippedFace) *Portals {
	p := &Portals{PerLeaf: make(map[NodeHandle][]PortalRef)}

	for _, cf := range candidates {
		if cf.Src == cf.Dst || !cf.Src.Valid() || !cf.Dst.Valid() {
			continue
		}

		idx := uint32(len(p.FaceVec))
		p.FaceVec = append(p.FaceVec, cf.Face)

		fwd := PortalRef{Src: cf.Src, Dst: cf.Dst, Face: idx, Normal: cf.Face.Normal.Scale(-1), Adjacent: cf.Adjacent}
		bwd := PortalRef{Src: cf.Dst, Dst: cf.Src, Face: idx, Normal: cf.Face.Normal, Adjacent: cf.Adjacent}

		p.PerLeaf[cf.Src] = append(p.PerLeaf[cf.Src], fwd)
		p.PerLeaf[cf.Dst] = append(p.PerLeaf[cf.Dst], bwd)
	}

	return p
}

// PortalsOf returns every outgoing PortalRef from leaf.
func (p *Portals) PortalsOf(leaf NodeHandle) []PortalRef {
	return p.PerLeaf[leaf]
}

// Face returns the shared geometric segment a PortalRef crosses.
func (p *Portals) Face(ref PortalRef) Face {
	return p.FaceVec[ref.Face]
}
