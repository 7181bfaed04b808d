package navmesh

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// snapshot is the serializable shape of a NavigationContext: plain
// slices and maps only, no handles into anything external.
type snapshot struct {
	Nodes   []BSPNode
	Root    NodeHandle
	Lo, Hi  Vec2
	FaceVec []Face
	PerLeaf map[NodeHandle][]PortalRef
}

// Marshal encodes the context as an opaque binary blob. The format is
// not a stable wire contract across versions of this package; callers
// that persist it across upgrades own compatibility, per the engine's
// snapshot contract.
func (c *NavigationContext) Marshal() ([]byte, error) {
	snap := snapshot{
		Nodes:   c.tree.nodes,
		Root:    c.tree.root,
		Lo:      c.tree.Lo,
		Hi:      c.tree.Hi,
		FaceVec: c.portals.FaceVec,
		PerLeaf: c.portals.PerLeaf,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&snap); err != nil {
		return nil, fmt.Errorf("navmesh: marshal snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a blob produced by Marshal back into a usable
// NavigationContext.
func Unmarshal(blob []byte) (*NavigationContext, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("navmesh: unmarshal snapshot: %w", err)
	}

	tree := &Tree{nodes: snap.Nodes, root: snap.Root, Lo: snap.Lo, Hi: snap.Hi}
	portals := &Portals{FaceVec: snap.FaceVec, PerLeaf: snap.PerLeaf}

	return &NavigationContext{tree: tree, portals: portals}, nil
}
