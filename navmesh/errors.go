package navmesh

import "errors"

var (
	// ErrEmptyScene is returned by LoadScene when a scene file lists no
	// walls.
	ErrEmptyScene = errors.New("navmesh: scene has no walls")

	// ErrDegenerateWall is returned by LoadScene when a wall polygon has
	// fewer than two vertices. Repeated vertices are not detected.
	ErrDegenerateWall = errors.New("navmesh: wall has fewer than two vertices")

	// ErrNoLayers is returned by NewLayered when constructed with no
	// layers.
	ErrNoLayers = errors.New("navmesh: layered context has no layers")
)
