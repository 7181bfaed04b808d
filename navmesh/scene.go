package navmesh

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WallSpec is one wall in a SceneFile: a polyline of vertices. Each
// consecutive pair (and the closing pair if Closed is set) becomes a
// Face.
type WallSpec struct {
	Points []Vec2 `yaml:"points"`
	Closed bool   `yaml:"closed"`
}

// SceneFile is the YAML document LoadScene parses: a flat list of
// walls. It's sugar over building []Face by hand; NavigationContext
// itself has no knowledge of this format.
type SceneFile struct {
	Walls []WallSpec `yaml:"walls"`
}

// LoadScene reads a YAML scene description from path and expands it
// into the []Face slice New/NewShuffled expect.
func LoadScene(path string) ([]Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	var scene SceneFile
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	if len(scene.Walls) == 0 {
		return nil, ErrEmptyScene
	}

	var faces []Face
	for _, wall := range scene.Walls {
		if len(wall.Points) < 2 {
			return nil, fmt.Errorf("%s: %w", path, ErrDegenerateWall)
		}
		for i := 0; i+1 < len(wall.Points); i++ {
			faces = append(faces, NewFace(wall.Points[i], wall.Points[i+1]))
		}
		if wall.Closed && len(wall.Points) > 2 {
			faces = append(faces, NewFace(wall.Points[len(wall.Points)-1], wall.Points[0]))
		}
	}

	return faces, nil
}
