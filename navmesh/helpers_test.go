package navmesh

// rectFaces returns the four faces of a w x h rectangle centered at
// (cx, cy), wound so each face's normal points away from the
// rectangle's own interior (i.e. outward, as if the rectangle were a
// solid obstacle).
func rectFaces(cx, cy, w, h float32) []Face {
	hw, hh := w/2, h/2
	a := Vec2{X: cx - hw, Y: cy - hh}
	b := Vec2{X: cx + hw, Y: cy - hh}
	c := Vec2{X: cx + hw, Y: cy + hh}
	d := Vec2{X: cx - hw, Y: cy + hh}

	return []Face{
		NewFace(a, b),
		NewFace(b, c),
		NewFace(c, d),
		NewFace(d, a),
	}
}

// boxCorridorScene builds Scenario 2's scene: a 50x50 box obstacle at
// the origin inside a room bounded by four thin wall segments.
func boxCorridorScene() []Face {
	var faces []Face
	faces = append(faces, rectFaces(0, 0, 50, 50)...)
	faces = append(faces, rectFaces(10, -200, 200, 10)...)
	faces = append(faces, rectFaces(10, 200, 200, 10)...)
	faces = append(faces, rectFaces(-200, 10, 10, 200)...)
	faces = append(faces, rectFaces(200, 10, 10, 200)...)
	return faces
}
