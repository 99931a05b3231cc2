package meshes

import "testing"

func vertexAt(g *geometry, i uint32) (pos, normal [3]float32, uv [2]float32) {
	v := g.vertices[int(i)*floatsPerVertex:]
	copy(pos[:], v[0:3])
	copy(normal[:], v[3:6])
	copy(uv[:], v[6:8])
	return pos, normal, uv
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// checkWinding makes sure every triangle is counter clockwise seen from its normal
func checkWinding(t *testing.T, g *geometry) {

	for i := 0; i < len(g.indices); i += 3 {

		p0, n, _ := vertexAt(g, g.indices[i])
		p1, _, _ := vertexAt(g, g.indices[i+1])
		p2, _, _ := vertexAt(g, g.indices[i+2])

		faceNormal := cross(sub(p1, p0), sub(p2, p0))
		if dot(faceNormal, n) <= 0 {
			t.Errorf("triangle %d is wound clockwise for normal %v", i/3, n)
		}
	}
}

func TestCubeGeometry(t *testing.T) {

	g := cubeGeometry(5, 5, 1)

	if g.vertexCount() != 24 || len(g.indices) != 36 {
		t.Fatalf("expected 24 vertices and 36 indices, got %d and %d", g.vertexCount(), len(g.indices))
	}

	for _, idx := range g.indices {
		if idx >= 24 {
			t.Fatalf("index %d out of range", idx)
		}
	}

	var min, max [3]float32
	for i := uint32(0); i < 24; i++ {

		pos, normal, uv := vertexAt(&g, i)
		for c := 0; c < 3; c++ {
			if pos[c] < min[c] {
				min[c] = pos[c]
			}
			if pos[c] > max[c] {
				max[c] = pos[c]
			}
		}

		// Every vertex sits on the face its normal points out of
		if dot(pos, normal) <= 0 {
			t.Errorf("vertex %d at %v has inward normal %v", i, pos, normal)
		}

		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Errorf("vertex %d uv out of range: %v", i, uv)
		}
	}

	wantMax := [3]float32{2.5, 2.5, 0.5}
	for c := 0; c < 3; c++ {
		if max[c] != wantMax[c] || min[c] != -wantMax[c] {
			t.Errorf("axis %d extents: expected ±%v, got [%v, %v]", c, wantMax[c], min[c], max[c])
		}
	}

	checkWinding(t, &g)
}

func TestQuadGeometry(t *testing.T) {

	g := quadGeometry(2, 1)

	if g.vertexCount() != 4 || len(g.indices) != 6 {
		t.Fatalf("expected 4 vertices and 6 indices, got %d and %d", g.vertexCount(), len(g.indices))
	}

	for i := uint32(0); i < 4; i++ {

		pos, normal, _ := vertexAt(&g, i)
		if pos[2] != 0 || normal != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d: expected z=0 and +z normal, got %v and %v", i, pos, normal)
		}

		if pos[0] != 1 && pos[0] != -1 || pos[1] != 0.5 && pos[1] != -0.5 {
			t.Errorf("vertex %d: expected a corner of a 2x1 quad, got %v", i, pos)
		}
	}

	checkWinding(t, &g)
}
