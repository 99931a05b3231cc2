package meshes

// geometry is interleaved vertex data in the vertexLayout order plus triangle indices
type geometry struct {
	vertices []float32
	indices  []uint32
}

func (g *geometry) vertexCount() int {
	return len(g.vertices) / floatsPerVertex
}

func (g *geometry) addVertex(pos, normal [3]float32, uv [2]float32) {
	g.vertices = append(g.vertices,
		pos[0], pos[1], pos[2],
		normal[0], normal[1], normal[2],
		uv[0], uv[1],
	)
}

// addFace adds a counter clockwise quad, seen from the side normal points to.
// right x up must equal normal.
func (g *geometry) addFace(center, normal, right, up, halfSize [3]float32) {

	base := uint32(g.vertexCount())
	corners := [4]struct {
		r, u float32
		uv   [2]float32
	}{
		{-1, -1, [2]float32{0, 0}},
		{1, -1, [2]float32{1, 0}},
		{1, 1, [2]float32{1, 1}},
		{-1, 1, [2]float32{0, 1}},
	}

	for _, c := range corners {

		var pos [3]float32
		for i := 0; i < 3; i++ {
			pos[i] = center[i] + (normal[i]+right[i]*c.r+up[i]*c.u)*halfSize[i]
		}

		g.addVertex(pos, normal, c.uv)
	}

	g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)
}

func cubeGeometry(width, height, depth float32) geometry {

	half := [3]float32{width / 2, height / 2, depth / 2}
	g := geometry{
		vertices: make([]float32, 0, 24*floatsPerVertex),
		indices:  make([]uint32, 0, 36),
	}

	faces := [6]struct{ normal, right, up [3]float32 }{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	}

	for _, f := range faces {
		g.addFace([3]float32{}, f.normal, f.right, f.up, half)
	}

	return g
}

func quadGeometry(width, height float32) geometry {

	g := geometry{
		vertices: make([]float32, 0, 4*floatsPerVertex),
		indices:  make([]uint32, 0, 6),
	}

	// Zero half depth keeps the quad on the z=0 plane
	g.addFace([3]float32{}, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{width / 2, height / 2, 0})
	return g
}
