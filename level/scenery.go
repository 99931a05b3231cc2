package level

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/materials"
	"github.com/bloeys/scp087/meshes"
	"github.com/bloeys/scp087/renderer"
)

type pieceLook struct {
	Mesh *meshes.Mesh
	Mat  *materials.Material
}

// Scenery knows how every piece looks and draws placement lists with it
type Scenery struct {
	looks [PieceCount]pieceLook
}

func (s *Scenery) Bind(p Piece, mesh *meshes.Mesh, mat *materials.Material) {
	s.looks[p] = pieceLook{Mesh: mesh, Mat: mat}
}

func (s *Scenery) IsBound(p Piece) bool {
	return s.looks[p].Mesh != nil && s.looks[p].Mat != nil
}

// Draw renders every placement whose piece is bound and returns how many were drawn.
// Placements are drawn in order, so grouping them by piece keeps material switches low.
func (s *Scenery) Draw(rend renderer.Render, placements []Placement) (drawn int) {

	for i := 0; i < len(placements); i++ {

		p := &placements[i]
		look := &s.looks[p.Piece]
		if look.Mesh == nil || look.Mat == nil {
			continue
		}

		modelMat := gglm.NewTrMatId()
		rend.DrawMesh(look.Mesh, modelMat.TranslateVec(&p.Pos), look.Mat)
		drawn++
	}

	return drawn
}
