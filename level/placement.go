package level

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
)

// Piece is a kind of scenery block. Every piece of one kind shares a mesh and material.
type Piece uint8

const (
	PieceFloor Piece = iota
	PieceCeiling
	PieceWall
	PieceBackWall

	PieceCount
)

func (p Piece) String() string {

	switch p {
	case PieceFloor:
		return "floor"
	case PieceCeiling:
		return "ceiling"
	case PieceWall:
		return "wall"
	case PieceBackWall:
		return "backwall"
	default:
		return fmt.Sprintf("Piece(%d)", p)
	}
}

// ParsePiece maps config piece names to pieces
func ParsePiece(s string) (Piece, error) {

	for p := Piece(0); p < PieceCount; p++ {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("unknown scenery piece %q", s)
}

// Placement is one piece drawn at the world position of its center
type Placement struct {
	Piece Piece
	Pos   gglm.Vec3
}

func place(dst []Placement, p Piece, x, y, z float32) []Placement {
	return append(dst, Placement{Piece: p, Pos: gglm.Vec3{Data: [3]float32{x, y, z}}})
}
