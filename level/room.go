package level

// Room is a short straight row of identical blocks
type Room struct {
	Count   int
	Spacing float32
	Y       float32
}

func NewRoom(count int, spacing, y float32) Room {
	return Room{Count: count, Spacing: spacing, Y: y}
}

func (r *Room) Placements(dst []Placement) []Placement {

	for i := 0; i < r.Count; i++ {
		dst = place(dst, PieceWall, 0, r.Y, r.Spacing*float32(i))
	}

	return dst
}
