package level

import (
	"fmt"

	"github.com/bloeys/scp087/assert"
	"github.com/chewxy/math32"
)

type ModuloMode uint8

const (
	// ModuloTrunc truncates the camera position toward zero before taking a
	// remainder that keeps the sign of the position. For negative positions the
	// origin lands ahead of the camera.
	ModuloTrunc ModuloMode = iota
	// ModuloFloor always picks the chunk boundary at or behind the camera
	ModuloFloor
)

func (m ModuloMode) String() string {

	switch m {
	case ModuloTrunc:
		return "trunc"
	case ModuloFloor:
		return "floor"
	default:
		return fmt.Sprintf("ModuloMode(%d)", m)
	}
}

func ParseModuloMode(s string) (ModuloMode, error) {

	switch s {
	case "trunc":
		return ModuloTrunc, nil
	case "floor":
		return ModuloFloor, nil
	default:
		return 0, fmt.Errorf("unknown modulo mode %q, expected 'trunc' or 'floor'", s)
	}
}

// ChunkOrigin returns the start of the chunk the camera is in
func ChunkOrigin(camX, chunkLen float32, mode ModuloMode) float32 {

	if mode == ModuloFloor {

		origin := math32.Floor(camX/chunkLen) * chunkLen

		// The division can round across a boundary
		if origin > camX {
			origin -= chunkLen
		} else if camX >= origin+chunkLen {
			origin += chunkLen
		}

		return origin
	}

	whole := math32.Trunc(camX)
	return whole - math32.Mod(whole, chunkLen)
}

const (
	floorTilesPerChunk   = 10
	ceilingTilesPerChunk = 2 * 10
	wallsPerChunk        = 2 * 3

	PiecesPerChunk = floorTilesPerChunk + ceilingTilesPerChunk + wallsPerChunk
)

// Corridor tiles the endless stairwell. Only a fixed window of chunks around
// the camera is ever produced, so the cost of a frame doesn't grow with the
// distance walked.
//
// The stairs descend along +x. Every y coordinate is shifted by the camera x,
// so the steps under the player stay at the same height while the walk goes on.
type Corridor struct {
	ChunkLength float32
	// Radius is how many chunks are drawn on each side of the camera chunk
	Radius   int
	Mode     ModuloMode
	BackWall bool
}

func NewCorridor(chunkLen float32, radius int, mode ModuloMode, backWall bool) Corridor {

	assert.T(chunkLen > 0, "corridor chunk length must be positive, got %v", chunkLen)
	assert.T(radius >= 0, "corridor radius can't be negative, got %d", radius)

	return Corridor{
		ChunkLength: chunkLen,
		Radius:      radius,
		Mode:        mode,
		BackWall:    backWall,
	}
}

func (c *Corridor) ChunkCount() int {
	return 2*c.Radius + 1
}

// PlacementsPerFrame is the exact number of placements Placements returns for any camera position
func (c *Corridor) PlacementsPerFrame() int {

	n := c.ChunkCount() * PiecesPerChunk
	if c.BackWall {
		n++
	}

	return n
}

// ChunkOrigins appends the origins of every chunk in the window around camX, nearest ones first
func (c *Corridor) ChunkOrigins(camX float32, dst []float32) []float32 {

	origin := ChunkOrigin(camX, c.ChunkLength, c.Mode)

	dst = append(dst, origin)
	for i := 1; i <= c.Radius; i++ {
		step := float32(i) * c.ChunkLength
		dst = append(dst, origin+step, origin-step)
	}

	return dst
}

// Placements appends everything to draw this frame to dst and returns it
func (c *Corridor) Placements(camX float32, dst []Placement) []Placement {

	var originsBuf [32]float32
	origins := c.ChunkOrigins(camX, originsBuf[:0])

	for _, off := range origins {
		dst = appendChunk(dst, camX, off)
	}

	if c.BackWall {
		dst = place(dst, PieceBackWall, -5.75, 10+camX, 0)
	}

	return dst
}

func appendChunk(dst []Placement, camX, off float32) []Placement {

	// Stairs
	for i := 0; i < floorTilesPerChunk; i++ {
		fi := float32(i)
		dst = place(dst, PieceFloor, 0.5*fi+off, -0.5*fi+camX-off, 0)
	}

	// Ceiling steps. Two rows offset half a chunk apart.
	for i := 0; i < ceilingTilesPerChunk/2; i++ {
		fi := float32(i)
		dst = place(dst, PieceCeiling, 0.25*fi+off, 7-0.25*fi+camX-off, 0)
		dst = place(dst, PieceCeiling, 2.5+0.25*fi+off, 4.5-0.25*fi+camX-off, 0)
	}

	// Side walls, three panels stacked per side
	for _, z := range [2]float32{-2, 2} {
		for _, y := range [3]float32{0, 5, -5} {
			dst = place(dst, PieceWall, 2.5+off, y+camX-off, z)
		}
	}

	return dst
}
