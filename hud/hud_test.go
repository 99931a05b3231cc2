package hud

import (
	"image"
	"testing"

	"golang.org/x/image/font"
)

func countInked(img *image.RGBA, r image.Rectangle) int {

	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}

	return n
}

func TestRasterizeFitsTheTextBlock(t *testing.T) {

	face, err := NewFace(20)
	if err != nil {
		t.Fatalf("failed to load face: %v", err)
	}
	defer face.Close()

	lines := []string{"FPS: 120", "Max depth: 31.5"}
	w, h := blockSize(face, lines, 20)

	// Go Mono is fixed width, so the longest line decides the width
	if want := font.MeasureString(face, "Max depth: 31.5").Ceil(); w != want {
		t.Errorf("block width: expected %d, got %d", want, w)
	}

	if h <= 20 || h > 2*20+10 {
		t.Errorf("block height: expected just over one line spacing, got %d", h)
	}

	img := rasterize(face, lines, 20, w, h)
	if img.Bounds() != image.Rect(0, 0, w, h) {
		t.Fatalf("expected bounds %v, got %v", image.Rect(0, 0, w, h), img.Bounds())
	}

	if countInked(img, image.Rect(0, 0, w, 20)) == 0 {
		t.Errorf("expected the first line inked in the top band")
	}

	if countInked(img, image.Rect(0, 20, w, h)) == 0 {
		t.Errorf("expected the second line inked below the first")
	}

	// A block sized image loses nothing: drawing bigger adds no ink outside it
	big := rasterize(face, lines, 20, w+50, h+50)
	if n := countInked(big, image.Rect(w, 0, w+50, h+50)) + countInked(big, image.Rect(0, h, w, h+50)); n != 0 {
		t.Errorf("expected no ink outside the measured block, got %d inked pixels", n)
	}
}

func TestTextureIsFarSmallerThanTheWindow(t *testing.T) {

	face, err := NewFace(20)
	if err != nil {
		t.Fatalf("failed to load face: %v", err)
	}
	defer face.Close()

	lines := []string{
		"FPS: 120",
		"Position: (1234.56, -789.01, 1.20)",
		"Max depth: 1234.56",
		"Look target x: 1235.56",
		"Draw calls: 397",
		"F - Toggle light",
		"G - Toggle pixelizer",
	}

	w, h := blockSize(face, lines, 20)
	tw, th := roundUp(w), roundUp(h)

	if tw < int32(w) || th < int32(h) || tw%texSizeStep != 0 || th%texSizeStep != 0 {
		t.Fatalf("expected %dx%d rounded up to the texture step, got %dx%d", w, h, tw, th)
	}

	// A 1280x720 rgba window image is 3.6MB
	if bytes := tw * th * 4; bytes > 1280*720*4/8 {
		t.Errorf("expected the text texture well under the window size, got %dx%d (%d bytes)", tw, th, bytes)
	}
}

func TestBlockViewport(t *testing.T) {

	x, y, w, h := blockViewport(Layout{X: 20, Y: 40, LineSpacing: 20}, 256, 192, 720)

	// Top left at (20, 40) from the window's top means bottom at 720-40-192 from its bottom
	if x != 20 || y != 488 || w != 256 || h != 192 {
		t.Errorf("expected (20, 488, 256, 192), got (%d, %d, %d, %d)", x, y, w, h)
	}
}

func TestEmptyTextHasNoBlock(t *testing.T) {

	face, err := NewFace(20)
	if err != nil {
		t.Fatalf("failed to load face: %v", err)
	}
	defer face.Close()

	if w, h := blockSize(face, nil, 20); w != 0 || h != 0 {
		t.Errorf("expected an empty block, got %dx%d", w, h)
	}

	img := rasterize(face, nil, 20, 64, 64)
	if n := countInked(img, img.Bounds()); n != 0 {
		t.Errorf("expected a transparent image, got %d inked pixels", n)
	}
}

func TestSetLinesMarksDirtyOnlyOnChange(t *testing.T) {

	o := &Overlay{}

	o.SetLines([]string{"a", "b"})
	if !o.dirty {
		t.Fatalf("expected new text to mark the overlay dirty")
	}

	o.dirty = false
	o.SetLines([]string{"a", "b"})
	if o.dirty {
		t.Errorf("expected identical text to be ignored")
	}

	o.SetLines([]string{"a", "c"})
	if !o.dirty {
		t.Errorf("expected changed text to mark the overlay dirty")
	}

	// The overlay must own its copy
	in := []string{"x"}
	o.SetLines(in)
	in[0] = "y"
	if o.Lines()[0] != "x" {
		t.Errorf("expected overlay lines to be copied, got %q", o.Lines()[0])
	}
}
