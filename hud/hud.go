// Package hud draws lines of debug text over the finished frame.
//
// Text is rasterised on the cpu with freetype into an image just big enough for the
// text block, which is uploaded as a texture and drawn with one triangle covering a
// viewport placed over the block. Rasterising only happens when the text changes.
package hud

import (
	"fmt"
	"image"
	"slices"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/assets"
	"github.com/bloeys/scp087/buffers"
	"github.com/bloeys/scp087/materials"
	"github.com/bloeys/scp087/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Layout places the text block. X and Y are the top left of the first line in pixels.
type Layout struct {
	X           int
	Y           int
	LineSpacing int
}

type Overlay struct {
	Layout Layout

	face  font.Face
	lines []string
	dirty bool
	// img is the cpu copy of tex, reused between redraws
	img *image.RGBA

	tex       assets.Texture
	mat       materials.Material
	screenVao buffers.VertexArray

	// Window size, used to place and restore the viewport
	width  int32
	height int32
}

// texSizeStep is the granularity the text texture grows by, so small changes
// in text width don't reallocate it
const texSizeStep = 64

// SetLines replaces the shown text. The texture is only redrawn when the text actually changed.
func (o *Overlay) SetLines(lines []string) {

	if slices.Equal(o.lines, lines) {
		return
	}

	o.lines = append(o.lines[:0], lines...)
	o.dirty = true
}

func (o *Overlay) Lines() []string {
	return o.lines
}

func (o *Overlay) Draw(rend renderer.Render) error {

	if len(o.lines) == 0 {
		return nil
	}

	if o.dirty {
		if err := o.redraw(); err != nil {
			return err
		}
		o.dirty = false
	}

	x, y, w, h := blockViewport(o.Layout, o.tex.Width, o.tex.Height, o.height)
	gl.Viewport(x, y, w, h)

	o.mat.DiffuseTex = o.tex.TexID
	o.mat.Bind()
	rend.DrawVertexArray(&o.mat, &o.screenVao, 0, 3)

	gl.Viewport(0, 0, o.width, o.height)
	return nil
}

// redraw rasterises the lines and uploads them, growing the texture if the block no longer fits
func (o *Overlay) redraw() error {

	bw, bh := blockSize(o.face, o.lines, o.Layout.LineSpacing)
	if int32(bw) > o.tex.Width || int32(bh) > o.tex.Height {

		tex, err := newTextTexture(max(o.tex.Width, roundUp(bw)), max(o.tex.Height, roundUp(bh)))
		if err != nil {
			return err
		}

		o.tex.Delete()
		o.tex = tex
		o.img = nil
	}

	if o.img == nil {
		o.img = image.NewRGBA(image.Rect(0, 0, int(o.tex.Width), int(o.tex.Height)))
	} else {
		clear(o.img.Pix)
	}

	drawLines(o.img, o.face, o.lines, o.Layout.LineSpacing)
	return o.tex.UpdateFromRGBA(o.img)
}

// Resize records the new window size. The text texture doesn't depend on it.
func (o *Overlay) Resize(width, height int32) {

	if width <= 0 || height <= 0 {
		return
	}

	o.width = width
	o.height = height
}

func (o *Overlay) Delete() {
	o.tex.Delete()
	o.mat.Delete()
	o.screenVao.Delete()
	o.face.Close()
}

func newTextTexture(width, height int32) (assets.Texture, error) {
	return assets.LoadTextureFromImage(
		image.NewRGBA(image.Rect(0, 0, int(width), int(height))),
		&assets.TextureLoadOptions{NoSrgba: true, Nearest: true, Clamp: true, NoMipmaps: true},
	)
}

func roundUp(n int) int32 {
	return int32((n + texSizeStep - 1) / texSizeStep * texSizeStep)
}

// blockViewport places a texW by texH viewport with its top left at the layout position.
// GL viewports start at the bottom left of a window winH pixels tall.
func blockViewport(layout Layout, texW, texH, winH int32) (x, y, w, h int32) {
	return int32(layout.X), winH - int32(layout.Y) - texH, texW, texH
}

// NewFace loads the embedded Go Mono font at the given pixel size
func NewFace(size float64) (font.Face, error) {

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hud font: %w", err)
	}

	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// NewOverlay creates an overlay for a window of the given size that draws its text in color (rgba, 0-1).
// shaderPath is the screen quad shader, used in alpha mask mode.
func NewOverlay(width, height int32, fontSize float64, color [4]float32, layout Layout, shaderPath string) (*Overlay, error) {

	face, err := NewFace(fontSize)
	if err != nil {
		return nil, err
	}

	mat, err := materials.NewMaterial("hud", shaderPath)
	if err != nil {
		face.Close()
		return nil, err
	}

	tex, err := newTextTexture(texSizeStep, texSizeStep)
	if err != nil {
		face.Close()
		mat.Delete()
		return nil, err
	}

	o := &Overlay{
		Layout:    layout,
		face:      face,
		tex:       tex,
		mat:       mat,
		screenVao: buffers.NewVertexArray(),
		width:     width,
		height:    height,
	}

	tint := gglm.NewVec4(color[0], color[1], color[2], color[3])
	o.mat.SetUnifInt32("flipY", 1)
	o.mat.SetUnifInt32("alphaMask", 1)
	o.mat.SetUnifVec4("tint", &tint)

	return o, nil
}

// blockSize is the pixel size of lines drawn lineSpacing apart, from the top of the
// first line's ascent to the bottom of the last line's descent
func blockSize(face font.Face, lines []string, lineSpacing int) (w, h int) {

	if len(lines) == 0 {
		return 0, 0
	}

	for _, line := range lines {
		w = max(w, font.MeasureString(face, line).Ceil())
	}

	m := face.Metrics()
	h = (len(lines)-1)*lineSpacing + m.Ascent.Ceil() + m.Descent.Ceil()
	return w, h
}

// rasterize draws lines in white into a transparent w by h image, the first line's top at y=0.
// Lines that fall outside the image are clipped.
func rasterize(face font.Face, lines []string, lineSpacing int, w, h int) *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	drawLines(img, face, lines, lineSpacing)
	return img
}

func drawLines(img *image.RGBA, face font.Face, lines []string, lineSpacing int) {

	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	// The drawer works on baselines
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(0, ascent+i*lineSpacing)
		d.DrawString(line)
	}
}
