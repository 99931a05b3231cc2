// Package postfx renders the scene into an offscreen target and then presents it
// to the window, either as is or pixelated into blocks.
package postfx

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/assert"
	"github.com/bloeys/scp087/buffers"
	"github.com/bloeys/scp087/materials"
	"github.com/bloeys/scp087/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// screenTriangleVerts is the vertex count of the fullscreen triangle the screen shaders build from gl_VertexID
const screenTriangleVerts = 3

type Pipeline struct {
	SceneFbo buffers.Framebuffer

	PixelizerMat   materials.Material
	PassthroughMat materials.Material

	// Core profile won't draw without a bound vao even when no attributes are read
	screenVao buffers.VertexArray

	width     int32
	height    int32
}

// BeginScene redirects drawing into the scene target and clears it
func (p *Pipeline) BeginScene() {

	p.SceneFbo.BindWithViewport()
	p.SceneFbo.Clear()
	gl.Enable(gl.DEPTH_TEST)
}

func (p *Pipeline) EndScene() {
	p.SceneFbo.UnBindWithViewport(uint32(p.width), uint32(p.height))
}

// Present draws the scene target over the whole window. Depth testing is left off for the overlays drawn after it.
func (p *Pipeline) Present(rend renderer.Render, pixelize bool) {

	gl.Disable(gl.DEPTH_TEST)

	mat := &p.PassthroughMat
	if pixelize {
		mat = &p.PixelizerMat
	}

	// Resizes replace the attachment, so the texture is looked up every time
	mat.DiffuseTex = p.SceneColorTex()
	mat.Bind()

	rend.DrawVertexArray(mat, &p.screenVao, 0, screenTriangleVerts)
}

// SceneColorTex is the texture the scene was rendered into
func (p *Pipeline) SceneColorTex() uint32 {
	return p.SceneFbo.Attachments[0].Id
}

// SetPixelSize sets the size in window pixels of one pixelizer block
func (p *Pipeline) SetPixelSize(width, height float32) {

	assert.T(width >= 1 && height >= 1, "pixelizer block size must be at least 1x1, got %vx%v", width, height)

	pixelSize := gglm.Vec2{Data: [2]float32{width, height}}
	p.PixelizerMat.SetUnifVec2("pixelSize", &pixelSize)
}

func (p *Pipeline) Resize(width, height int32) {

	if width <= 0 || height <= 0 {
		return
	}

	p.width = width
	p.height = height
	p.SceneFbo.Resize(uint32(width), uint32(height))

	renderSize := gglm.Vec2{Data: [2]float32{float32(width), float32(height)}}
	p.PixelizerMat.SetUnifVec2("renderSize", &renderSize)
}

func (p *Pipeline) Delete() {
	p.SceneFbo.Delete()
	p.screenVao.Delete()
	p.PixelizerMat.Delete()
	p.PassthroughMat.Delete()
}

// NewPipeline creates a scene target of the given size with an sRGB colour texture and a depth-stencil renderbuffer.
// The shaders are combined shader files that draw a fullscreen triangle sampling 'diffTex'.
func NewPipeline(width, height int32, pixelizerShaderPath, passthroughShaderPath string) (*Pipeline, error) {

	pixelizerMat, err := materials.NewMaterial("pixelizer", pixelizerShaderPath)
	if err != nil {
		return nil, err
	}

	passthroughMat, err := materials.NewMaterial("passthrough", passthroughShaderPath)
	if err != nil {
		pixelizerMat.Delete()
		return nil, err
	}

	p := &Pipeline{
		SceneFbo:       buffers.NewFramebuffer(uint32(width), uint32(height)),
		PixelizerMat:   pixelizerMat,
		PassthroughMat: passthroughMat,
		screenVao:      buffers.NewVertexArray(),
		width:          width,
		height:         height,
	}

	p.SceneFbo.NewColorAttachment(buffers.FramebufferAttachmentType_Texture, buffers.FramebufferAttachmentDataFormat_SRGBA)
	p.SceneFbo.NewDepthStencilAttachment(buffers.FramebufferAttachmentType_Renderbuffer, buffers.FramebufferAttachmentDataFormat_Depth24Stencil8)
	if !p.SceneFbo.IsComplete() {
		p.Delete()
		return nil, fmt.Errorf("scene framebuffer of size %dx%d is incomplete", width, height)
	}

	// The scene target is bottom row first like the window, so no flip
	p.PassthroughMat.SetUnifInt32("flipY", 0)
	p.PassthroughMat.SetUnifInt32("alphaMask", 0)
	white := gglm.NewVec4(1, 1, 1, 1)
	p.PassthroughMat.SetUnifVec4("tint", &white)

	renderSize := gglm.Vec2{Data: [2]float32{float32(width), float32(height)}}
	p.PixelizerMat.SetUnifVec2("renderSize", &renderSize)
	p.SetPixelSize(1, 1)

	return p, nil
}
