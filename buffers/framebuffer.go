package buffers

import (
	"github.com/bloeys/scp087/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type FramebufferAttachmentType int32

const (
	FramebufferAttachmentType_Unknown FramebufferAttachmentType = iota
	FramebufferAttachmentType_Texture
	FramebufferAttachmentType_Renderbuffer
)

func (f FramebufferAttachmentType) IsValid() bool {
	return f == FramebufferAttachmentType_Texture || f == FramebufferAttachmentType_Renderbuffer
}

type FramebufferAttachmentDataFormat int32

const (
	FramebufferAttachmentDataFormat_Unknown FramebufferAttachmentDataFormat = iota
	FramebufferAttachmentDataFormat_RGBA8
	FramebufferAttachmentDataFormat_SRGBA
	FramebufferAttachmentDataFormat_Depth24Stencil8
)

func (f FramebufferAttachmentDataFormat) IsColorFormat() bool {
	return f == FramebufferAttachmentDataFormat_RGBA8 || f == FramebufferAttachmentDataFormat_SRGBA
}

func (f FramebufferAttachmentDataFormat) IsDepthFormat() bool {
	return f == FramebufferAttachmentDataFormat_Depth24Stencil8
}

func (f FramebufferAttachmentDataFormat) GlInternalFormat() int32 {

	switch f {
	case FramebufferAttachmentDataFormat_RGBA8:
		return gl.RGBA8
	case FramebufferAttachmentDataFormat_SRGBA:
		return gl.SRGB8_ALPHA8
	case FramebufferAttachmentDataFormat_Depth24Stencil8:
		return gl.DEPTH24_STENCIL8
	default:
		logging.ErrLog.Fatalf("unknown framebuffer attachment data format. Format=%d\n", f)
		return 0
	}
}

func (f FramebufferAttachmentDataFormat) GlFormat() uint32 {

	switch f {
	case FramebufferAttachmentDataFormat_RGBA8, FramebufferAttachmentDataFormat_SRGBA:
		return gl.RGBA
	case FramebufferAttachmentDataFormat_Depth24Stencil8:
		return gl.DEPTH_STENCIL
	default:
		logging.ErrLog.Fatalf("unknown framebuffer attachment data format. Format=%d\n", f)
		return 0
	}
}

func (f FramebufferAttachmentDataFormat) GlDataType() uint32 {

	if f == FramebufferAttachmentDataFormat_Depth24Stencil8 {
		return gl.UNSIGNED_INT_24_8
	}

	return gl.UNSIGNED_BYTE
}

type FramebufferAttachment struct {
	Id     uint32
	Type   FramebufferAttachmentType
	Format FramebufferAttachmentDataFormat
	// Point is the gl attachment point, e.g. COLOR_ATTACHMENT0
	Point uint32
}

type Framebuffer struct {
	Id                    uint32
	Attachments           []FramebufferAttachment
	ColorAttachmentsCount uint32
	Width                 uint32
	Height                uint32
	ClearColor            [4]float32
}

func (fbo *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
}

func (fbo *Framebuffer) BindWithViewport() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
	gl.Viewport(0, 0, int32(fbo.Width), int32(fbo.Height))
}

func (fbo *Framebuffer) UnBind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (fbo *Framebuffer) UnBindWithViewport(width, height uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears every attachment of the currently bound fbo
func (fbo *Framebuffer) Clear() {
	gl.ClearColor(fbo.ClearColor[0], fbo.ClearColor[1], fbo.ClearColor[2], fbo.ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// IsComplete returns true if OpenGL reports that the fbo is complete/usable.
// Note that this function binds and then unbinds the fbo
func (fbo *Framebuffer) IsComplete() bool {
	fbo.Bind()
	isComplete := gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
	fbo.UnBind()
	return isComplete
}

func (fbo *Framebuffer) HasDepthAttachment() bool {

	for i := 0; i < len(fbo.Attachments); i++ {
		if fbo.Attachments[i].Format.IsDepthFormat() {
			return true
		}
	}

	return false
}

func (fbo *Framebuffer) NewColorAttachment(attachType FramebufferAttachmentType, attachFormat FramebufferAttachmentDataFormat) {

	if fbo.ColorAttachmentsCount == 8 {
		logging.ErrLog.Fatalf("failed creating color attachment for framebuffer due it already having %d attached\n", fbo.ColorAttachmentsCount)
	}

	if !attachType.IsValid() {
		logging.ErrLog.Fatalf("failed creating color attachment for framebuffer due to unknown attachment type. Type=%d\n", attachType)
	}

	if !attachFormat.IsColorFormat() {
		logging.ErrLog.Fatalf("failed creating color attachment for framebuffer due to attachment data format not being a valid color type. Data format=%d\n", attachFormat)
	}

	a := FramebufferAttachment{
		Type:   attachType,
		Format: attachFormat,
		Point:  gl.COLOR_ATTACHMENT0 + fbo.ColorAttachmentsCount,
	}

	fbo.createAttachmentStorage(&a)
	fbo.ColorAttachmentsCount++
	fbo.Attachments = append(fbo.Attachments, a)
}

func (fbo *Framebuffer) NewDepthStencilAttachment(attachType FramebufferAttachmentType, attachFormat FramebufferAttachmentDataFormat) {

	if fbo.HasDepthAttachment() {
		logging.ErrLog.Fatalf("failed creating depth-stencil attachment for framebuffer because a depth-stencil attachment already exists\n")
	}

	if !attachType.IsValid() {
		logging.ErrLog.Fatalf("failed creating depth-stencil attachment for framebuffer due to unknown attachment type. Type=%d\n", attachType)
	}

	if !attachFormat.IsDepthFormat() {
		logging.ErrLog.Fatalf("failed creating depth-stencil attachment for framebuffer due to attachment data format not being a valid depth-stencil type. Data format=%d\n", attachFormat)
	}

	a := FramebufferAttachment{
		Type:   attachType,
		Format: attachFormat,
		Point:  gl.DEPTH_STENCIL_ATTACHMENT,
	}

	fbo.createAttachmentStorage(&a)
	fbo.Attachments = append(fbo.Attachments, a)
}

// createAttachmentStorage allocates a texture or renderbuffer of the fbo size for a and attaches it
func (fbo *Framebuffer) createAttachmentStorage(a *FramebufferAttachment) {

	fbo.Bind()

	if a.Type == FramebufferAttachmentType_Texture {

		gl.GenTextures(1, &a.Id)
		if a.Id == 0 {
			logging.ErrLog.Fatalf("failed to generate texture for framebuffer. GlError=%d\n", gl.GetError())
		}

		filter := int32(gl.LINEAR)
		if a.Format.IsDepthFormat() {
			filter = gl.NEAREST
		}

		gl.BindTexture(gl.TEXTURE_2D, a.Id)
		gl.TexImage2D(gl.TEXTURE_2D, 0, a.Format.GlInternalFormat(), int32(fbo.Width), int32(fbo.Height), 0, a.Format.GlFormat(), a.Format.GlDataType(), nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		gl.FramebufferTexture2D(gl.FRAMEBUFFER, a.Point, gl.TEXTURE_2D, a.Id, 0)

	} else {

		gl.GenRenderbuffers(1, &a.Id)
		if a.Id == 0 {
			logging.ErrLog.Fatalf("failed to generate render buffer for framebuffer. GlError=%d\n", gl.GetError())
		}

		gl.BindRenderbuffer(gl.RENDERBUFFER, a.Id)
		gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(a.Format.GlInternalFormat()), int32(fbo.Width), int32(fbo.Height))
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, a.Point, gl.RENDERBUFFER, a.Id)
	}

	fbo.UnBind()
}

func (a *FramebufferAttachment) delete() {

	if a.Type == FramebufferAttachmentType_Texture {
		gl.DeleteTextures(1, &a.Id)
	} else {
		gl.DeleteRenderbuffers(1, &a.Id)
	}

	a.Id = 0
}

// Resize reallocates every attachment at the new size. Attachment ids change.
func (fbo *Framebuffer) Resize(width, height uint32) {

	if width == fbo.Width && height == fbo.Height {
		return
	}

	fbo.Width = width
	fbo.Height = height

	for i := 0; i < len(fbo.Attachments); i++ {
		a := &fbo.Attachments[i]
		a.delete()
		fbo.createAttachmentStorage(a)
	}
}

func (fbo *Framebuffer) Delete() {

	if fbo.Id == 0 {
		return
	}

	for i := 0; i < len(fbo.Attachments); i++ {
		fbo.Attachments[i].delete()
	}

	gl.DeleteFramebuffers(1, &fbo.Id)
	fbo.Id = 0
	fbo.Attachments = nil
	fbo.ColorAttachmentsCount = 0
}

func NewFramebuffer(width, height uint32) Framebuffer {

	// All attachments share the fbo size so one viewport fits all of them
	fbo := Framebuffer{
		Width:      width,
		Height:     height,
		ClearColor: [4]float32{0, 0, 0, 1},
	}

	gl.GenFramebuffers(1, &fbo.Id)
	if fbo.Id == 0 {
		logging.ErrLog.Fatalf("failed to generate framebuffer. GlError=%d\n", gl.GetError())
	}

	return fbo
}
