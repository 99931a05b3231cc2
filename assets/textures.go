package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mandykoh/prism"
)

type TextureLoadOptions struct {
	// NoSrgba uploads the pixels as linear data
	NoSrgba bool
	// Nearest uses nearest filtering, for pixel art and text
	Nearest bool
	// Clamp clamps uvs to the edge instead of repeating
	Clamp bool
	// NoMipmaps skips mipmap generation
	NoMipmaps bool
}

type Texture struct {
	TexID  uint32
	Width  int32
	Height int32
}

var (
	DefaultDiffuseTexId  Texture
	DefaultEmissionTexId Texture
)

// CreateDefaultTextures makes the 1x1 textures unset material slots fall back to. Needs a GL context.
func CreateDefaultTextures() {

	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	copy(white.Pix, []uint8{255, 255, 255, 255})

	black := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	copy(black.Pix, []uint8{0, 0, 0, 255})

	opts := &TextureLoadOptions{Nearest: true, NoMipmaps: true}
	DefaultDiffuseTexId = uploadNRGBA(white, opts)
	DefaultEmissionTexId = uploadNRGBA(black, opts)
}

func LoadTexturePNG(path string, opts *TextureLoadOptions) (Texture, error) {

	f, err := os.Open(path)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to decode png %s: %w", path, err)
	}

	return LoadTextureFromImage(img, opts)
}

func LoadTextureFromImage(img image.Image, opts *TextureLoadOptions) (Texture, error) {

	if opts == nil {
		opts = &TextureLoadOptions{}
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return Texture{}, fmt.Errorf("texture image is empty, bounds=%v", b)
	}

	nrgba := prism.ConvertImageToNRGBA(img, runtime.NumCPU())
	return uploadNRGBA(nrgba, opts), nil
}

func uploadNRGBA(img *image.NRGBA, opts *TextureLoadOptions) Texture {

	tex := Texture{
		Width:  int32(img.Bounds().Dx()),
		Height: int32(img.Bounds().Dy()),
	}

	gl.GenTextures(1, &tex.TexID)
	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)

	wrap := int32(gl.REPEAT)
	if opts.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	minFilter, magFilter := int32(gl.LINEAR_MIPMAP_LINEAR), int32(gl.LINEAR)
	if opts.Nearest {
		minFilter, magFilter = gl.NEAREST_MIPMAP_NEAREST, gl.NEAREST
	}

	if opts.NoMipmaps {
		if opts.Nearest {
			minFilter = gl.NEAREST
		} else {
			minFilter = gl.LINEAR
		}
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	internalFormat := int32(gl.SRGB_ALPHA)
	if opts.NoSrgba {
		internalFormat = gl.RGBA8
	}

	// Image rows may be padded
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if !opts.NoMipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// UpdateFromRGBA replaces the texture contents. The image must be the texture's size.
func (t *Texture) UpdateFromRGBA(img *image.RGBA) error {

	if int32(img.Bounds().Dx()) != t.Width || int32(img.Bounds().Dy()) != t.Height {
		return fmt.Errorf("texture update size mismatch: texture is %dx%d, image is %dx%d", t.Width, t.Height, img.Bounds().Dx(), img.Bounds().Dy())
	}

	gl.BindTexture(gl.TEXTURE_2D, t.TexID)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.Width, t.Height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return nil
}

func (t *Texture) Delete() {

	if t.TexID == 0 {
		return
	}

	gl.DeleteTextures(1, &t.TexID)
	t.TexID = 0
}
