package openglhelper

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a GPU texture object together with the target it was created for.
type Texture struct {
	ID     uint32
	Target uint32 // GL_TEXTURE_2D or GL_TEXTURE_CUBE_MAP
	Width  int
	Height int
}

// CubemapFaces lists face image paths in +X, -X, +Y, -Y, +Z, -Z order.
type CubemapFaces [6]string

// LoadTexture2D creates a repeating, mipmapped 2D texture from an image file.
// The texture object is always returned. If the image cannot be decoded the
// error is returned alongside it and the texture stays unpopulated.
func LoadTexture2D(path string) (*Texture, error) {
	tex := &Texture{Target: gl.TEXTURE_2D}
	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	img, err := DecodeRGBA(path, true)
	if err != nil {
		return tex, err
	}

	tex.Width, tex.Height = img.Bounds().Dx(), img.Bounds().Dy()
	upload(gl.TEXTURE_2D, img)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return tex, nil
}

// LoadCubemap creates a cube map texture from six face images. Faces that
// fail to decode are skipped and reported in the joined error; the rest are
// still uploaded.
func LoadCubemap(faces CubemapFaces) (*Texture, error) {
	tex := &Texture{Target: gl.TEXTURE_CUBE_MAP}
	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex.ID)

	var errs []error
	for i, path := range faces {
		img, err := DecodeRGBA(path, false)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tex.Width, tex.Height = img.Bounds().Dx(), img.Bounds().Dy()
		upload(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), img)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	return tex, errors.Join(errs...)
}

func upload(target uint32, img *image.RGBA) {
	if len(img.Pix) == 0 {
		return
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(target, 0, gl.RGBA8,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// Bind makes the texture current on the given texture unit
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Delete releases the texture object
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
