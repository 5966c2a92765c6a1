package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // Texture formats.
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// decodeFlipped decodes an image into RGBA with the first row at the bottom, which is
// where OpenGL expects texture coordinate v=0.
func decodeFlipped(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	row := make([]byte, rgba.Stride)
	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := rgba.Pix[top*rgba.Stride : (top+1)*rgba.Stride]
		bt := rgba.Pix[bottom*rgba.Stride : (bottom+1)*rgba.Stride]
		copy(row, t)
		copy(t, bt)
		copy(bt, row)
	}
	return rgba, nil
}

func upload(width, height int32, pix []byte, mipmaps bool) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	if mipmaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	if mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// LoadTexture loads an image file into a mipmapped texture.
func LoadTexture(path string) (uint32, error) {
	rgba, err := decodeFlipped(path)
	if err != nil {
		return 0, err
	}
	size := rgba.Rect.Size()
	return upload(int32(size.X), int32(size.Y), rgba.Pix, true), nil
}

// WhiteTexture returns a 1x1 white texture, bound for untextured draws and missing images.
func WhiteTexture() uint32 {
	return upload(1, 1, []byte{255, 255, 255, 255}, false)
}
