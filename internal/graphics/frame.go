package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFrame copies the current default framebuffer into an image. GL rows start at the
// bottom, so the result is flipped to image order.
func ReadFrame(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	FlipVertical(img)
	return img
}

// FlipVertical reverses the row order of img in place
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[top*img.Stride : (top+1)*img.Stride]
		b := img.Pix[bottom*img.Stride : (bottom+1)*img.Stride]
		copy(row, t)
		copy(t, b)
		copy(b, row)
	}
}
