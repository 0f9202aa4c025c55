package graphics

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	FlipVertical(img)

	for y := range rows {
		assert.Equal(t, rows[len(rows)-1-y], img.RGBAAt(0, y), "row %d", y)
		assert.Equal(t, rows[len(rows)-1-y], img.RGBAAt(1, y), "row %d", y)
	}
}

func TestFlipVerticalSingleRow(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.SetRGBA(3, 0, color.RGBA{1, 2, 3, 4})
	FlipVertical(img)
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, img.RGBAAt(3, 0))
}

func TestIndexed(t *testing.T) {
	assert.Equal(t, "lightPos[3]", Indexed("lightPos", 3))
}
