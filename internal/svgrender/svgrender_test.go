package svgrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redSquareSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">
  <rect x="0" y="0" width="24" height="24" fill="#ff0000"/>
</svg>`

func TestRender(t *testing.T) {
	t.Run("identity scale", func(t *testing.T) {
		img, err := Render([]byte(redSquareSVG), 1)
		require.NoError(t, err)

		bounds := img.Bounds()
		assert.Equal(t, 24, bounds.Dx())
		assert.Equal(t, 24, bounds.Dy())
		assert.Len(t, img.Pix, 24*24*4)

		r, _, _, a := img.At(12, 12).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Equal(t, uint32(0xffff), a)
	})

	t.Run("upscale doubles dimensions", func(t *testing.T) {
		img, err := Render([]byte(redSquareSVG), 2)
		require.NoError(t, err)

		bounds := img.Bounds()
		assert.Equal(t, 48, bounds.Dx())
		assert.Equal(t, 48, bounds.Dy())

		_, _, _, a := img.At(24, 24).RGBA()
		assert.Equal(t, uint32(0xffff), a)
	})

	t.Run("fractional scale truncates", func(t *testing.T) {
		img, err := Render([]byte(redSquareSVG), 1.25)
		require.NoError(t, err)
		assert.Equal(t, 30, img.Bounds().Dx())
		assert.Equal(t, 30, img.Bounds().Dy())
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := Render([]byte("not an svg"), 1)
		assert.Error(t, err)
	})

	t.Run("zero scale", func(t *testing.T) {
		_, err := Render([]byte(redSquareSVG), 0)
		assert.ErrorContains(t, err, "empty raster")
	})
}
