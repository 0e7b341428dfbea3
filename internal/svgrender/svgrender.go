// Package svgrender rasterizes SVG cursor frames into RGBA buffers using
// oksvg for parsing and rasterx for scanline rendering.
package svgrender

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Render parses an SVG document and rasterizes it at a uniform scale. The
// output dimensions are the document's intrinsic (viewBox) dimensions
// multiplied by scale and truncated to whole pixels.
func Render(data []byte, scale float64) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	width := int(icon.ViewBox.W * scale)
	height := int(icon.ViewBox.H * scale)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg yields empty raster (%gx%g at scale %g)",
			icon.ViewBox.W, icon.ViewBox.H, scale)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, nil
}
