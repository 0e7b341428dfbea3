package cursortheme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Meta describes one animation frame of an SVG cursor icon, as declared by
// the icon directory's metadata.json. Record order defines frame order.
type Meta struct {
	// Filename of the frame's SVG document, relative to the icon directory.
	Filename string `json:"filename"`
	// HotspotX and HotspotY locate the pointer tip in source (unscaled)
	// units.
	HotspotX float64 `json:"hotspot_x"`
	HotspotY float64 `json:"hotspot_y"`
	// NominalSize is the size the SVG was authored for; the render scale is
	// the requested size divided by it.
	NominalSize float64 `json:"nominal_size"`
	// Delay before advancing to the next frame, in milliseconds.
	Delay uint32 `json:"delay,omitempty"`
}

// readMetadata reads an SVG icon directory's metadata.json fresh from disk.
// An absent or empty document is ErrNoFrames; a document that fails to parse
// is a malformed-input error.
func readMetadata(dir string) ([]Meta, error) {
	path := filepath.Join(dir, metadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, dir)
	}

	var metas []Meta
	if err := json.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(metas) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, dir)
	}
	return metas, nil
}
