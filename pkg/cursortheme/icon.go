package cursortheme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/kursor/internal/svgrender"
	"github.com/bnema/kursor/internal/xcursor"
)

// ErrNoFrames is returned by Frames when the icon's source data is absent,
// unreadable, or holds no frames. It is an expected outcome, distinct from a
// malformed-input error.
var ErrNoFrames = errors.New("cursor icon has no frames")

type iconKind uint8

const (
	kindXcursor iconKind = iota
	kindSVG
)

// Icon is one cursor shape of a resolved theme, backed by either a legacy
// Xcursor file or an SVG icon directory. The backing path is fixed at
// discovery time; which format backs the icon is an implementation detail.
type Icon struct {
	kind iconKind
	path string
}

func newXcursorIcon(path string) *Icon { return &Icon{kind: kindXcursor, path: path} }
func newSVGIcon(path string) *Icon    { return &Icon{kind: kindSVG, path: path} }

// Path returns the filesystem path backing the icon: a single file for the
// Xcursor format, a directory for the SVG format.
func (ic *Icon) Path() string { return ic.path }

// Frame is one extracted cursor image. Pixels is a row-major RGBA buffer of
// exactly Width*Height*4 bytes, owned by the caller; nothing is cached
// between Frames calls.
type Frame struct {
	// Size is the nominal size of the frame: the embedded size that matched
	// the request (Xcursor) or the requested size itself (SVG).
	Size uint32
	// Width and Height are the concrete pixel dimensions; they may differ
	// from Size for non-square or fractionally scaled content.
	Width  uint32
	Height uint32
	// XHot and YHot locate the pointer tip, in output pixels.
	XHot uint32
	YHot uint32
	// Delay is the inter-frame delay in milliseconds, 0 when the source
	// declares none.
	Delay  uint32
	Pixels []byte
}

// Frames extracts the icon's animation frames at the requested size, in
// animation order. Xcursor icons yield the embedded variant nearest to the
// requested size; SVG icons are rasterized at requested/nominal scale.
// Absent or empty source data yields ErrNoFrames; malformed SVG metadata or
// an unrenderable frame fails the whole call, never a partial sequence.
func (ic *Icon) Frames(size uint32) ([]Frame, error) {
	switch ic.kind {
	case kindSVG:
		return ic.svgFrames(size)
	default:
		return ic.xcursorFrames(size)
	}
}

func (ic *Icon) xcursorFrames(size uint32) ([]Frame, error) {
	data, err := os.ReadFile(ic.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, ic.path)
	}
	images, err := xcursor.Decode(data)
	if err != nil || len(images) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, ic.path)
	}

	// Nearest embedded nominal size; ties keep the earlier record, so the
	// selection is stable on decoder order.
	nearest := images[0].Size
	for _, img := range images[1:] {
		if absDiff(img.Size, size) < absDiff(nearest, size) {
			nearest = img.Size
		}
	}

	var frames []Frame
	for _, img := range images {
		if img.Size != nearest {
			continue
		}
		frames = append(frames, Frame{
			Size:   img.Size,
			Width:  img.Width,
			Height: img.Height,
			XHot:   img.XHot,
			YHot:   img.YHot,
			Delay:  img.Delay,
			Pixels: img.Pixels,
		})
	}
	return frames, nil
}

func (ic *Icon) svgFrames(size uint32) ([]Frame, error) {
	metas, err := readMetadata(ic.path)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, len(metas))
	for _, meta := range metas {
		frame, err := renderSVGFrame(ic.path, size, meta)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func renderSVGFrame(dir string, size uint32, meta Meta) (Frame, error) {
	if meta.NominalSize <= 0 {
		return Frame{}, fmt.Errorf("frame %s: invalid nominal size %g", meta.Filename, meta.NominalSize)
	}
	data, err := os.ReadFile(filepath.Join(dir, meta.Filename))
	if err != nil {
		return Frame{}, fmt.Errorf("read frame: %w", err)
	}

	scale := float64(size) / meta.NominalSize
	img, err := svgrender.Render(data, scale)
	if err != nil {
		return Frame{}, fmt.Errorf("render frame %s: %w", meta.Filename, err)
	}

	bounds := img.Bounds()
	return Frame{
		Size:   size,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		XHot:   uint32(meta.HotspotX * scale),
		YHot:   uint32(meta.HotspotY * scale),
		Delay:  meta.Delay,
		Pixels: img.Pix,
	}, nil
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
