// Package xcursor decodes the legacy Xcursor binary file format: a
// little-endian container holding one or more bitmap variants per cursor,
// keyed by nominal size, with optional animation frames per size.
//
// File layout: a magic/header block, a table of contents of typed chunks,
// and per-chunk payloads. Only image chunks are decoded; comment chunks are
// skipped. Pixel data is stored as packed ARGB words and is returned here as
// RGBA bytes.
package xcursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// fileMagic is "Xcur" read as a little-endian word.
	fileMagic = 0x72756358

	// chunkImage identifies an image chunk in the table of contents.
	chunkImage = 0xfffd0002

	// imageHeaderSize is the fixed byte length of an image chunk header.
	imageHeaderSize = 36

	// maxDimension caps width and height, per the Xcursor format.
	maxDimension = 0x7fff
)

var errTruncated = errors.New("xcursor: truncated file")

// Image is one decoded cursor variant: a bitmap authored for a nominal size,
// with its hotspot and animation delay. Pixels is row-major RGBA,
// Width*Height*4 bytes.
type Image struct {
	Size   uint32
	Width  uint32
	Height uint32
	XHot   uint32
	YHot   uint32
	Delay  uint32
	Pixels []byte
}

type fileHeader struct {
	Magic   uint32
	Header  uint32
	Version uint32
	NToc    uint32
}

type tocEntry struct {
	Type     uint32
	Subtype  uint32
	Position uint32
}

type imageHeader struct {
	Header  uint32
	Type    uint32
	Subtype uint32
	Version uint32
	Width   uint32
	Height  uint32
	XHot    uint32
	YHot    uint32
	Delay   uint32
}

// Decode parses a complete Xcursor file and returns every embedded image, in
// table-of-contents order. It fails if the bytes are not a valid file of
// this format; a valid file with no image chunks yields an empty slice.
func Decode(data []byte) ([]Image, error) {
	r := bytes.NewReader(data)

	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, errTruncated
	}
	if hdr.Magic != fileMagic {
		return nil, fmt.Errorf("xcursor: bad magic %#08x", hdr.Magic)
	}
	// Each toc entry occupies 12 bytes; a count the file cannot hold is
	// corrupt, not merely truncated.
	if int64(hdr.NToc) > int64(len(data))/12 {
		return nil, fmt.Errorf("xcursor: implausible toc count %d", hdr.NToc)
	}

	toc := make([]tocEntry, hdr.NToc)
	if err := binary.Read(r, binary.LittleEndian, toc); err != nil {
		return nil, errTruncated
	}

	var images []Image
	for _, entry := range toc {
		if entry.Type != chunkImage {
			continue
		}
		img, err := decodeImage(r, entry)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func decodeImage(r *bytes.Reader, entry tocEntry) (Image, error) {
	if _, err := r.Seek(int64(entry.Position), io.SeekStart); err != nil {
		return Image{}, errTruncated
	}

	var ih imageHeader
	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return Image{}, errTruncated
	}
	switch {
	case ih.Header != imageHeaderSize || ih.Type != chunkImage:
		return Image{}, fmt.Errorf("xcursor: malformed image chunk at %d", entry.Position)
	case ih.Subtype != entry.Subtype:
		return Image{}, fmt.Errorf("xcursor: image chunk size %d disagrees with toc %d", ih.Subtype, entry.Subtype)
	case ih.Width == 0 || ih.Width > maxDimension || ih.Height == 0 || ih.Height > maxDimension:
		return Image{}, fmt.Errorf("xcursor: image dimensions %dx%d out of range", ih.Width, ih.Height)
	case ih.XHot > ih.Width || ih.YHot > ih.Height:
		return Image{}, fmt.Errorf("xcursor: hotspot (%d,%d) outside %dx%d image", ih.XHot, ih.YHot, ih.Width, ih.Height)
	}

	argb := make([]uint32, ih.Width*ih.Height)
	if err := binary.Read(r, binary.LittleEndian, argb); err != nil {
		return Image{}, errTruncated
	}

	pixels := make([]byte, 4*len(argb))
	for i, p := range argb {
		pixels[4*i+0] = byte(p >> 16)
		pixels[4*i+1] = byte(p >> 8)
		pixels[4*i+2] = byte(p)
		pixels[4*i+3] = byte(p >> 24)
	}

	return Image{
		Size:   ih.Subtype,
		Width:  ih.Width,
		Height: ih.Height,
		XHot:   ih.XHot,
		YHot:   ih.YHot,
		Delay:  ih.Delay,
		Pixels: pixels,
	}, nil
}
