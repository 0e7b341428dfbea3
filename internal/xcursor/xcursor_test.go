package xcursor

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureImage struct {
	size   uint32
	width  uint32
	height uint32
	xhot   uint32
	yhot   uint32
	delay  uint32
	argb   []uint32
}

// encodeFixture assembles a valid Xcursor file from image descriptions.
func encodeFixture(t *testing.T, images []fixtureImage) []byte {
	t.Helper()

	var buf bytes.Buffer
	write := func(v any) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}

	write(uint32(fileMagic))
	write(uint32(16))
	write(uint32(0x10000))
	write(uint32(len(images)))

	pos := uint32(16 + 12*len(images))
	for _, img := range images {
		write(uint32(chunkImage))
		write(img.size)
		write(pos)
		pos += imageHeaderSize + 4*uint32(len(img.argb))
	}

	for _, img := range images {
		write(uint32(imageHeaderSize))
		write(uint32(chunkImage))
		write(img.size)
		write(uint32(1))
		write(img.width)
		write(img.height)
		write(img.xhot)
		write(img.yhot)
		write(img.delay)
		write(img.argb)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Run("single image", func(t *testing.T) {
		data := encodeFixture(t, []fixtureImage{
			{size: 24, width: 1, height: 1, xhot: 0, yhot: 0, delay: 50, argb: []uint32{0x80ff0000}},
		})

		images, err := Decode(data)
		require.NoError(t, err)
		require.Len(t, images, 1)

		img := images[0]
		assert.Equal(t, uint32(24), img.Size)
		assert.Equal(t, uint32(1), img.Width)
		assert.Equal(t, uint32(1), img.Height)
		assert.Equal(t, uint32(50), img.Delay)
		// 0x80ff0000 is ARGB: half-transparent pure red.
		assert.Equal(t, []byte{0xff, 0x00, 0x00, 0x80}, img.Pixels)
	})

	t.Run("preserves toc order", func(t *testing.T) {
		data := encodeFixture(t, []fixtureImage{
			{size: 32, width: 1, height: 1, argb: []uint32{0}},
			{size: 24, width: 1, height: 1, argb: []uint32{0}},
			{size: 32, width: 1, height: 1, delay: 10, argb: []uint32{0}},
		})

		images, err := Decode(data)
		require.NoError(t, err)
		require.Len(t, images, 3)
		assert.Equal(t, uint32(32), images[0].Size)
		assert.Equal(t, uint32(24), images[1].Size)
		assert.Equal(t, uint32(32), images[2].Size)
		assert.Equal(t, uint32(10), images[2].Delay)
	})

	t.Run("pixel buffer dimensions", func(t *testing.T) {
		argb := make([]uint32, 4*4)
		data := encodeFixture(t, []fixtureImage{
			{size: 24, width: 4, height: 4, xhot: 2, yhot: 3, argb: argb},
		})

		images, err := Decode(data)
		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Len(t, images[0].Pixels, 4*4*4)
		assert.Equal(t, uint32(2), images[0].XHot)
		assert.Equal(t, uint32(3), images[0].YHot)
	})

	t.Run("no image chunks", func(t *testing.T) {
		data := encodeFixture(t, nil)

		images, err := Decode(data)
		require.NoError(t, err)
		assert.Empty(t, images)
	})
}

func TestDecode_Malformed(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		data := encodeFixture(t, nil)
		data[0] = 'Y'

		_, err := Decode(data)
		assert.ErrorContains(t, err, "bad magic")
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decode([]byte{0x58, 0x63})
		assert.ErrorIs(t, err, errTruncated)
	})

	t.Run("truncated pixels", func(t *testing.T) {
		data := encodeFixture(t, []fixtureImage{
			{size: 24, width: 2, height: 2, argb: make([]uint32, 4)},
		})

		_, err := Decode(data[:len(data)-8])
		assert.ErrorIs(t, err, errTruncated)
	})

	t.Run("implausible toc count", func(t *testing.T) {
		data := encodeFixture(t, nil)
		binary.LittleEndian.PutUint32(data[12:], 0xffffffff)

		_, err := Decode(data)
		assert.ErrorContains(t, err, "toc count")
	})

	t.Run("hotspot outside image", func(t *testing.T) {
		data := encodeFixture(t, []fixtureImage{
			{size: 24, width: 1, height: 1, xhot: 5, argb: []uint32{0}},
		})

		_, err := Decode(data)
		assert.ErrorContains(t, err, "hotspot")
	})

	t.Run("oversized dimensions", func(t *testing.T) {
		data := encodeFixture(t, []fixtureImage{
			{size: 24, width: 1, height: 1, argb: []uint32{0}},
		})
		// Patch the width field inside the image chunk header.
		imagePos := uint32(16 + 12)
		binary.LittleEndian.PutUint32(data[imagePos+16:], maxDimension+1)

		_, err := Decode(data)
		assert.ErrorContains(t, err, "out of range")
	})
}
