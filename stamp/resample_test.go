package stamp

import (
	"bytes"
	"image"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResample(t *testing.T) {
	src, err := Decode(makeGIF(t, 64, 48, 3))
	require.NoError(t, err)

	frames, err := src.Resample(32, 32, 0, 1)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for _, frame := range frames {
		assert.Equal(t, 32, frame.Bounds().Dx())
		assert.Equal(t, 32, frame.Bounds().Dy())
	}
}

func TestResampleFrameCap(t *testing.T) {
	src, err := Decode(makeGIF(t, 64, 64, 5))
	require.NoError(t, err)

	frames, err := src.Resample(16, 16, 2, 1)
	require.NoError(t, err)
	assert.Len(t, frames, 2)
}

func TestResampleStride(t *testing.T) {
	src, err := Decode(makeGIF(t, 64, 64, 5))
	require.NoError(t, err)

	// Every 2nd frame of 5: indices 0, 2, 4.
	frames, err := src.Resample(16, 16, 0, 2)
	require.NoError(t, err)
	assert.Len(t, frames, 3)

	frames, err = src.Resample(16, 16, 2, 2)
	require.NoError(t, err)
	assert.Len(t, frames, 2)
}

func TestResampleKeepsGeometryWhenUnchanged(t *testing.T) {
	src, err := Decode(makeGIF(t, 64, 48, 3))
	require.NoError(t, err)

	frames, err := src.Resample(64, 48, 0, 1)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, 64, frames[0].Bounds().Dx())
	assert.Equal(t, 48, frames[0].Bounds().Dy())
}

func TestResamplePartialFrames(t *testing.T) {
	// Second frame covers only a patch of the canvas; it must be aligned
	// before resizing so the output frames share one geometry.
	g := &gif.GIF{Config: image.Config{Width: 64, Height: 64}}

	full := image.NewPaletted(image.Rect(0, 0, 64, 64), testPalette)
	patch := image.NewPaletted(image.Rect(16, 16, 48, 48), testPalette)
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			patch.SetColorIndex(x, y, 2)
		}
	}
	g.Image = append(g.Image, full, patch)
	g.Delay = append(g.Delay, 10, 10)
	g.Disposal = append(g.Disposal, gif.DisposalNone, gif.DisposalNone)

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))

	src, err := Decode(buf.Bytes())
	require.NoError(t, err)

	frames, err := src.Resample(32, 32, 0, 1)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	for _, frame := range frames {
		assert.Equal(t, image.Rect(0, 0, 32, 32), frame.Bounds())
	}
}
