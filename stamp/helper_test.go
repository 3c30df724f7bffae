package stamp

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/require"
)

var testPalette = color.Palette{
	color.Black,
	color.White,
	color.RGBA{R: 255, A: 255},
	color.RGBA{G: 255, A: 255},
	color.RGBA{B: 255, A: 255},
	color.RGBA{R: 255, G: 255, A: 255},
	color.RGBA{G: 255, B: 255, A: 255},
	color.RGBA{R: 255, B: 255, A: 255},
}

// makeGIF builds a deterministic animation with a blocky pattern that shifts
// per frame.
func makeGIF(t *testing.T, width, height, frames int) []byte {
	t.Helper()
	g := &gif.GIF{Config: image.Config{Width: width, Height: height}}
	for i := 0; i < frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, width, height), testPalette)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				frame.SetColorIndex(x, y, uint8((x/8+y/8+i)%len(testPalette)))
			}
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 10)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

// gradientFrames builds smooth NRGBA frames, the friendliest case for
// palette reduction.
func gradientFrames(width, height, n int) []*image.NRGBA {
	var frames []*image.NRGBA
	for i := 0; i < n; i++ {
		frame := image.NewNRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				frame.SetNRGBA(x, y, color.NRGBA{
					R: uint8(x * 255 / width),
					G: uint8(y * 255 / height),
					B: uint8(i * 40),
					A: 255,
				})
			}
		}
		frames = append(frames, frame)
	}
	return frames
}
