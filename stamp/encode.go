package stamp

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"

	"github.com/ericpauley/go-quantize/quantize"
)

// Params bundles the encoding knobs searched by the constrained re-encode
// ladder. The zero value encodes faithfully: full palette, dithered mapping,
// source timing.
type Params struct {
	// Quality is 1-100; lower values strictly favor smaller output over
	// fidelity. 0 leaves the palette at full depth. The quality knob is
	// realized as quantized palette depth.
	Quality int
	// Colors overrides the palette depth directly when > 0.
	Colors int
	// Transparency reserves a transparent palette slot.
	Transparency bool
	// Disposal is applied uniformly to every frame.
	Disposal byte
	// DurationMS overrides the per-frame delay uniformly when > 0.
	DurationMS int
}

// Encode serializes resampled frames into GIF container bytes. Frame 0 is the
// base frame; the rest follow in resampled order.
func Encode(frames []*image.NRGBA, durationMS, loopCount int, p Params) ([]byte, error) {
	if len(frames) == 0 {
		return nil, &EncodeError{Err: errors.New("empty frame sequence")}
	}

	if p.DurationMS > 0 {
		durationMS = p.DurationMS
	}
	delay := durationMS / 10 // gif delays are in 100ths of a second
	if delay < 1 {
		delay = 1
	}

	depth := paletteDepth(p)
	quantizer := quantize.MedianCutQuantizer{AddTransparent: p.Transparency}
	// Dithering sprays the palette across neighboring pixels, which fights
	// LZW run compression; reduced-depth encodes map colors directly.
	dither := p.Quality == 0 && p.Colors == 0

	bound := frames[0].Bounds()
	out := &gif.GIF{
		LoopCount: loopCount,
		Config: image.Config{
			Width:  bound.Dx(),
			Height: bound.Dy(),
		},
	}
	for _, frame := range frames {
		palette := quantizer.Quantize(make(color.Palette, 0, depth), frame)
		paletted := image.NewPaletted(frame.Bounds(), palette)
		if dither {
			draw.FloydSteinberg.Draw(paletted, paletted.Rect, frame, image.Point{})
		} else {
			draw.Draw(paletted, paletted.Rect, frame, image.Point{}, draw.Src)
		}
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
		out.Disposal = append(out.Disposal, p.Disposal)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}

// paletteDepth maps the encoding parameters to a palette size. An explicit
// color count wins over the quality knob.
func paletteDepth(p Params) int {
	depth := 256
	switch {
	case p.Colors > 0:
		depth = p.Colors
	case p.Quality > 0:
		depth = p.Quality * 256 / 100
	}
	if depth > 256 {
		depth = 256
	}
	if depth < 8 {
		depth = 8
	}
	return depth
}
