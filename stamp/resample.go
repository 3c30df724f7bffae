package stamp

import (
	"errors"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Resample walks the source frames in order and resizes each retained frame
// to exactly (width, height). maxFrames caps the number of retained frames
// (0 means no cap); stride keeps only every Nth source frame (values below 1
// are treated as 1). Frame order and relative pacing are preserved.
func (s *Source) Resample(width, height, maxFrames, stride int) ([]*image.NRGBA, error) {
	if stride < 1 {
		stride = 1
	}
	canvasW, canvasH := s.g.Config.Width, s.g.Config.Height
	if canvasW == 0 || canvasH == 0 {
		bound := s.g.Image[0].Bounds()
		canvasW, canvasH = bound.Max.X, bound.Max.Y
	}

	var frames []*image.NRGBA
	for i, frame := range s.g.Image {
		if maxFrames > 0 && len(frames) >= maxFrames {
			break
		}
		if i%stride != 0 {
			continue
		}

		filter := imaging.Lanczos
		bound := frame.Bounds()
		if bound.Min.X != 0 || bound.Min.Y != 0 || bound.Max.X != canvasW || bound.Max.Y != canvasH {
			// Frames not aligned to the gif canvas must be drawn on a
			// full canvas before resizing, or the animation shifts.
			frame = alignToCanvas(image.Rect(0, 0, canvasW, canvasH), frame)
			filter = imaging.NearestNeighbor
		}

		frames = append(frames, imaging.Resize(frame, width, height, filter))
	}

	if len(frames) == 0 {
		return nil, &DecodeError{Err: errors.New("no frames retained")}
	}
	return frames, nil
}

// alignToCanvas places a partial frame on a transparent canvas of the full
// animation geometry.
func alignToCanvas(rect image.Rectangle, paletted *image.Paletted) *image.Paletted {
	background := image.NewPaletted(rect, paletted.Palette)
	draw.Draw(
		background,
		background.Bounds(),
		image.Transparent,
		image.Point{},
		draw.Src,
	)
	draw.Draw(background, background.Rect, paletted, image.Point{}, draw.Over)
	return background
}
