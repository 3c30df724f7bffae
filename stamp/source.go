package stamp

import (
	"bytes"
	"errors"
	"image/gif"
)

// Source is a decoded animation. It owns its frames exclusively for the
// duration of one processing call and is never mutated after Decode.
type Source struct {
	g          *gif.GIF
	rawLen     int
	frameCount int
}

// Decode parses GIF container bytes into a Source.
func Decode(data []byte) (*Source, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if len(g.Image) == 0 {
		return nil, &DecodeError{Err: errors.New("no decodable frames")}
	}
	return &Source{g: g, rawLen: len(data), frameCount: -1}, nil
}

func (s *Source) Width() int  { return s.g.Config.Width }
func (s *Source) Height() int { return s.g.Config.Height }

// ByteSize is the length of the raw container bytes the source was decoded
// from, not the in-memory footprint.
func (s *Source) ByteSize() int { return s.rawLen }

// FrameCount probes the frame sequence on first use and caches the result.
func (s *Source) FrameCount() int {
	if s.frameCount < 0 {
		n := 0
		for _, frame := range s.g.Image {
			if frame == nil {
				break
			}
			n++
		}
		s.frameCount = n
	}
	return s.frameCount
}

// DurationMS is the per-frame delay of the animation in milliseconds, taken
// from the first frame, defaulting when the source carries none.
func (s *Source) DurationMS() int {
	if len(s.g.Delay) > 0 && s.g.Delay[0] > 0 {
		return s.g.Delay[0] * 10
	}
	return DefaultDurationMS
}

// LoopCount follows image/gif semantics: 0 loops forever, -1 plays once.
func (s *Source) LoopCount() int { return s.g.LoopCount }
