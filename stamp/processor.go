package stamp

import (
	"fmt"
	"image/gif"

	"github.com/rs/zerolog"
)

// Constraint is the output budget for constrained mode. Zero fields are
// unlimited.
type Constraint struct {
	MaxBytes  int
	MaxFrames int
}

// Level selects how hard a stamp is squeezed.
type Level string

const (
	// LevelStandard resizes to stamp geometry only.
	LevelStandard Level = "standard"
	// LevelOptimized caps frames and sweeps quality, best effort on bytes.
	LevelOptimized Level = "optimized"
	// LevelLightweight runs the full reduction ladder under the byte ceiling.
	LevelLightweight Level = "lightweight"
)

// outcome classifies one measured encoding attempt. Retry decisions are data,
// not error values: only hard decode/encode faults travel as errors.
type outcome int

const (
	fit outcome = iota
	tooBig
	tooManyFrames
)

// Processor runs resize and stamp operations over one decoded source.
// A Processor is request-scoped and not safe for concurrent use.
type Processor struct {
	src *Source
	opt Optimizer
	log zerolog.Logger
}

// NewProcessor decodes source bytes and prepares a processing session.
// opt may be nil, which disables byte-level optimization.
func NewProcessor(data []byte, opt Optimizer, log zerolog.Logger) (*Processor, error) {
	if err := ValidateFileSize(len(data)); err != nil {
		return nil, err
	}
	src, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if opt == nil {
		opt = noopOptimizer{}
	}
	return &Processor{src: src, opt: opt, log: log}, nil
}

// Source exposes the decoded animation, for metadata display.
func (p *Processor) Source() *Source { return p.src }

// Resize re-encodes the whole animation at the given geometry with no size
// constraint, keeping source timing, loop count and transparency.
func (p *Processor) Resize(width, height int) ([]byte, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	frames, err := p.src.Resample(width, height, 0, 1)
	if err != nil {
		return nil, err
	}
	return Encode(frames, p.src.DurationMS(), p.src.LoopCount(), Params{Transparency: true})
}

// Stamp produces a Slack stamp at the requested level.
func (p *Processor) Stamp(level Level) ([]byte, error) {
	switch level {
	case LevelStandard:
		return p.Resize(StampSize, StampSize)
	case LevelOptimized:
		budget := Constraint{MaxBytes: StampMaxBytes, MaxFrames: StampMaxFrames}
		duration := min(p.src.DurationMS(), sweepMaxDurationMS)
		data, res, info, err := p.sweep(StampSize, StampSize, StampMaxFrames, duration, OptOptimized, budget)
		if err != nil {
			return nil, err
		}
		if res == tooManyFrames {
			return nil, &ConstraintError{
				AchievedFrames: info.FrameCount,
				MaxFrames:      StampMaxFrames,
			}
		}
		// Byte ceiling is best effort at this level.
		return data, nil
	case LevelLightweight:
		return p.Constrain(StampSize, StampSize, Constraint{
			MaxBytes:  StampMaxBytes,
			MaxFrames: StampMaxFrames,
		})
	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown stamp level %q", level)}
	}
}

// Constrain produces bytes at the given geometry that satisfy the budget, or
// reports a ConstraintError. Reduction strategies escalate in fixed order,
// each re-resampling from the untouched source; it never returns bytes over
// the ceiling.
func (p *Processor) Constrain(width, height int, c Constraint) ([]byte, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}

	// Rung 1: plain resize, source timing.
	frames, err := p.src.Resample(width, height, 0, 1)
	if err != nil {
		return nil, err
	}
	encoded, err := Encode(frames, p.src.DurationMS(), p.src.LoopCount(), Params{Transparency: true})
	if err != nil {
		return nil, err
	}
	data, res, info, err := p.measure(encoded, OptStandard, c)
	if err != nil {
		return nil, err
	}
	p.log.Debug().Str("rung", "direct").
		Int("bytes", info.ByteSize).Int("frames", info.FrameCount).Msg("measured")
	if res == fit {
		return data, nil
	}

	// Rung 2: cap frames, drop transparency, sweep quality down.
	sweepCap := c.MaxFrames
	if sweepCap <= 0 {
		sweepCap = StampMaxFrames
	}
	duration := min(p.src.DurationMS(), sweepMaxDurationMS)
	data, res, info, err = p.sweep(width, height, sweepCap, duration, OptOptimized, c)
	if err != nil {
		return nil, err
	}
	if res == fit {
		return data, nil
	}

	// Rung 3: halve the frame budget and sweep again.
	reducedCap := min(aggressiveMaxFrames, sweepCap)
	data, res, info, err = p.sweep(width, height, reducedCap, aggressiveDurationMS, OptAggressive, c)
	if err != nil {
		return nil, err
	}
	if res == fit {
		return data, nil
	}

	// Rung 4: stride frames, shrink the palette hard, encode once.
	frames, err = p.src.Resample(width, height, ultraMaxFrames, ultraStride)
	if err != nil {
		return nil, err
	}
	encoded, err = Encode(frames, p.src.DurationMS(), p.src.LoopCount(), Params{
		Quality:    qualityFloor,
		Colors:     ultraColors,
		Disposal:   gif.DisposalBackground,
		DurationMS: aggressiveDurationMS,
	})
	if err != nil {
		return nil, err
	}
	data, res, info, err = p.measure(encoded, OptAggressive, c)
	if err != nil {
		return nil, err
	}
	p.log.Debug().Str("rung", "ultra").
		Int("bytes", info.ByteSize).Int("frames", info.FrameCount).Msg("measured")
	if res == fit {
		return data, nil
	}

	return nil, &ConstraintError{
		AchievedBytes:  info.ByteSize,
		MaxBytes:       c.MaxBytes,
		AchievedFrames: info.FrameCount,
		MaxFrames:      c.MaxFrames,
	}
}

// sweep resamples once with the given frame cap, then descends quality in
// fixed steps until the budget is met or the floor is reached. The descent is
// strictly monotonic, so attempts are reproducible for a given source. A
// frame-count violation stops the descent immediately; quality cannot fix it.
func (p *Processor) sweep(
	width, height, maxFrames, durationMS int,
	level OptLevel,
	c Constraint,
) ([]byte, outcome, Info, error) {
	frames, err := p.src.Resample(width, height, maxFrames, 1)
	if err != nil {
		return nil, tooBig, Info{}, err
	}

	var (
		data []byte
		res  outcome
		info Info
	)
	for quality := qualityStart; quality >= qualityFloor; quality -= qualityStep {
		encoded, err := Encode(frames, p.src.DurationMS(), p.src.LoopCount(), Params{
			Quality:    quality,
			Disposal:   gif.DisposalBackground,
			DurationMS: durationMS,
		})
		if err != nil {
			return nil, tooBig, Info{}, err
		}
		data, res, info, err = p.measure(encoded, level, c)
		if err != nil {
			return nil, tooBig, Info{}, err
		}
		p.log.Debug().Str("rung", "sweep").Int("quality", quality).Int("cap", maxFrames).
			Int("bytes", info.ByteSize).Int("frames", info.FrameCount).Msg("measured")
		if res != tooBig {
			return data, res, info, nil
		}
	}
	return data, res, info, nil
}

// measure runs the best-effort optimizer pass, then inspects the candidate
// against the budget. The frame ceiling is checked on the final bytes even
// though rungs enforce it structurally.
func (p *Processor) measure(encoded []byte, level OptLevel, c Constraint) ([]byte, outcome, Info, error) {
	data := p.opt.Optimize(encoded, level)
	info, err := Inspect(data)
	if err != nil {
		return nil, tooBig, Info{}, err
	}
	switch {
	case c.MaxFrames > 0 && info.FrameCount > c.MaxFrames:
		return data, tooManyFrames, info, nil
	case c.MaxBytes > 0 && info.ByteSize > c.MaxBytes:
		return data, tooBig, info, nil
	}
	return data, fit, info, nil
}
