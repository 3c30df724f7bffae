package stamp

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// OptLevel selects the intensity of the byte-level optimization pass.
type OptLevel int

const (
	OptStandard OptLevel = iota + 1
	OptOptimized
	OptAggressive
)

// Optimizer is a best-effort byte-level GIF optimization pass. Optimize never
// fails: when the facility is unavailable or errors, the input bytes come
// back unchanged.
type Optimizer interface {
	Optimize(data []byte, level OptLevel) []byte
}

// DetectOptimizer probes once for gifsicle and returns either a gifsicle
// backed optimizer or a no-op one. Call it at process start and pass the
// result in; do not re-probe per call.
func DetectOptimizer(log zerolog.Logger) Optimizer {
	path, err := exec.LookPath("gifsicle")
	if err != nil {
		log.Info().Msg("gifsicle not found, byte-level optimization disabled")
		return noopOptimizer{}
	}
	log.Debug().Str("path", path).Msg("gifsicle detected")
	return &gifsicleOptimizer{path: path, log: log}
}

// NoopOptimizer returns an optimizer that passes bytes through unchanged.
func NoopOptimizer() Optimizer { return noopOptimizer{} }

type noopOptimizer struct{}

func (noopOptimizer) Optimize(data []byte, _ OptLevel) []byte { return data }

type gifsicleOptimizer struct {
	path string
	log  zerolog.Logger
}

func (o *gifsicleOptimizer) Optimize(data []byte, level OptLevel) []byte {
	if level < OptStandard || level > OptAggressive {
		level = OptStandard
	}

	in, err := os.CreateTemp("", "slack-gif-*.gif")
	if err != nil {
		o.log.Debug().Err(err).Msg("optimizer temp file failed, keeping unoptimized bytes")
		return data
	}
	inPath := in.Name()
	outPath := inPath + ".opt"
	defer os.Remove(inPath)
	defer os.Remove(outPath)

	if _, err = in.Write(data); err != nil {
		in.Close()
		o.log.Debug().Err(err).Msg("optimizer temp write failed, keeping unoptimized bytes")
		return data
	}
	if err = in.Close(); err != nil {
		return data
	}

	cmd := exec.Command(o.path, fmt.Sprintf("-O%d", level), "--output", outPath, inPath)
	if err = cmd.Run(); err != nil {
		o.log.Debug().Err(err).Msg("gifsicle failed, keeping unoptimized bytes")
		return data
	}

	optimized, err := os.ReadFile(outPath)
	if err != nil || len(optimized) == 0 {
		o.log.Debug().Err(err).Msg("gifsicle produced no output, keeping unoptimized bytes")
		return data
	}
	return optimized
}
