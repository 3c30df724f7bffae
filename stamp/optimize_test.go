package stamp

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopOptimizer(t *testing.T) {
	data := []byte{1, 2, 3}
	out := NoopOptimizer().Optimize(data, OptAggressive)
	assert.Equal(t, data, out)
}

func TestDetectOptimizerFallsBack(t *testing.T) {
	t.Setenv("PATH", "")
	opt := DetectOptimizer(zerolog.Nop())

	data := makeGIF(t, 16, 16, 1)
	assert.Equal(t, data, opt.Optimize(data, OptStandard))
}

func TestGifsicleFaultReturnsInput(t *testing.T) {
	opt := &gifsicleOptimizer{path: "/nonexistent/gifsicle", log: zerolog.Nop()}

	data := makeGIF(t, 16, 16, 2)
	for _, level := range []OptLevel{OptStandard, OptOptimized, OptAggressive} {
		out := opt.Optimize(data, level)
		require.Equal(t, data, out)
	}
}

func TestGifsicleClampsLevel(t *testing.T) {
	opt := &gifsicleOptimizer{path: "/nonexistent/gifsicle", log: zerolog.Nop()}
	data := []byte("GIF89a")
	assert.Equal(t, data, opt.Optimize(data, OptLevel(99)))
	assert.Equal(t, data, opt.Optimize(data, OptLevel(0)))
}
