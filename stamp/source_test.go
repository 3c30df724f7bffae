package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	data := makeGIF(t, 64, 48, 3)
	src, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 64, src.Width())
	assert.Equal(t, 48, src.Height())
	assert.Equal(t, 3, src.FrameCount())
	assert.Equal(t, 100, src.DurationMS())
	assert.Equal(t, 0, src.LoopCount())
	assert.Equal(t, len(data), src.ByteSize())
}

func TestDecodeGarbage(t *testing.T) {
	var derr *DecodeError

	_, err := Decode([]byte("not a gif at all"))
	require.ErrorAs(t, err, &derr)

	_, err = Decode(nil)
	require.ErrorAs(t, err, &derr)

	// Valid header, truncated body.
	data := makeGIF(t, 32, 32, 2)
	_, err = Decode(data[:len(data)/2])
	require.ErrorAs(t, err, &derr)
}

func TestFrameCountIsCached(t *testing.T) {
	src, err := Decode(makeGIF(t, 32, 32, 5))
	require.NoError(t, err)

	require.Equal(t, 5, src.FrameCount())
	require.Equal(t, 5, src.FrameCount())
}

func TestInspect(t *testing.T) {
	data := makeGIF(t, 120, 80, 4)
	info, err := Inspect(data)
	require.NoError(t, err)

	assert.Equal(t, Info{
		Width:      120,
		Height:     80,
		FrameCount: 4,
		DurationMS: 100,
		LoopCount:  0,
		ByteSize:   len(data),
	}, info)
}

func TestInspectGarbage(t *testing.T) {
	_, err := Inspect([]byte{0x47, 0x49, 0x46})
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}
