package stamp

// Info is descriptive metadata extracted from GIF container bytes.
type Info struct {
	Width      int
	Height     int
	FrameCount int
	DurationMS int
	LoopCount  int
	ByteSize   int
}

// Inspect decodes container bytes and reports their metadata. Frame count is
// derived by walking the frame sequence, so repeated callers should hold on
// to the result instead of re-inspecting.
func Inspect(data []byte) (Info, error) {
	src, err := Decode(data)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Width:      src.Width(),
		Height:     src.Height(),
		FrameCount: src.FrameCount(),
		DurationMS: src.DurationMS(),
		LoopCount:  src.LoopCount(),
		ByteSize:   src.ByteSize(),
	}, nil
}
