package cmd

import (
	"fmt"

	"slack-gif/stamp"
)

func printInfo(path string, src *stamp.Source) {
	loop := "infinite"
	if n := src.LoopCount(); n > 0 {
		loop = fmt.Sprintf("%d", n)
	} else if n < 0 {
		loop = "once"
	}
	fmt.Printf(
		"🎞️ '%s': %dx%dpx, %d frames, %dms/frame, loop %s, %s\n",
		path,
		src.Width(), src.Height(),
		src.FrameCount(),
		src.DurationMS(),
		loop,
		formatSize(src.ByteSize()),
	)
}

func formatSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

func sizeChange(original, new int) string {
	if original == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", float64(new-original)/float64(original)*100)
}
