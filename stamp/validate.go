package stamp

import "fmt"

// ValidateSize checks a target geometry against the accepted dimension range.
func ValidateSize(width, height int) error {
	if width < MinDimension || height < MinDimension {
		return &ValidationError{Reason: fmt.Sprintf(
			"image size too small: minimum is %dpx, got %dx%d",
			MinDimension, width, height,
		)}
	}
	if width > MaxDimension || height > MaxDimension {
		return &ValidationError{Reason: fmt.Sprintf(
			"image size too large: maximum is %dpx, got %dx%d",
			MaxDimension, width, height,
		)}
	}
	return nil
}

// ValidateFileSize rejects sources too large to be worth decoding.
func ValidateFileSize(n int) error {
	if n > MaxFileSize {
		return &ValidationError{Reason: fmt.Sprintf(
			"file too large: maximum is %dMB, got %.1fMB",
			MaxFileSize/(1024*1024), float64(n)/(1024*1024),
		)}
	}
	return nil
}

// ValidateScale checks a percent-based scale factor.
func ValidateScale(percent int) error {
	if percent < MinScalePercent || percent > MaxScalePercent {
		return &ValidationError{Reason: fmt.Sprintf(
			"scale must be between %d%% and %d%%, got %d%%",
			MinScalePercent, MaxScalePercent, percent,
		)}
	}
	return nil
}

// FitAspect shrinks a requested geometry so it keeps the source aspect ratio,
// fitting within the requested box.
func FitAspect(targetW, targetH, srcW, srcH int) (int, int) {
	if srcH == 0 || targetH == 0 {
		return targetW, targetH
	}
	srcRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(targetW) / float64(targetH)
	if targetRatio > srcRatio {
		return int(float64(targetH) * srcRatio), targetH
	}
	return targetW, int(float64(targetW) / srcRatio)
}
