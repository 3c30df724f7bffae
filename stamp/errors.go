package stamp

import "fmt"

// ValidationError reports input that was rejected before any processing.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DecodeError reports a source that could not be opened or iterated as an
// animation, including the zero-frame case.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode gif: %s", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a container-serialization fault.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode gif: %s", e.Err) }

func (e *EncodeError) Unwrap() error { return e.Err }

// ConstraintError reports that every reduction strategy was attempted and the
// output still violates the size constraint.
type ConstraintError struct {
	AchievedBytes  int
	MaxBytes       int
	AchievedFrames int
	MaxFrames      int
}

func (e *ConstraintError) Error() string {
	if e.MaxFrames > 0 && e.AchievedFrames > e.MaxFrames {
		return fmt.Sprintf(
			"cannot reduce below %d frames: best result has %d frames",
			e.MaxFrames, e.AchievedFrames,
		)
	}
	return fmt.Sprintf(
		"cannot compress below %d bytes: best result is %d bytes, source too large to compress further",
		e.MaxBytes, e.AchievedBytes,
	)
}
