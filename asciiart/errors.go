package asciiart

import "fmt"

// DecodeError reports that the source bytes are not a decodable image. It is
// fatal for the invocation; the converter never retries, since the caller
// owns re-fetching or re-validating the input.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "asciiart: decode source image: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

/*
SizeExceededError reports that the requested scale and mode would produce an
output canvas larger than the effective ceiling. It carries the computed
dimensions, the ceiling and the requested scale so callers can surface an
actionable correction. It is an expected, user-correctable condition rather
than a defect.
*/
type SizeExceededError struct {
	// Width and Height are the pixel dimensions the output would have had.
	Width  int
	Height int
	// Limit is the effective ceiling that was exceeded.
	Limit int
	// Scale is the scale the request carried.
	Scale float64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf(
		"asciiart: output %dx%d exceeds limit %d (scale %.2f, reduce to at most %.2f)",
		e.Width, e.Height, e.Limit, e.Scale, e.SuggestedScale())
}

// SuggestedScale is the largest scale that would have kept both dimensions
// within the ceiling, assuming everything else about the request is fixed.
func (e *SizeExceededError) SuggestedScale() float64 {
	longest := e.Width
	if e.Height > longest {
		longest = e.Height
	}
	if longest <= 0 {
		return e.Scale
	}
	return e.Scale * float64(e.Limit) / float64(longest)
}
