package core

import "fmt"

// Bounds is an inclusive [Start, End] range of unsigned integers.
type Bounds struct {
	Start uint64 `json:"start" yaml:"start"`
	End   uint64 `json:"end" yaml:"end"`
}

// NewBounds returns the range [start, end]. It does not validate.
func NewBounds(start, end uint64) Bounds {
	return Bounds{Start: start, End: end}
}

// Validate reports ErrInvalidBounds when Start > End.
func (b Bounds) Validate() error {
	if b.Start > b.End {
		return fmt.Errorf("%w: start %d > end %d", ErrInvalidBounds, b.Start, b.End)
	}
	return nil
}

// Width returns the number of integers in the range, saturating at the
// maximum uint64 for the full range. An inverted range has width 0.
func (b Bounds) Width() uint64 {
	if b.Start > b.End {
		return 0
	}
	w := b.End - b.Start
	if w == ^uint64(0) {
		return w
	}
	return w + 1
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", b.Start, b.End)
}
