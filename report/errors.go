package report

import "errors"

// ErrMalformedLine is returned when an artifact line is not a decimal
// unsigned integer.
var ErrMalformedLine = errors.New("malformed report line")
