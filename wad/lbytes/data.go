// Package lbytes reads fixed-width big-endian values from a seekable stream.
package lbytes

import (
	"fmt"
	"io"
)

type (
	Reader struct {
		io.ReadSeeker
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)

	// ErrTruncatedInput is returned when the stream ends before a read of Want
	// bytes starting at Offset could be completed.
	ErrTruncatedInput struct {
		Offset int64
		Want   int
		Got    int
	}
)

func (r ErrTruncatedInput) Error() string {
	return fmt.Sprintf(
		"truncated input: wanted %d bytes at offset %d, got %d",
		r.Want, r.Offset, r.Got,
	)
}
