package clovy

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Codecs wrap these with fmt.Errorf("...: %w", Err...)
// so callers can match with errors.Is while still seeing a descriptive
// message naming the field and chunk that failed.
var (
	// ErrIO marks a failure from the underlying stream.
	ErrIO = errors.New("clovy: io error")
	// ErrUnexpectedEOF marks a decoder reaching the end of input early.
	ErrUnexpectedEOF = errors.New("clovy: unexpected eof")
	// ErrNullPointer marks a strict pointer field that was zero on disk.
	ErrNullPointer = errors.New("clovy: null pointer")
	// ErrInvalidPadding marks a pad_check byte that didn't match.
	ErrInvalidPadding = errors.New("clovy: invalid padding")
	// ErrInvalidEnum marks a discriminator outside its known set.
	ErrInvalidEnum = errors.New("clovy: invalid enum")
	// ErrUnimplemented marks a codec path this milestone doesn't cover.
	ErrUnimplemented = errors.New("clovy: unimplemented")
	// ErrDomainViolation marks a broken structural invariant (advisory by default).
	ErrDomainViolation = errors.New("clovy: domain violation")
	// ErrDanglingPointer marks a writer patch whose target was never emitted.
	ErrDanglingPointer = errors.New("clovy: dangling pointer")
)

// DecodeError pairs the first error hit during a decode with the chunk name
// and stream offset at which it occurred, per the "user-visible behavior"
// contract: a failed decode names where it failed.
type DecodeError struct {
	Chunk  string
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("clovy: decoding chunk %q at offset %d: %v", e.Chunk, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func wrapDecode(chunk string, offset int64, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Chunk: chunk, Offset: offset, Err: err}
}
