package clovy

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader is the seekable little-endian primitive reader every chunk codec
// decodes through. One Reader owns one session: the version context, the
// global (cross-chunk) data, and whichever chunk is currently being
// decoded, so codecs can read version/global state without threading extra
// parameters through every call.
type Reader struct {
	r       io.ReadSeeker
	Version *VersionInfo
	Global  *GlobalData

	// Current names the chunk presently being decoded; Decode sets it as it
	// walks the directory. The EXTN/FONT probes and Decode's error wrapping
	// take the chunk from Decode directly rather than reading this field.
	Current Chunk

	fs FileSystem
}

// NewReader wraps r with a fresh version context and global data.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r, Version: NewVersionInfo(), Global: &GlobalData{}}
}

// WithFileSystem attaches the optional side-file resolver AGRP uses for
// audiogroup{i}.dat. Returns the reader for chaining.
func (r *Reader) WithFileSystem(fs FileSystem) *Reader {
	r.fs = fs
	return r
}

func (r *Reader) StreamPosition() (int64, error) {
	return r.r.Seek(0, io.SeekCurrent)
}

func (r *Reader) SeekTo(offset int64) error {
	_, err := r.r.Seek(offset, io.SeekStart)
	if err != nil {
		return fmt.Errorf("%w: seek to %d: %v", ErrIO, offset, err)
	}
	return nil
}

func (r *Reader) SeekRelative(delta int64) error {
	_, err := r.r.Seek(delta, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: seek relative %d: %v", ErrIO, delta, err)
	}
	return nil
}

// Pad advances the stream to the next multiple of alignment. A no-op when
// already aligned.
func (r *Reader) Pad(alignment int64) error {
	pos, err := r.StreamPosition()
	if err != nil {
		return err
	}
	if rem := pos % alignment; rem != 0 {
		return r.SeekRelative(alignment - rem)
	}
	return nil
}

// PadCheck advances to the next multiple of alignment, verifying each
// skipped byte equals expected. Fails on the first mismatch.
func (r *Reader) PadCheck(alignment int64, expected byte) error {
	for {
		pos, err := r.StreamPosition()
		if err != nil {
			return err
		}
		if pos%alignment == 0 {
			return nil
		}
		b, err := r.ReadU8()
		if err != nil {
			return err
		}
		if b != expected {
			return fmt.Errorf("%w: expected 0x%02x, got 0x%02x at offset %d", ErrInvalidPadding, expected, b, pos)
		}
	}
}

func (r *Reader) readN(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: need %d bytes: %v", ErrUnexpectedEOF, n, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return buf, nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.readN(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *Reader) ReadWideBool() (bool, error) {
	v, err := r.ReadU32()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (r *Reader) ReadBytes(n int) ([]byte, error) { return r.readN(n) }

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) ReadU128() ([16]byte, error) {
	var out [16]byte
	b, err := r.readN(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	return math.Float64frombits(v), err
}

// ReadPointerString reads a u32 offset and, if non-zero, seeks to it,
// reads a NUL-terminated byte sequence, and restores position. strict
// controls what a zero offset means: strict returns ErrNullPointer, the
// non-strict ("safe") variant returns an empty string.
func (r *Reader) ReadPointerString(strict bool) ([]byte, error) {
	offset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if offset == 0 {
		if strict {
			return nil, ErrNullPointer
		}
		return nil, nil
	}
	pos, err := r.StreamPosition()
	if err != nil {
		return nil, err
	}
	if err := r.SeekTo(int64(offset)); err != nil {
		return nil, err
	}
	s, err := r.readNulString()
	if err != nil {
		return nil, err
	}
	if err := r.SeekTo(pos); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Reader) readNulString() ([]byte, error) {
	var out []byte
	for {
		b, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return out, nil
		}
		out = append(out, b)
	}
}

// ReadPointerObject reads a u32 offset, seeks to it, decodes a T with
// decode, and restores position. Zero offsets are always an error: there
// is no "safe" variant for objects in the original engine.
func ReadPointerObject[T any](r *Reader, decode func(*Reader) (T, error)) (T, error) {
	var zero T
	offset, err := r.ReadU32()
	if err != nil {
		return zero, err
	}
	if offset == 0 {
		return zero, ErrNullPointer
	}
	pos, err := r.StreamPosition()
	if err != nil {
		return zero, err
	}
	if err := r.SeekTo(int64(offset)); err != nil {
		return zero, err
	}
	v, err := decode(r)
	if err != nil {
		return zero, err
	}
	if err := r.SeekTo(pos); err != nil {
		return zero, err
	}
	return v, nil
}
