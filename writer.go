package clovy

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// stringPatch records one u32 slot that must be backpatched once the string
// pool's final layout is known.
type stringPatch struct {
	value  []byte
	offset int64
}

// objectPatch records one u32 slot that must be backpatched to the offset at
// which a particular logical object ends up being written. WritePointerObject
// records that offset under key when it emits the object.
type objectPatch struct {
	key    string
	offset int64
}

// Writer is the seekable little-endian primitive writer every chunk codec
// encodes through. Pointers are never written eagerly: write_pointer_string
// and write_pointer_object record a deferred patch and emit a zero
// placeholder, per spec.md §9 ("model with an explicit patch table on the
// writer"). Finalize resolves every patch against the string pool and the
// object offsets recorded by WritePointerObject.
type Writer struct {
	w       io.WriteSeeker
	Version *VersionInfo
	Global  *GlobalData

	fs FileSystem

	stringPatches []stringPatch
	stringOffsets map[string]int64 // interned pool, filled by Finalize

	objectPatches []objectPatch
	objectOffsets map[string]int64 // filled by WritePointerObject as objects are emitted
}

func NewWriter(w io.WriteSeeker) *Writer {
	return &Writer{
		w:             w,
		Version:       NewVersionInfo(),
		Global:        &GlobalData{},
		stringOffsets: make(map[string]int64),
		objectOffsets: make(map[string]int64),
	}
}

func (w *Writer) WithFileSystem(fs FileSystem) *Writer {
	w.fs = fs
	return w
}

func (w *Writer) StreamPosition() (int64, error) {
	return w.w.Seek(0, io.SeekCurrent)
}

func (w *Writer) SeekTo(offset int64) error {
	_, err := w.w.Seek(offset, io.SeekStart)
	if err != nil {
		return fmt.Errorf("%w: seek to %d: %v", ErrIO, offset, err)
	}
	return nil
}

func (w *Writer) write(b []byte) error {
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func (w *Writer) Pad(alignment int64) error {
	pos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if rem := pos % alignment; rem != 0 {
		return w.write(make([]byte, alignment-rem))
	}
	return nil
}

func (w *Writer) PadCheck(alignment int64, fill byte) error {
	pos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if rem := pos % alignment; rem != 0 {
		buf := make([]byte, alignment-rem)
		for i := range buf {
			buf[i] = fill
		}
		return w.write(buf)
	}
	return nil
}

func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.write([]byte{1})
	}
	return w.write([]byte{0})
}

func (w *Writer) WriteWideBool(v bool) error {
	if v {
		return w.WriteU32(1)
	}
	return w.WriteU32(0)
}

func (w *Writer) WriteBytes(b []byte) error { return w.write(b) }

func (w *Writer) WriteU8(v uint8) error { return w.write([]byte{v}) }
func (w *Writer) WriteI8(v int8) error  { return w.WriteU8(uint8(v)) }

func (w *Writer) WriteU16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.write(b[:])
}
func (w *Writer) WriteI16(v int16) error { return w.WriteU16(uint16(v)) }

func (w *Writer) WriteU32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.write(b[:])
}
func (w *Writer) WriteI32(v int32) error { return w.WriteU32(uint32(v)) }

func (w *Writer) WriteU64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.write(b[:])
}
func (w *Writer) WriteI64(v int64) error { return w.WriteU64(uint64(v)) }

func (w *Writer) WriteU128(v [16]byte) error { return w.write(v[:]) }

func (w *Writer) WriteF32(v float32) error { return w.WriteU32(math.Float32bits(v)) }
func (w *Writer) WriteF64(v float64) error { return w.WriteU64(math.Float64bits(v)) }

// WritePointerString emits a zero placeholder u32 and records a deferred
// patch keyed on the string's bytes. Identical strings share one pool entry
// (interned), matching the original engine's string-pool behavior. A nil
// value writes a genuine null pointer (the "safe" pointer-string variant).
func (w *Writer) WritePointerString(value []byte) error {
	pos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.WriteU32(0); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	w.stringPatches = append(w.stringPatches, stringPatch{value: value, offset: pos})
	return nil
}

// WritePointerObject emits a zero placeholder u32, then immediately calls
// encode to write the pointee at the current (post-placeholder) position,
// recording its start offset under key so the placeholder can be patched in
// Finalize. This mirrors the original engine's "objects are written inline,
// right where their pointer field would otherwise point" layout.
func WritePointerObject[T any](w *Writer, key string, value T, encode func(*Writer, T) error) error {
	pos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.WriteU32(0); err != nil {
		return err
	}
	target, err := w.StreamPosition()
	if err != nil {
		return err
	}
	w.objectPatches = append(w.objectPatches, objectPatch{key: key, offset: pos})
	w.objectOffsets[key] = target
	return encode(w, value)
}

// Finalize writes the interned string pool (if any strings were requested
// that aren't already in the pool) and backpatches every deferred pointer
// slot. Call once, after the whole container body has been written.
func (w *Writer) Finalize() error {
	for _, p := range w.stringPatches {
		key := string(p.value)
		if _, ok := w.stringOffsets[key]; ok {
			continue
		}
		// Pointer strings store a u32 length prefix immediately before the
		// NUL-terminated bytes, so the pointer itself resolves past it.
		if err := w.WriteU32(uint32(len(p.value))); err != nil {
			return err
		}
		strPos, err := w.StreamPosition()
		if err != nil {
			return err
		}
		w.stringOffsets[key] = strPos
		if err := w.write(p.value); err != nil {
			return err
		}
		if err := w.WriteU8(0); err != nil {
			return err
		}
	}

	for _, p := range w.stringPatches {
		target, ok := w.stringOffsets[string(p.value)]
		if !ok {
			return fmt.Errorf("%w: string %q", ErrDanglingPointer, p.value)
		}
		if err := w.patchU32(p.offset, uint32(target)); err != nil {
			return err
		}
	}

	for _, p := range w.objectPatches {
		target, ok := w.objectOffsets[p.key]
		if !ok {
			return fmt.Errorf("%w: object key %q", ErrDanglingPointer, p.key)
		}
		if err := w.patchU32(p.offset, uint32(target)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) patchU32(offset int64, v uint32) error {
	pos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.SeekTo(offset); err != nil {
		return err
	}
	if err := w.WriteU32(v); err != nil {
		return err
	}
	return w.SeekTo(pos)
}
