package clovy

// ListHooks lets a caller observe or react around each element of a list
// decode/encode without needing a bespoke loop per chunk. All four hooks
// are optional; nil hooks are skipped. This is the engine's answer to
// spec.md §9's guidance against hand-rolled per-chunk list boilerplate: one
// generic pair of functions, parameterized by hooks, covers every chunk
// that is "just a list of pointers" or "just a list of inline records".
type ListHooks[T any] struct {
	BeforeRead  func(index int) error
	AfterRead   func(index int, value T) error
	BeforeWrite func(index int, value T) error
	AfterWrite  func(index int, value T) error
}

func (h *ListHooks[T]) beforeRead(i int) error {
	if h == nil || h.BeforeRead == nil {
		return nil
	}
	return h.BeforeRead(i)
}

func (h *ListHooks[T]) afterRead(i int, v T) error {
	if h == nil || h.AfterRead == nil {
		return nil
	}
	return h.AfterRead(i, v)
}

func (h *ListHooks[T]) beforeWrite(i int, v T) error {
	if h == nil || h.BeforeWrite == nil {
		return nil
	}
	return h.BeforeWrite(i, v)
}

func (h *ListHooks[T]) afterWrite(i int, v T) error {
	if h == nil || h.AfterWrite == nil {
		return nil
	}
	return h.AfterWrite(i, v)
}

// DecodePointerList reads a u32 count followed by count u32 offsets (the
// "pointer table"), then seeks to and decodes each element in turn,
// restoring the read head to just past the offset table when done. Offsets
// in the table are read in file order; an empty list (count == 0) is valid
// and decodes to a non-nil, zero-length slice.
func DecodePointerList[T any](r *Reader, decode func(*Reader) (T, error), hooks *ListHooks[T]) ([]T, error) {
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i], err = r.ReadU32()
		if err != nil {
			return nil, err
		}
	}
	out := make([]T, count)
	tablePos, err := r.StreamPosition()
	if err != nil {
		return nil, err
	}
	for i, off := range offsets {
		if err := hooks.beforeRead(i); err != nil {
			return nil, err
		}
		if err := r.SeekTo(int64(off)); err != nil {
			return nil, err
		}
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
		if err := hooks.afterRead(i, v); err != nil {
			return nil, err
		}
	}
	if err := r.SeekTo(tablePos); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodePointerList writes a u32 count, a placeholder u32 offset table, then
// encodes each element immediately after the table (in index order),
// backfilling the table with each element's actual start offset. Unlike
// string/object pointers this table is resolved immediately — it never
// needs Writer.Finalize, because every target is written right after the
// table in the same call.
func EncodePointerList[T any](w *Writer, values []T, encode func(*Writer, T) error, hooks *ListHooks[T]) error {
	if err := w.WriteU32(uint32(len(values))); err != nil {
		return err
	}
	tableStart, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.WriteBytes(make([]byte, 4*len(values))); err != nil {
		return err
	}
	offsets := make([]uint32, len(values))
	for i, v := range values {
		if err := hooks.beforeWrite(i, v); err != nil {
			return err
		}
		pos, err := w.StreamPosition()
		if err != nil {
			return err
		}
		offsets[i] = uint32(pos)
		if err := encode(w, v); err != nil {
			return err
		}
		if err := hooks.afterWrite(i, v); err != nil {
			return err
		}
	}
	endPos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.SeekTo(tableStart); err != nil {
		return err
	}
	for _, off := range offsets {
		if err := w.WriteU32(off); err != nil {
			return err
		}
	}
	return w.SeekTo(endPos)
}

// DecodeSimpleList reads a u32 count and decodes count elements inline,
// back to back, with no offset table — used for chunks like GLOB whose
// payload is a flat list of fixed-width values rather than a list of
// pointers.
func DecodeSimpleList[T any](r *Reader, decode func(*Reader) (T, error), hooks *ListHooks[T]) ([]T, error) {
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		if err := hooks.beforeRead(i); err != nil {
			return nil, err
		}
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
		if err := hooks.afterRead(i, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EncodeSimpleList writes a u32 count and encodes each element inline.
func EncodeSimpleList[T any](w *Writer, values []T, encode func(*Writer, T) error, hooks *ListHooks[T]) error {
	if err := w.WriteU32(uint32(len(values))); err != nil {
		return err
	}
	for i, v := range values {
		if err := hooks.beforeWrite(i, v); err != nil {
			return err
		}
		if err := encode(w, v); err != nil {
			return err
		}
		if err := hooks.afterWrite(i, v); err != nil {
			return err
		}
	}
	return nil
}
