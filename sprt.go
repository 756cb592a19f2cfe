package clovy

// NineSlice holds the nine-patch guide offsets optionally attached to a
// special-layout sprite.
type NineSlice struct {
	Left, Top, Right, Bottom int32
	Enabled                  bool
	TileMode                [5]int32
}

func decodeNineSlice(r *Reader) (*NineSlice, error) {
	n := &NineSlice{}
	var err error
	if n.Left, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if n.Top, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if n.Right, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if n.Bottom, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if n.Enabled, err = r.ReadWideBool(); err != nil {
		return nil, err
	}
	for i := range n.TileMode {
		if n.TileMode[i], err = r.ReadI32(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func encodeNineSlice(w *Writer, n *NineSlice) error {
	if err := w.WriteI32(n.Left); err != nil {
		return err
	}
	if err := w.WriteI32(n.Top); err != nil {
		return err
	}
	if err := w.WriteI32(n.Right); err != nil {
		return err
	}
	if err := w.WriteI32(n.Bottom); err != nil {
		return err
	}
	if err := w.WriteWideBool(n.Enabled); err != nil {
		return err
	}
	for _, t := range n.TileMode {
		if err := w.WriteI32(t); err != nil {
			return err
		}
	}
	return nil
}

// Sprite is one SPRT entry. After origin_y, a sentinel i32 of -1 selects
// the "special"/GMS2 layout; any other value rewinds 4 bytes and the legacy
// (texture-list) layout is read instead. For a special sprite, decode reads
// the sprite version and sprite type and, when the sprite version is 2 or
// more, one pointer that it decodes as a NineSlice; no sequence pointer is
// read, and the sprite-type-discriminated payload is not decoded.
type Sprite struct {
	Name       []byte
	Width      int32
	Height     int32
	MarginLeft int32
	MarginRight int32
	MarginBottom int32
	MarginTop  int32
	Transparent bool
	Smooth     bool
	Preload    bool
	BoundingBoxMode int32
	OriginX    int32
	OriginY    int32

	Special    bool
	SpriteVersion int32
	SpriteType int32
	HasNineSlice bool
	NineSlice  *NineSlice

	TextureIDs []int32
}

func decodeSprite(r *Reader) (Sprite, error) {
	var s Sprite
	var err error
	if s.Name, err = r.ReadPointerString(false); err != nil {
		return s, err
	}
	if s.Width, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.Height, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.MarginLeft, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.MarginRight, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.MarginBottom, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.MarginTop, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.Transparent, err = r.ReadWideBool(); err != nil {
		return s, err
	}
	if s.Smooth, err = r.ReadWideBool(); err != nil {
		return s, err
	}
	if s.Preload, err = r.ReadWideBool(); err != nil {
		return s, err
	}
	if s.BoundingBoxMode, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.OriginX, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.OriginY, err = r.ReadI32(); err != nil {
		return s, err
	}

	sentinel, err := r.ReadI32()
	if err != nil {
		return s, err
	}
	if sentinel == -1 {
		s.Special = true
		if s.SpriteVersion, err = r.ReadI32(); err != nil {
			return s, err
		}
		if s.SpriteType, err = r.ReadI32(); err != nil {
			return s, err
		}
		if s.SpriteVersion >= 2 {
			s.HasNineSlice = true
			offset, err := r.ReadU32()
			if err != nil {
				return s, err
			}
			if offset != 0 {
				pos, err := r.StreamPosition()
				if err != nil {
					return s, err
				}
				if err := r.SeekTo(int64(offset)); err != nil {
					return s, err
				}
				if s.NineSlice, err = decodeNineSlice(r); err != nil {
					return s, err
				}
				if err := r.SeekTo(pos); err != nil {
					return s, err
				}
			}
		}
		// Sprite-type-discriminated payload (normal/swf/spine/tile) is not
		// further decoded at this milestone: its domain meaning is outside
		// this engine's charter (spec.md §1's "domain meaning of asset
		// fields" exclusion covers sub-asset rendering data).
		return s, nil
	}
	if err := r.SeekRelative(-4); err != nil {
		return s, err
	}
	ids, err := DecodeSimpleList(r, (*Reader).ReadI32, nil)
	if err != nil {
		return s, err
	}
	s.TextureIDs = ids
	return s, nil
}

// encodeSprite implements the legacy (non-special) layout only. Special
// (GMS2) sprite encoding requires re-serializing the sprite-type payload
// this decoder deliberately does not retain, so it is left unimplemented
// per spec.md §9 ("Sprite encode is unimplemented; treat as required for
// any 'write' milestone" — tracked, not silently stubbed).
func encodeSprite(w *Writer, s Sprite) error {
	if err := w.WritePointerString(s.Name); err != nil {
		return err
	}
	if err := w.WriteI32(s.Width); err != nil {
		return err
	}
	if err := w.WriteI32(s.Height); err != nil {
		return err
	}
	if err := w.WriteI32(s.MarginLeft); err != nil {
		return err
	}
	if err := w.WriteI32(s.MarginRight); err != nil {
		return err
	}
	if err := w.WriteI32(s.MarginBottom); err != nil {
		return err
	}
	if err := w.WriteI32(s.MarginTop); err != nil {
		return err
	}
	if err := w.WriteWideBool(s.Transparent); err != nil {
		return err
	}
	if err := w.WriteWideBool(s.Smooth); err != nil {
		return err
	}
	if err := w.WriteWideBool(s.Preload); err != nil {
		return err
	}
	if err := w.WriteI32(s.BoundingBoxMode); err != nil {
		return err
	}
	if err := w.WriteI32(s.OriginX); err != nil {
		return err
	}
	if err := w.WriteI32(s.OriginY); err != nil {
		return err
	}
	if s.Special {
		return ErrUnimplemented
	}
	return EncodeSimpleList(w, s.TextureIDs, (*Writer).WriteI32, nil)
}
