package clovy

import "log"

// Background is one BGND entry: a background/tileset asset plus the tile
// array geometry GMS2's tile-based rooms read against it.
type Background struct {
	Name          []byte
	Transparent   bool
	Smooth        bool
	Preload       bool
	TextureID     int32
	GMS2TileWidth  int32
	GMS2TileHeight int32
	TileUnknown1   int32
	TileUnknown2   int32
	ItemsPerTileSet int32
	TileCount      int32
	UnknownFrame   int32
	FrameLength    int64
	TileIDs        []int32
}

func decodeBackground(r *Reader) (Background, error) {
	var b Background
	var err error
	if b.Name, err = r.ReadPointerString(false); err != nil {
		return b, err
	}
	if b.Transparent, err = r.ReadWideBool(); err != nil {
		return b, err
	}
	if b.Smooth, err = r.ReadWideBool(); err != nil {
		return b, err
	}
	if b.Preload, err = r.ReadWideBool(); err != nil {
		return b, err
	}
	if b.TextureID, err = r.ReadI32(); err != nil {
		return b, err
	}
	if r.Version.AtLeast(2, 0, 0, 0) {
		if b.GMS2TileWidth, err = r.ReadI32(); err != nil {
			return b, err
		}
		if b.GMS2TileHeight, err = r.ReadI32(); err != nil {
			return b, err
		}
		if b.TileUnknown1, err = r.ReadI32(); err != nil {
			return b, err
		}
		if b.TileUnknown2, err = r.ReadI32(); err != nil {
			return b, err
		}
		if b.TileUnknown1 != 2 {
			log.Printf("clovy: background %q: tile_unknown1 = %d (expected 2)", b.Name, b.TileUnknown1)
		}
		if b.TileUnknown2 != 0 {
			log.Printf("clovy: background %q: tile_unknown2 = %d (expected 0)", b.Name, b.TileUnknown2)
		}
		if b.ItemsPerTileSet, err = r.ReadI32(); err != nil {
			return b, err
		}
		if b.TileCount, err = r.ReadI32(); err != nil {
			return b, err
		}
		if b.UnknownFrame, err = r.ReadI32(); err != nil {
			return b, err
		}
		if b.FrameLength, err = r.ReadI64(); err != nil {
			return b, err
		}
		b.TileIDs = make([]int32, b.TileCount)
		for i := range b.TileIDs {
			if b.TileIDs[i], err = r.ReadI32(); err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

func encodeBackground(w *Writer, b Background) error {
	if err := w.WritePointerString(b.Name); err != nil {
		return err
	}
	if err := w.WriteWideBool(b.Transparent); err != nil {
		return err
	}
	if err := w.WriteWideBool(b.Smooth); err != nil {
		return err
	}
	if err := w.WriteWideBool(b.Preload); err != nil {
		return err
	}
	if err := w.WriteI32(b.TextureID); err != nil {
		return err
	}
	if w.Version.AtLeast(2, 0, 0, 0) {
		if err := w.WriteI32(b.GMS2TileWidth); err != nil {
			return err
		}
		if err := w.WriteI32(b.GMS2TileHeight); err != nil {
			return err
		}
		if err := w.WriteI32(b.TileUnknown1); err != nil {
			return err
		}
		if err := w.WriteI32(b.TileUnknown2); err != nil {
			return err
		}
		if err := w.WriteI32(b.ItemsPerTileSet); err != nil {
			return err
		}
		if err := w.WriteI32(int32(len(b.TileIDs))); err != nil {
			return err
		}
		if err := w.WriteI32(b.UnknownFrame); err != nil {
			return err
		}
		if err := w.WriteI64(b.FrameLength); err != nil {
			return err
		}
		for _, id := range b.TileIDs {
			if err := w.WriteI32(id); err != nil {
				return err
			}
		}
	}
	return nil
}
