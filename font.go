package clovy

import (
	"encoding/binary"
)

// Kerning is one glyph-pair kerning adjustment.
type Kerning struct {
	Other  int16
	Amount int16
}

// Glyph is one character's bitmap-font metrics plus its kerning table.
type Glyph struct {
	Character  uint16
	X, Y       uint16
	W, H       uint16
	Shift      int16
	Offset     int16
	Kernings   []Kerning
}

func decodeKerning(r *Reader) (Kerning, error) {
	var k Kerning
	var err error
	if k.Other, err = r.ReadI16(); err != nil {
		return k, err
	}
	if k.Amount, err = r.ReadI16(); err != nil {
		return k, err
	}
	return k, nil
}

func encodeKerning(w *Writer, k Kerning) error {
	if err := w.WriteI16(k.Other); err != nil {
		return err
	}
	return w.WriteI16(k.Amount)
}

func decodeGlyph(r *Reader) (Glyph, error) {
	var g Glyph
	var err error
	if g.Character, err = r.ReadU16(); err != nil {
		return g, err
	}
	if g.X, err = r.ReadU16(); err != nil {
		return g, err
	}
	if g.Y, err = r.ReadU16(); err != nil {
		return g, err
	}
	if g.W, err = r.ReadU16(); err != nil {
		return g, err
	}
	if g.H, err = r.ReadU16(); err != nil {
		return g, err
	}
	if g.Shift, err = r.ReadI16(); err != nil {
		return g, err
	}
	if g.Offset, err = r.ReadI16(); err != nil {
		return g, err
	}
	kerningCount, err := r.ReadU16()
	if err != nil {
		return g, err
	}
	g.Kernings = make([]Kerning, kerningCount)
	for i := range g.Kernings {
		if g.Kernings[i], err = decodeKerning(r); err != nil {
			return g, err
		}
	}
	return g, nil
}

func encodeGlyph(w *Writer, g Glyph) error {
	if err := w.WriteU16(g.Character); err != nil {
		return err
	}
	if err := w.WriteU16(g.X); err != nil {
		return err
	}
	if err := w.WriteU16(g.Y); err != nil {
		return err
	}
	if err := w.WriteU16(g.W); err != nil {
		return err
	}
	if err := w.WriteU16(g.H); err != nil {
		return err
	}
	if err := w.WriteI16(g.Shift); err != nil {
		return err
	}
	if err := w.WriteI16(g.Offset); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(len(g.Kernings))); err != nil {
		return err
	}
	for _, k := range g.Kernings {
		if err := encodeKerning(w, k); err != nil {
			return err
		}
	}
	return nil
}

// Font is one FONT entry.
type Font struct {
	Name        []byte
	DisplayName []byte
	Size        int32
	Bold        bool
	Italic      bool
	RangeStart  uint32
	Charset     uint8
	AntiAlias   uint8
	RangeEnd    uint32
	TextureID   int32
	ScaleX      float32
	ScaleY      float32
	Glyphs      []Glyph
}

func decodeFont(r *Reader) (Font, error) {
	var f Font
	var err error
	if f.Name, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.DisplayName, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.Size, err = r.ReadI32(); err != nil {
		return f, err
	}
	if f.Bold, err = r.ReadWideBool(); err != nil {
		return f, err
	}
	if f.Italic, err = r.ReadWideBool(); err != nil {
		return f, err
	}
	if f.RangeStart, err = r.ReadU32(); err != nil {
		return f, err
	}
	if f.Charset, err = r.ReadU8(); err != nil {
		return f, err
	}
	if f.AntiAlias, err = r.ReadU8(); err != nil {
		return f, err
	}
	if f.RangeEnd, err = r.ReadU32(); err != nil {
		return f, err
	}
	if f.TextureID, err = r.ReadI32(); err != nil {
		return f, err
	}
	if f.ScaleX, err = r.ReadF32(); err != nil {
		return f, err
	}
	if f.ScaleY, err = r.ReadF32(); err != nil {
		return f, err
	}
	if f.Glyphs, err = DecodePointerList(r, decodeGlyph, nil); err != nil {
		return f, err
	}
	return f, nil
}

func encodeFont(w *Writer, f Font) error {
	if err := w.WritePointerString(f.Name); err != nil {
		return err
	}
	if err := w.WritePointerString(f.DisplayName); err != nil {
		return err
	}
	if err := w.WriteI32(f.Size); err != nil {
		return err
	}
	if err := w.WriteWideBool(f.Bold); err != nil {
		return err
	}
	if err := w.WriteWideBool(f.Italic); err != nil {
		return err
	}
	if err := w.WriteU32(f.RangeStart); err != nil {
		return err
	}
	if err := w.WriteU8(f.Charset); err != nil {
		return err
	}
	if err := w.WriteU8(f.AntiAlias); err != nil {
		return err
	}
	if err := w.WriteU32(f.RangeEnd); err != nil {
		return err
	}
	if err := w.WriteI32(f.TextureID); err != nil {
		return err
	}
	if err := w.WriteF32(f.ScaleX); err != nil {
		return err
	}
	if err := w.WriteF32(f.ScaleY); err != nil {
		return err
	}
	return EncodePointerList(w, f.Glyphs, encodeGlyph, nil)
}

// defaultFontPadding is the 512-byte trailer FONT appends: entries 0..127
// map to themselves (u16 i), entries 128..255 all map to 0x3f ('?'), per
// spec.md's concrete scenario 6.
func defaultFontPadding() []byte {
	buf := make([]byte, 512)
	for i := 0; i < 128; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(i))
	}
	for i := 128; i < 256; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:], 0x3f)
	}
	return buf
}

// decodeFontPadding reads the trailing 512-byte block and returns it
// unchanged, so encodeFontPadding can write it back verbatim; its contents
// have no further meaning to this engine (it models character mapping for
// a font-fallback system outside this codec's charter).
func decodeFontPadding(r *Reader) ([]byte, error) {
	return r.ReadBytes(512)
}

func encodeFontPadding(w *Writer, padding []byte) error {
	if padding == nil {
		padding = defaultFontPadding()
	}
	return w.WriteBytes(padding)
}
