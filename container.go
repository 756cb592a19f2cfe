package clovy

import (
	"fmt"
	"log"
)

// magic is the four-byte tag every container starts with, mirroring the
// teacher's RIFF "FORM" tag in shape if not in name.
var magic = [4]byte{'F', 'O', 'R', 'M'}

// Chunk is one entry in the container's top-level directory: a four-byte
// name, a length, and the span of the stream it occupies. Decode leaves
// the stream positioned at end_offset, which is how the directory walk
// advances to the next chunk regardless of whether the chunk's codec
// consumed its whole span exactly.
type Chunk struct {
	Name        [4]byte
	Length      uint32
	StartOffset int64
	EndOffset   int64
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s[%d:%d]", c.Name, c.StartOffset, c.EndOffset)
}

// Directory is the decoded top-level container: every chunk's span, in
// on-disk order, plus whichever entities each known chunk decoded into.
// Unknown chunks are retained as opaque byte blobs so a decode/encode round
// trip preserves them even though this engine has no codec for their
// contents.
type Directory struct {
	Chunks []Chunk
	GEN8   *GeneralInfo
	OPTN   *Options
	LANG   *LanguageInfo
	EXTN   []Extension
	SOND   []Sound
	AGRP   []AudioGroup
	SPRT   []Sprite
	BGND   []Background
	PATH   []Path
	SCPT   []Script
	GLOB   []int32
	SHDR   []Shader

	FONT        []Font
	FontPadding []byte

	TMLN []Timeline
	OBJT []Object

	FEDS        []FilterEffect
	FEDSVersion int32

	ACRV        []AnimationCurve
	ACRVVersion int32

	SEQN        []Sequence
	SEQNVersion int32

	unknown map[[4]byte][]byte
}

// Decode walks the container's chunk directory in on-disk order, dispatches
// each known chunk name to its codec, and retains unknown chunks verbatim.
// The version context carried on r accumulates monotonically as GEN8 and
// the format probes run; by the time Decode returns it reflects the
// highest version any chunk or probe observed.
func Decode(r *Reader) (*Directory, error) {
	var tag [4]byte
	b, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	copy(tag[:], b)
	if tag != magic {
		return nil, fmt.Errorf("%w: bad container magic %q", ErrIO, tag)
	}
	totalLen, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	containerEnd := int64(8) + int64(totalLen)

	dir := &Directory{unknown: make(map[[4]byte][]byte)}

	for {
		pos, err := r.StreamPosition()
		if err != nil {
			return nil, err
		}
		if pos >= containerEnd {
			break
		}
		nameBytes, err := r.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		var name [4]byte
		copy(name[:], nameBytes)
		length, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		start, err := r.StreamPosition()
		if err != nil {
			return nil, err
		}
		end := start + int64(length)

		chunk := Chunk{Name: name, Length: length, StartOffset: start, EndOffset: end}
		r.Current = chunk
		dir.Chunks = append(dir.Chunks, chunk)

		if err := dir.decodeChunk(r, chunk); err != nil {
			return nil, wrapDecode(string(name[:]), start, err)
		}

		if err := r.SeekTo(end); err != nil {
			return nil, err
		}
		if r.Version.AlignChunksTo16 {
			if err := r.Pad(16); err != nil {
				return nil, err
			}
		}
	}
	return dir, nil
}

func (d *Directory) decodeChunk(r *Reader, chunk Chunk) error {
	switch string(chunk.Name[:]) {
	case "GEN8":
		v, err := decodeGeneralInfo(r)
		if err != nil {
			return err
		}
		d.GEN8 = v
	case "OPTN":
		v, err := decodeOptions(r)
		if err != nil {
			return err
		}
		d.OPTN = v
	case "LANG":
		v, err := decodeLanguageInfo(r)
		if err != nil {
			return err
		}
		d.LANG = v
	case "EXTN":
		v, err := decodeExtensionList(r, chunk)
		if err != nil {
			return err
		}
		d.EXTN = v
	case "SOND":
		v, err := DecodePointerList(r, decodeSound, nil)
		if err != nil {
			return err
		}
		d.SOND = v
	case "AGRP":
		v, err := DecodePointerList(r, decodeAudioGroup, nil)
		if err != nil {
			return err
		}
		d.AGRP = v
	case "SPRT":
		v, err := DecodePointerList(r, decodeSprite, nil)
		if err != nil {
			return err
		}
		d.SPRT = v
	case "BGND":
		v, err := DecodePointerList(r, decodeBackground, nil)
		if err != nil {
			return err
		}
		d.BGND = v
	case "PATH":
		v, err := DecodePointerList(r, decodePath, nil)
		if err != nil {
			return err
		}
		d.PATH = v
	case "SCPT":
		v, err := DecodePointerList(r, decodeScript, nil)
		if err != nil {
			return err
		}
		d.SCPT = v
	case "GLOB":
		v, err := DecodeSimpleList(r, (*Reader).ReadI32, nil)
		if err != nil {
			return err
		}
		d.GLOB = v
	case "SHDR":
		v, err := decodeShaderList(r, chunk)
		if err != nil {
			return err
		}
		d.SHDR = v
	case "FONT":
		if err := probeFont(r, chunk); err != nil {
			return err
		}
		v, err := DecodePointerList(r, decodeFont, nil)
		if err != nil {
			return err
		}
		d.FONT = v
		padding, err := decodeFontPadding(r)
		if err != nil {
			return err
		}
		d.FontPadding = padding
	case "TMLN":
		v, err := DecodePointerList(r, decodeTimeline, nil)
		if err != nil {
			return err
		}
		d.TMLN = v
	case "OBJT":
		v, err := DecodePointerList(r, decodeObject, nil)
		if err != nil {
			return err
		}
		d.OBJT = v
	case "FEDS":
		version, v, err := decodeFEDSChunk(r)
		if err != nil {
			return err
		}
		d.FEDSVersion = version
		d.FEDS = v
	case "ACRV":
		version, v, err := decodeACRVChunk(r)
		if err != nil {
			return err
		}
		d.ACRVVersion = version
		d.ACRV = v
	case "SEQN":
		version, v, err := decodeSEQNChunk(r)
		if err != nil {
			return err
		}
		d.SEQNVersion = version
		d.SEQN = v
	default:
		log.Printf("clovy: unknown chunk %q, retaining %d bytes verbatim", chunk.Name, chunk.Length)
		buf, err := r.ReadBytes(int(chunk.Length))
		if err != nil {
			return err
		}
		d.unknown[chunk.Name] = buf
	}
	return nil
}

// probeFont runs the FONT format probe ahead of the normal pointer-list
// decode above; the EXTN probe instead lives inside decodeExtensionList in
// extn.go, since it must run before EXTN's own dialect branch rather than
// before the whole chunk.

// Encode writes dir back out as a container in the same chunk order it was
// decoded in (or, for a freshly-built Directory, the fixed order below,
// which matches the original engine's canonical chunk ordering). Retained
// unknown chunks are written back byte for byte. Pointer strings are not
// put back where the source held them: Finalize appends one pool of
// distinct strings after the last chunk and points every string field at
// it, so a decode-then-encode round trip does not in general reproduce the
// source bytes.
func Encode(w *Writer, dir *Directory) error {
	if err := w.WriteBytes(magic[:]); err != nil {
		return err
	}
	sizePos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.WriteU32(0); err != nil {
		return err
	}
	bodyStart, err := w.StreamPosition()
	if err != nil {
		return err
	}

	for _, name := range chunkOrder(dir) {
		if err := dir.writeChunk(w, name); err != nil {
			return err
		}
		if w.Version.AlignChunksTo16 {
			if err := w.Pad(16); err != nil {
				return err
			}
		}
	}

	if err := w.Finalize(); err != nil {
		return err
	}

	end, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.SeekTo(sizePos); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(end - bodyStart)); err != nil {
		return err
	}
	return w.SeekTo(end)
}

// chunkOrder returns the chunk names recorded in dir.Chunks, in the order
// they were seen during decode. A Directory with no recorded chunks gets all
// eighteen known chunk names in the original engine's canonical order,
// whether or not it carries data for them.
func chunkOrder(dir *Directory) [][4]byte {
	if len(dir.Chunks) > 0 {
		out := make([][4]byte, len(dir.Chunks))
		for i, c := range dir.Chunks {
			out[i] = c.Name
		}
		return out
	}
	canonical := []string{"GEN8", "OPTN", "LANG", "EXTN", "SOND", "AGRP", "SPRT", "BGND",
		"PATH", "SCPT", "GLOB", "SHDR", "FONT", "TMLN", "OBJT", "FEDS", "ACRV", "SEQN"}
	var out [][4]byte
	for _, c := range canonical {
		var name [4]byte
		copy(name[:], c)
		out = append(out, name)
	}
	return out
}

func (d *Directory) writeChunk(w *Writer, name [4]byte) error {
	if err := w.WriteBytes(name[:]); err != nil {
		return err
	}
	lenPos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.WriteU32(0); err != nil {
		return err
	}
	bodyStart, err := w.StreamPosition()
	if err != nil {
		return err
	}

	if err := d.encodeChunkBody(w, name); err != nil {
		return fmt.Errorf("clovy: encoding chunk %q: %w", name, err)
	}

	bodyEnd, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.SeekTo(lenPos); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(bodyEnd - bodyStart)); err != nil {
		return err
	}
	return w.SeekTo(bodyEnd)
}

func (d *Directory) encodeChunkBody(w *Writer, name [4]byte) error {
	switch string(name[:]) {
	case "GEN8":
		if d.GEN8 == nil {
			return nil
		}
		return encodeGeneralInfo(w, d.GEN8)
	case "OPTN":
		if d.OPTN == nil {
			return nil
		}
		return encodeOptions(w, d.OPTN)
	case "LANG":
		if d.LANG == nil {
			return nil
		}
		return encodeLanguageInfo(w, d.LANG)
	case "EXTN":
		return encodeExtensionList(w, d.EXTN)
	case "SOND":
		return EncodePointerList(w, d.SOND, encodeSound, nil)
	case "AGRP":
		return EncodePointerList(w, d.AGRP, encodeAudioGroup, nil)
	case "SPRT":
		return EncodePointerList(w, d.SPRT, encodeSprite, &ListHooks[Sprite]{
			BeforeWrite: func(_ int, _ Sprite) error { return w.Pad(4) },
		})
	case "BGND":
		return EncodePointerList(w, d.BGND, encodeBackground, nil)
	case "PATH":
		return EncodePointerList(w, d.PATH, encodePath, nil)
	case "SCPT":
		return EncodePointerList(w, d.SCPT, encodeScript, nil)
	case "GLOB":
		return EncodeSimpleList(w, d.GLOB, (*Writer).WriteI32, nil)
	case "SHDR":
		return encodeShaderList(w, d.SHDR)
	case "FONT":
		if err := EncodePointerList(w, d.FONT, encodeFont, nil); err != nil {
			return err
		}
		return encodeFontPadding(w, d.FontPadding)
	case "TMLN":
		return EncodePointerList(w, d.TMLN, encodeTimeline, nil)
	case "OBJT":
		return EncodePointerList(w, d.OBJT, encodeObject, nil)
	case "FEDS":
		return encodeFEDSChunk(w, d.FEDSVersion, d.FEDS)
	case "ACRV":
		return encodeACRVChunk(w, d.ACRVVersion, d.ACRV)
	case "SEQN":
		return encodeSEQNChunk(w, d.SEQNVersion, d.SEQN)
	default:
		if buf, ok := d.unknown[name]; ok {
			return w.WriteBytes(buf)
		}
		return nil
	}
}
