package clovy

// FilterEffect is one FEDS entry: a named post-processing filter effect
// plus its property bag. The upstream original_source tree this engine's
// other entities are grounded on does not include a filter-effect model
// file, so this record is authored directly from spec.md's generic
// "name, version, effect_type, properties" shape rather than ported from a
// source file.
type FilterEffect struct {
	Name       []byte
	Version    int32
	EffectType []byte
	Properties []FilterEffectProperty
}

// FilterEffectProperty is one (name, value) pair of a filter effect's
// property bag.
type FilterEffectProperty struct {
	Name  []byte
	Value []byte
}

func decodeFilterEffectProperty(r *Reader) (FilterEffectProperty, error) {
	var p FilterEffectProperty
	var err error
	if p.Name, err = r.ReadPointerString(false); err != nil {
		return p, err
	}
	if p.Value, err = r.ReadPointerString(false); err != nil {
		return p, err
	}
	return p, nil
}

func encodeFilterEffectProperty(w *Writer, p FilterEffectProperty) error {
	if err := w.WritePointerString(p.Name); err != nil {
		return err
	}
	return w.WritePointerString(p.Value)
}

func decodeFilterEffect(r *Reader) (FilterEffect, error) {
	var f FilterEffect
	var err error
	if f.Name, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.Version, err = r.ReadI32(); err != nil {
		return f, err
	}
	if f.EffectType, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.Properties, err = DecodeSimpleList(r, decodeFilterEffectProperty, nil); err != nil {
		return f, err
	}
	return f, nil
}

func encodeFilterEffect(w *Writer, f FilterEffect) error {
	if err := w.WritePointerString(f.Name); err != nil {
		return err
	}
	if err := w.WriteI32(f.Version); err != nil {
		return err
	}
	if err := w.WritePointerString(f.EffectType); err != nil {
		return err
	}
	return EncodeSimpleList(w, f.Properties, encodeFilterEffectProperty, nil)
}

// decodeFEDSChunk implements the FEDS chunk header: a 4-byte pad, then an
// i32 chunk version, then the PL<FilterEffect> itself.
func decodeFEDSChunk(r *Reader) (int32, []FilterEffect, error) {
	if err := r.Pad(4); err != nil {
		return 0, nil, err
	}
	version, err := r.ReadI32()
	if err != nil {
		return 0, nil, err
	}
	effects, err := DecodePointerList(r, decodeFilterEffect, nil)
	if err != nil {
		return 0, nil, err
	}
	return version, effects, nil
}

func encodeFEDSChunk(w *Writer, version int32, effects []FilterEffect) error {
	if err := w.Pad(4); err != nil {
		return err
	}
	if err := w.WriteI32(version); err != nil {
		return err
	}
	return EncodePointerList(w, effects, encodeFilterEffect, nil)
}
