package clovy

// CurvePoint is one keyframe of an AnimationCurve channel. Bezier handle
// coordinates were added in 2.3.1.0; earlier versions carry a third f32
// that is never interpreted (the original engine just skips it on decode
// and writes zero on encode) — kept here rather than discarded so a
// pre-2.3.1 round trip reproduces the source bytes exactly.
type CurvePoint struct {
	X         float32
	Value     float32
	Curviness float32
	HasBezier bool
	Bezier    [4]float32
}

func decodeCurvePoint(r *Reader) (CurvePoint, error) {
	var p CurvePoint
	var err error
	if p.X, err = r.ReadF32(); err != nil {
		return p, err
	}
	if p.Value, err = r.ReadF32(); err != nil {
		return p, err
	}
	if r.Version.AtLeast(2, 3, 1, 0) {
		p.HasBezier = true
		for i := range p.Bezier {
			if p.Bezier[i], err = r.ReadF32(); err != nil {
				return p, err
			}
		}
	} else {
		if p.Curviness, err = r.ReadF32(); err != nil {
			return p, err
		}
	}
	return p, nil
}

func encodeCurvePoint(w *Writer, p CurvePoint) error {
	if err := w.WriteF32(p.X); err != nil {
		return err
	}
	if err := w.WriteF32(p.Value); err != nil {
		return err
	}
	if w.Version.AtLeast(2, 3, 1, 0) {
		for _, b := range p.Bezier {
			if err := w.WriteF32(b); err != nil {
				return err
			}
		}
		return nil
	}
	return w.WriteF32(p.Curviness)
}

// CurveChannel is one named channel of an AnimationCurve (e.g. "x", "y").
type CurveChannel struct {
	Name           []byte
	CurveKind      int32
	IterationCount uint32
	Points         []CurvePoint
}

func decodeCurveChannel(r *Reader) (CurveChannel, error) {
	var c CurveChannel
	var err error
	if c.Name, err = r.ReadPointerString(false); err != nil {
		return c, err
	}
	if c.CurveKind, err = r.ReadI32(); err != nil {
		return c, err
	}
	if c.IterationCount, err = r.ReadU32(); err != nil {
		return c, err
	}
	pointCount, err := r.ReadI32()
	if err != nil {
		return c, err
	}
	c.Points = make([]CurvePoint, pointCount)
	for i := range c.Points {
		if c.Points[i], err = decodeCurvePoint(r); err != nil {
			return c, err
		}
	}
	return c, nil
}

func encodeCurveChannel(w *Writer, c CurveChannel) error {
	if err := w.WritePointerString(c.Name); err != nil {
		return err
	}
	if err := w.WriteI32(c.CurveKind); err != nil {
		return err
	}
	if err := w.WriteU32(c.IterationCount); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(c.Points))); err != nil {
		return err
	}
	for _, p := range c.Points {
		if err := encodeCurvePoint(w, p); err != nil {
			return err
		}
	}
	return nil
}

// AnimationCurve is one ACRV entry: a name plus its SL<CurveChannel>. The
// channels' point dialect (legacy vs. bezier) is keyed on the session-wide
// version context, not on the ACRV chunk's own version field; the point
// count is read unconditionally. The chunk's version field is a small
// engine-internal constant (ACRV chunks in the wild carry version == 1
// regardless of GMS release) and plays no role in the on-disk layout beyond being round-tripped verbatim.
type AnimationCurve struct {
	Name      []byte
	GraphKind int32
	Channels  []CurveChannel
}

func decodeAnimationCurve(r *Reader) (AnimationCurve, error) {
	var a AnimationCurve
	var err error
	if a.Name, err = r.ReadPointerString(false); err != nil {
		return a, err
	}
	if a.GraphKind, err = r.ReadI32(); err != nil {
		return a, err
	}
	if a.Channels, err = DecodeSimpleList(r, decodeCurveChannel, nil); err != nil {
		return a, err
	}
	return a, nil
}

func encodeAnimationCurve(w *Writer, a AnimationCurve) error {
	if err := w.WritePointerString(a.Name); err != nil {
		return err
	}
	if err := w.WriteI32(a.GraphKind); err != nil {
		return err
	}
	return EncodeSimpleList(w, a.Channels, encodeCurveChannel, nil)
}

// decodeACRVChunk implements the ACRV chunk header: an i32 chunk version
// (round-tripped but otherwise inert, see AnimationCurve's doc comment)
// then PL<AnimationCurve>.
func decodeACRVChunk(r *Reader) (int32, []AnimationCurve, error) {
	version, err := r.ReadI32()
	if err != nil {
		return 0, nil, err
	}
	curves, err := DecodePointerList(r, decodeAnimationCurve, nil)
	if err != nil {
		return 0, nil, err
	}
	return version, curves, nil
}

func encodeACRVChunk(w *Writer, version int32, curves []AnimationCurve) error {
	if err := w.WriteI32(version); err != nil {
		return err
	}
	return EncodePointerList(w, curves, encodeAnimationCurve, nil)
}
