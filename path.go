package clovy

// PathPoint is one control point of a Path.
type PathPoint struct {
	X, Y  float32
	Speed float32
}

func decodePathPoint(r *Reader) (PathPoint, error) {
	var p PathPoint
	var err error
	if p.X, err = r.ReadF32(); err != nil {
		return p, err
	}
	if p.Y, err = r.ReadF32(); err != nil {
		return p, err
	}
	if p.Speed, err = r.ReadF32(); err != nil {
		return p, err
	}
	return p, nil
}

func encodePathPoint(w *Writer, p PathPoint) error {
	if err := w.WriteF32(p.X); err != nil {
		return err
	}
	if err := w.WriteF32(p.Y); err != nil {
		return err
	}
	return w.WriteF32(p.Speed)
}

// Path is one PATH entry.
type Path struct {
	Name      []byte
	Smooth    bool
	Closed    bool
	Precision int32
	Points    []PathPoint
}

func decodePath(r *Reader) (Path, error) {
	var p Path
	var err error
	if p.Name, err = r.ReadPointerString(false); err != nil {
		return p, err
	}
	if p.Smooth, err = r.ReadWideBool(); err != nil {
		return p, err
	}
	if p.Closed, err = r.ReadWideBool(); err != nil {
		return p, err
	}
	if p.Precision, err = r.ReadI32(); err != nil {
		return p, err
	}
	if p.Points, err = DecodeSimpleList(r, decodePathPoint, nil); err != nil {
		return p, err
	}
	return p, nil
}

func encodePath(w *Writer, p Path) error {
	if err := w.WritePointerString(p.Name); err != nil {
		return err
	}
	if err := w.WriteWideBool(p.Smooth); err != nil {
		return err
	}
	if err := w.WriteWideBool(p.Closed); err != nil {
		return err
	}
	if err := w.WriteI32(p.Precision); err != nil {
		return err
	}
	return EncodeSimpleList(w, p.Points, encodePathPoint, nil)
}
