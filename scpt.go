package clovy

// Script is one SCPT entry: a name plus the compiled code entry id. The
// original toolchain steals the sign bit of code_id to flag constructor
// scripts (code_id < -1 means "constructor"; the real id is code_id with
// the sign bit masked off) rather than carrying a separate bool field, per
// original_source's script model — preserved here for round-trip fidelity
// since spec.md's SCPT entry is otherwise silent on it.
type Script struct {
	Name        []byte
	CodeID      int32
	Constructor bool
}

const scriptConstructorMask int32 = -0x80000000 // sign bit

func decodeScript(r *Reader) (Script, error) {
	var s Script
	var err error
	if s.Name, err = r.ReadPointerString(false); err != nil {
		return s, err
	}
	var raw int32
	if raw, err = r.ReadI32(); err != nil {
		return s, err
	}
	if raw < -1 {
		s.Constructor = true
		s.CodeID = raw &^ scriptConstructorMask
	} else {
		s.CodeID = raw
	}
	return s, nil
}

func encodeScript(w *Writer, s Script) error {
	if err := w.WritePointerString(s.Name); err != nil {
		return err
	}
	raw := s.CodeID
	if s.Constructor {
		raw |= scriptConstructorMask
	}
	return w.WriteI32(raw)
}
