package clovy

// Sound is one SOND entry. Fields before format_id >= 14 differ: legacy
// sounds have no group_id (defaulted to -1 here) and instead carry a
// preload wide_bool right after audio_id; format_id >= 14 sounds carry an
// explicit group_id and no preload flag.
type Sound struct {
	Name       []byte
	Flags      uint32
	Kind       []byte
	File       []byte
	Effects    uint32
	Volume     float32
	Pitch      float32
	GroupID    int32
	AudioID    int32
	Preload    bool
	HasPreload bool
}

func decodeSound(r *Reader) (Sound, error) {
	var s Sound
	var err error
	if s.Name, err = r.ReadPointerString(false); err != nil {
		return s, err
	}
	if s.Flags, err = r.ReadU32(); err != nil {
		return s, err
	}
	if s.Kind, err = r.ReadPointerString(false); err != nil {
		return s, err
	}
	if s.File, err = r.ReadPointerString(false); err != nil {
		return s, err
	}
	if s.Effects, err = r.ReadU32(); err != nil {
		return s, err
	}
	if s.Volume, err = r.ReadF32(); err != nil {
		return s, err
	}
	if s.Pitch, err = r.ReadF32(); err != nil {
		return s, err
	}
	if r.Version.FormatID >= 14 {
		if s.GroupID, err = r.ReadI32(); err != nil {
			return s, err
		}
		if s.AudioID, err = r.ReadI32(); err != nil {
			return s, err
		}
	} else {
		s.GroupID = -1
		if s.AudioID, err = r.ReadI32(); err != nil {
			return s, err
		}
		if s.Preload, err = r.ReadWideBool(); err != nil {
			return s, err
		}
		s.HasPreload = true
	}
	return s, nil
}

func encodeSound(w *Writer, s Sound) error {
	if err := w.WritePointerString(s.Name); err != nil {
		return err
	}
	if err := w.WriteU32(s.Flags); err != nil {
		return err
	}
	if err := w.WritePointerString(s.Kind); err != nil {
		return err
	}
	if err := w.WritePointerString(s.File); err != nil {
		return err
	}
	if err := w.WriteU32(s.Effects); err != nil {
		return err
	}
	if err := w.WriteF32(s.Volume); err != nil {
		return err
	}
	if err := w.WriteF32(s.Pitch); err != nil {
		return err
	}
	if w.Version.FormatID >= 14 {
		if err := w.WriteI32(s.GroupID); err != nil {
			return err
		}
		if err := w.WriteI32(s.AudioID); err != nil {
			return err
		}
	} else {
		if err := w.WriteI32(s.AudioID); err != nil {
			return err
		}
		if err := w.WriteWideBool(s.Preload); err != nil {
			return err
		}
	}
	return nil
}

// Sound flag bits (raw bitfield, unknown bits preserved).
const (
	SoundFlagChorus uint32 = 1 << iota
	SoundFlagEcho
	SoundFlagFlanger
	SoundFlagGargle
	SoundFlagReverb
	SoundFlagCompressor
	SoundFlagEqualizer
	_
	SoundFlagRegular
	SoundFlag3D
)
