package clovy

import "math"

// Constant is a named option-chunk constant: (name, value) pointer-string
// pair, shared by both OPTN dialects.
type Constant struct {
	Name  []byte
	Value []byte
}

func decodeConstant(r *Reader) (Constant, error) {
	var c Constant
	var err error
	if c.Name, err = r.ReadPointerString(false); err != nil {
		return c, err
	}
	if c.Value, err = r.ReadPointerString(false); err != nil {
		return c, err
	}
	return c, nil
}

func encodeConstant(w *Writer, c Constant) error {
	if err := w.WritePointerString(c.Name); err != nil {
		return err
	}
	return w.WritePointerString(c.Value)
}

// Options is the OPTN chunk. Its first i32 selects one of two on-disk
// dialects: i32_min picks the bit-flag dialect (u64 unknown, u64 options,
// i32 scale, 12 splash/colour/sync words); anything else is the legacy
// dialect, which interleaves a wide_bool per flag with the same numeric
// fields. Both dialects end with SL<Constant>.
type Options struct {
	BitFlagDialect bool

	// Bit-flag dialect fields.
	Unknown uint64
	OptionsFlags uint64
	Scale int32
	WindowColor uint32
	ColorDepth uint32
	Resolution uint32
	Frequency uint32
	SyncVSync uint32
	FollowDesktop uint32
	GameSpeed uint32
	Unused1 uint32
	Unused2 uint32
	Unused3 uint32
	Unused4 uint32
	Unused5 uint32

	// Legacy dialect fields (flags + numeric).
	FullscreenFlag      bool
	InterpolateFlag     bool
	UseNewAudio         bool
	NoBorderFlag        bool
	ShowCursorFlag      bool
	Scale2              int32
	SizeableFlag        bool
	StayOnTopFlag       bool
	WindowColor2        uint32
	ChangeResolution    bool
	ColorDepth2         int32
	Resolution2         int32
	Frequency2          int32
	NoButtonsFlag       bool
	SyncVSyncFlag       bool
	Priority            int32
	SplashBackImage     bool
	SplashFrontImage    bool
	SplashLoadImage     bool
	LoadTransparent     bool
	LoadAlphaFrom       int32
	ScaleProgressBar    bool
	DisplayErrors       bool
	WriteErrorsToFile   bool
	AbortOnError        bool
	TreatUninitAsZero   bool

	Constants []Constant
}

const i32Min int32 = math.MinInt32

func decodeOptions(r *Reader) (*Options, error) {
	sentinel, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	o := &Options{}
	if sentinel == i32Min {
		o.BitFlagDialect = true
		if o.Unknown, err = r.ReadU64(); err != nil {
			return nil, err
		}
		if o.OptionsFlags, err = r.ReadU64(); err != nil {
			return nil, err
		}
		if o.Scale, err = r.ReadI32(); err != nil {
			return nil, err
		}
		words := []*uint32{&o.WindowColor, &o.ColorDepth, &o.Resolution, &o.Frequency,
			&o.SyncVSync, &o.FollowDesktop, &o.GameSpeed, &o.Unused1, &o.Unused2,
			&o.Unused3, &o.Unused4, &o.Unused5}
		for _, w := range words {
			if *w, err = r.ReadU32(); err != nil {
				return nil, err
			}
		}
	} else {
		if err := r.SeekRelative(-4); err != nil {
			return nil, err
		}
		if o.FullscreenFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.InterpolateFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.UseNewAudio, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.NoBorderFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.ShowCursorFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.Scale2, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if o.SizeableFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.StayOnTopFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.WindowColor2, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if o.ChangeResolution, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.ColorDepth2, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if o.Resolution2, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if o.Frequency2, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if o.NoButtonsFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.SyncVSyncFlag, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.Priority, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if o.SplashBackImage, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.SplashFrontImage, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.SplashLoadImage, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.LoadTransparent, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.LoadAlphaFrom, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if o.ScaleProgressBar, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.DisplayErrors, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.WriteErrorsToFile, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.AbortOnError, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
		if o.TreatUninitAsZero, err = r.ReadWideBool(); err != nil {
			return nil, err
		}
	}

	if o.Constants, err = DecodeSimpleList(r, decodeConstant, nil); err != nil {
		return nil, err
	}
	return o, nil
}

// encodeOptions writes the symmetric counterpart of decodeOptions. The
// original engine's legacy-dialect writer dropped splash_back_image,
// splash_front_image, and splash_load_image, breaking round-trip; this
// encoder writes every field the legacy decoder reads.
func encodeOptions(w *Writer, o *Options) error {
	if o.BitFlagDialect {
		if err := w.WriteI32(i32Min); err != nil {
			return err
		}
		if err := w.WriteU64(o.Unknown); err != nil {
			return err
		}
		if err := w.WriteU64(o.OptionsFlags); err != nil {
			return err
		}
		if err := w.WriteI32(o.Scale); err != nil {
			return err
		}
		words := []uint32{o.WindowColor, o.ColorDepth, o.Resolution, o.Frequency,
			o.SyncVSync, o.FollowDesktop, o.GameSpeed, o.Unused1, o.Unused2,
			o.Unused3, o.Unused4, o.Unused5}
		for _, v := range words {
			if err := w.WriteU32(v); err != nil {
				return err
			}
		}
	} else {
		bools := []bool{o.FullscreenFlag, o.InterpolateFlag, o.UseNewAudio, o.NoBorderFlag, o.ShowCursorFlag}
		for _, b := range bools {
			if err := w.WriteWideBool(b); err != nil {
				return err
			}
		}
		if err := w.WriteI32(o.Scale2); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.SizeableFlag); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.StayOnTopFlag); err != nil {
			return err
		}
		if err := w.WriteU32(o.WindowColor2); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.ChangeResolution); err != nil {
			return err
		}
		if err := w.WriteI32(o.ColorDepth2); err != nil {
			return err
		}
		if err := w.WriteI32(o.Resolution2); err != nil {
			return err
		}
		if err := w.WriteI32(o.Frequency2); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.NoButtonsFlag); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.SyncVSyncFlag); err != nil {
			return err
		}
		if err := w.WriteI32(o.Priority); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.SplashBackImage); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.SplashFrontImage); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.SplashLoadImage); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.LoadTransparent); err != nil {
			return err
		}
		if err := w.WriteI32(o.LoadAlphaFrom); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.ScaleProgressBar); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.DisplayErrors); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.WriteErrorsToFile); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.AbortOnError); err != nil {
			return err
		}
		if err := w.WriteWideBool(o.TreatUninitAsZero); err != nil {
			return err
		}
	}
	return EncodeSimpleList(w, o.Constants, encodeConstant, nil)
}
