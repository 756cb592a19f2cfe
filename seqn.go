package clovy

// Keyframe is a generic sequence keyframe: a time range (key, length), two
// playback flags, and a payload of type T. Both SL<Keyframe<BroadcastMessage>>
// and SL<Keyframe<Moment>> (and every Track keyframe list) share this shape,
// so it is expressed once as a generic rather than duplicated per payload
// kind.
type Keyframe[T any] struct {
	Time     float64
	Length   float64
	Stretch  bool
	Disabled bool
	Data     T
}

func decodeKeyframe[T any](r *Reader, decodeData func(*Reader) (T, error)) (Keyframe[T], error) {
	var k Keyframe[T]
	var err error
	if k.Time, err = r.ReadF64(); err != nil {
		return k, err
	}
	if k.Length, err = r.ReadF64(); err != nil {
		return k, err
	}
	if k.Stretch, err = r.ReadWideBool(); err != nil {
		return k, err
	}
	if k.Disabled, err = r.ReadWideBool(); err != nil {
		return k, err
	}
	if k.Data, err = decodeData(r); err != nil {
		return k, err
	}
	return k, nil
}

func encodeKeyframe[T any](w *Writer, k Keyframe[T], encodeData func(*Writer, T) error) error {
	if err := w.WriteF64(k.Time); err != nil {
		return err
	}
	if err := w.WriteF64(k.Length); err != nil {
		return err
	}
	if err := w.WriteWideBool(k.Stretch); err != nil {
		return err
	}
	if err := w.WriteWideBool(k.Disabled); err != nil {
		return err
	}
	return encodeData(w, k.Data)
}

// BroadcastMessage is a sequence-level broadcast-message keyframe payload:
// a single pointer-string message.
type BroadcastMessage struct {
	Message []byte
}

func decodeBroadcastMessage(r *Reader) (BroadcastMessage, error) {
	var b BroadcastMessage
	var err error
	if b.Message, err = r.ReadPointerString(false); err != nil {
		return b, err
	}
	return b, nil
}

func encodeBroadcastMessage(w *Writer, b BroadcastMessage) error {
	return w.WritePointerString(b.Message)
}

// Moment is a sequence-level moment keyframe payload: the internal event
// id fired when playback crosses this keyframe's time.
type Moment struct {
	EventID int32
}

func decodeMoment(r *Reader) (Moment, error) {
	var m Moment
	var err error
	if m.EventID, err = r.ReadI32(); err != nil {
		return m, err
	}
	return m, nil
}

func encodeMoment(w *Writer, m Moment) error {
	return w.WriteI32(m.EventID)
}

// CurveData is a Track real-keyframe's animation curve reference: either
// an embedded AnimationCurve (sentinel -1 precedes the inline record) or a
// u32 id referencing one decoded elsewhere in the ACRV chunk.
type CurveData struct {
	Embedded bool
	Curve    *AnimationCurve
	CurveID  uint32
}

func decodeCurveData(r *Reader) (CurveData, error) {
	var c CurveData
	sentinel, err := r.ReadI32()
	if err != nil {
		return c, err
	}
	if sentinel == -1 {
		c.Embedded = true
		curve, err := decodeAnimationCurve(r)
		if err != nil {
			return c, err
		}
		c.Curve = &curve
		return c, nil
	}
	if err := r.SeekRelative(-4); err != nil {
		return c, err
	}
	if c.CurveID, err = r.ReadU32(); err != nil {
		return c, err
	}
	return c, nil
}

func encodeCurveData(w *Writer, c CurveData) error {
	if c.Embedded {
		if err := w.WriteI32(-1); err != nil {
			return err
		}
		return encodeAnimationCurve(w, *c.Curve)
	}
	return w.WriteU32(c.CurveID)
}

// Track keyframe payload kinds, tagged by the model_name string actually
// persisted on disk. This replaces the original engine's "set discriminator
// string then set payload separately" pattern with a sum type whose tag is
// derived from model_name, per spec.md §9.
type TrackKind int

const (
	TrackDefault TrackKind = iota
	TrackAudio
	TrackString
	TrackReal
	TrackText
	TrackParticle
	TrackInstance
	TrackUnknown
)

func trackKindFromModelName(name []byte) TrackKind {
	switch string(name) {
	case "GMAudioTrack":
		return TrackAudio
	case "GMStringTrack":
		return TrackString
	case "GMRealTrack":
		return TrackReal
	case "GMColourTrack":
		return TrackReal
	case "GMTextTrack":
		return TrackText
	case "GMParticleTrack":
		return TrackParticle
	case "GMInstanceTrack":
		return TrackInstance
	default:
		return TrackUnknown
	}
}

type AudioKeyframeData struct {
	SoundID int32
	Mode    int32
}

func decodeAudioKeyframeData(r *Reader) (AudioKeyframeData, error) {
	var d AudioKeyframeData
	var err error
	if d.SoundID, err = r.ReadI32(); err != nil {
		return d, err
	}
	if d.Mode, err = r.ReadI32(); err != nil {
		return d, err
	}
	return d, nil
}

func encodeAudioKeyframeData(w *Writer, d AudioKeyframeData) error {
	if err := w.WriteI32(d.SoundID); err != nil {
		return err
	}
	return w.WriteI32(d.Mode)
}

type StringKeyframeData struct{ Value []byte }

func decodeStringKeyframeData(r *Reader) (StringKeyframeData, error) {
	var d StringKeyframeData
	var err error
	if d.Value, err = r.ReadPointerString(false); err != nil {
		return d, err
	}
	return d, nil
}

func encodeStringKeyframeData(w *Writer, d StringKeyframeData) error {
	return w.WritePointerString(d.Value)
}

type RealKeyframeData struct {
	Value float32
	Curve CurveData
}

func decodeRealKeyframeData(r *Reader) (RealKeyframeData, error) {
	var d RealKeyframeData
	var err error
	if d.Value, err = r.ReadF32(); err != nil {
		return d, err
	}
	if d.Curve, err = decodeCurveData(r); err != nil {
		return d, err
	}
	return d, nil
}

func encodeRealKeyframeData(w *Writer, d RealKeyframeData) error {
	if err := w.WriteF32(d.Value); err != nil {
		return err
	}
	return encodeCurveData(w, d.Curve)
}

type TextKeyframeData struct {
	Text []byte
	Wrap bool
}

func decodeTextKeyframeData(r *Reader) (TextKeyframeData, error) {
	var d TextKeyframeData
	var err error
	if d.Text, err = r.ReadPointerString(false); err != nil {
		return d, err
	}
	if d.Wrap, err = r.ReadWideBool(); err != nil {
		return d, err
	}
	return d, nil
}

func encodeTextKeyframeData(w *Writer, d TextKeyframeData) error {
	if err := w.WritePointerString(d.Text); err != nil {
		return err
	}
	return w.WriteWideBool(d.Wrap)
}

type ParticleKeyframeData struct{ ParticleID int32 }

func decodeParticleKeyframeData(r *Reader) (ParticleKeyframeData, error) {
	var d ParticleKeyframeData
	var err error
	if d.ParticleID, err = r.ReadI32(); err != nil {
		return d, err
	}
	return d, nil
}

func encodeParticleKeyframeData(w *Writer, d ParticleKeyframeData) error {
	return w.WriteI32(d.ParticleID)
}

type DefaultKeyframeData struct{ Value float32 }

func decodeDefaultKeyframeData(r *Reader) (DefaultKeyframeData, error) {
	var d DefaultKeyframeData
	var err error
	if d.Value, err = r.ReadF32(); err != nil {
		return d, err
	}
	return d, nil
}

func encodeDefaultKeyframeData(w *Writer, d DefaultKeyframeData) error {
	return w.WriteF32(d.Value)
}

// TrackKeyframes holds the exactly-one populated keyframe list that
// matches a Track's Kind.
type TrackKeyframes struct {
	Audio    []Keyframe[AudioKeyframeData]
	String   []Keyframe[StringKeyframeData]
	Real     []Keyframe[RealKeyframeData]
	Text     []Keyframe[TextKeyframeData]
	Particle []Keyframe[ParticleKeyframeData]
	Default  []Keyframe[DefaultKeyframeData]
}

// Track is one SEQN::Sequence track: a tagged record whose on-disk
// discriminator is the model_name pointer-string. Tracks may recursively
// own child tracks (sub-tracks layering multiple channels).
type Track struct {
	ModelName []byte
	Kind      TrackKind
	Name      []byte
	BuiltinName int32
	TraitsFlags int32
	IsCreationTrack bool
	Tags      []int32
	SubTracks []Track
	Keyframes TrackKeyframes
}

func decodeTrack(r *Reader) (Track, error) {
	var t Track
	var err error
	if t.ModelName, err = r.ReadPointerString(false); err != nil {
		return t, err
	}
	t.Kind = trackKindFromModelName(t.ModelName)

	switch t.Kind {
	case TrackParticle:
		r.Version.Set(2023, 2, 0, 0)
	case TrackText:
		r.Version.Set(2022, 2, 0, 0)
	}

	if t.Name, err = r.ReadPointerString(false); err != nil {
		return t, err
	}
	if t.BuiltinName, err = r.ReadI32(); err != nil {
		return t, err
	}
	if t.TraitsFlags, err = r.ReadI32(); err != nil {
		return t, err
	}
	if t.IsCreationTrack, err = r.ReadWideBool(); err != nil {
		return t, err
	}
	if t.Tags, err = DecodeSimpleList(r, (*Reader).ReadI32, nil); err != nil {
		return t, err
	}
	if t.SubTracks, err = DecodePointerList(r, decodeTrack, nil); err != nil {
		return t, err
	}

	switch t.Kind {
	case TrackAudio:
		t.Keyframes.Audio, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[AudioKeyframeData], error) {
			return decodeKeyframe(r, decodeAudioKeyframeData)
		}, nil)
	case TrackString:
		t.Keyframes.String, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[StringKeyframeData], error) {
			return decodeKeyframe(r, decodeStringKeyframeData)
		}, nil)
	case TrackReal:
		if err := r.PadCheck(4, 0); err != nil {
			return t, err
		}
		t.Keyframes.Real, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[RealKeyframeData], error) {
			return decodeKeyframe(r, decodeRealKeyframeData)
		}, nil)
	case TrackText:
		t.Keyframes.Text, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[TextKeyframeData], error) {
			return decodeKeyframe(r, decodeTextKeyframeData)
		}, nil)
	case TrackParticle:
		t.Keyframes.Particle, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[ParticleKeyframeData], error) {
			return decodeKeyframe(r, decodeParticleKeyframeData)
		}, nil)
	default:
		t.Keyframes.Default, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[DefaultKeyframeData], error) {
			return decodeKeyframe(r, decodeDefaultKeyframeData)
		}, nil)
	}
	if err != nil {
		return t, err
	}
	return t, nil
}

func encodeTrack(w *Writer, t Track) error {
	if err := w.WritePointerString(t.ModelName); err != nil {
		return err
	}
	if err := w.WritePointerString(t.Name); err != nil {
		return err
	}
	if err := w.WriteI32(t.BuiltinName); err != nil {
		return err
	}
	if err := w.WriteI32(t.TraitsFlags); err != nil {
		return err
	}
	if err := w.WriteWideBool(t.IsCreationTrack); err != nil {
		return err
	}
	if err := EncodeSimpleList(w, t.Tags, (*Writer).WriteI32, nil); err != nil {
		return err
	}
	if err := EncodePointerList(w, t.SubTracks, encodeTrack, nil); err != nil {
		return err
	}

	switch t.Kind {
	case TrackAudio:
		return EncodeSimpleList(w, t.Keyframes.Audio, func(w *Writer, k Keyframe[AudioKeyframeData]) error {
			return encodeKeyframe(w, k, encodeAudioKeyframeData)
		}, nil)
	case TrackString:
		return EncodeSimpleList(w, t.Keyframes.String, func(w *Writer, k Keyframe[StringKeyframeData]) error {
			return encodeKeyframe(w, k, encodeStringKeyframeData)
		}, nil)
	case TrackReal:
		if err := w.PadCheck(4, 0); err != nil {
			return err
		}
		return EncodeSimpleList(w, t.Keyframes.Real, func(w *Writer, k Keyframe[RealKeyframeData]) error {
			return encodeKeyframe(w, k, encodeRealKeyframeData)
		}, nil)
	case TrackText:
		return EncodeSimpleList(w, t.Keyframes.Text, func(w *Writer, k Keyframe[TextKeyframeData]) error {
			return encodeKeyframe(w, k, encodeTextKeyframeData)
		}, nil)
	case TrackParticle:
		return EncodeSimpleList(w, t.Keyframes.Particle, func(w *Writer, k Keyframe[ParticleKeyframeData]) error {
			return encodeKeyframe(w, k, encodeParticleKeyframeData)
		}, nil)
	default:
		return EncodeSimpleList(w, t.Keyframes.Default, func(w *Writer, k Keyframe[DefaultKeyframeData]) error {
			return encodeKeyframe(w, k, encodeDefaultKeyframeData)
		}, nil)
	}
}

// FunctionID is one (key, value) entry of a Sequence's function_ids map.
type FunctionID struct {
	Key   int32
	Value []byte
}

// Sequence is one SEQN entry.
type Sequence struct {
	Name            []byte
	PlaybackType    int32
	PlaybackSpeed   float32
	SpeedType       int32
	Length          float32
	OriginX         int32
	OriginY         int32
	Volume          float32
	BroadcastMessages []Keyframe[BroadcastMessage]
	Tracks          []Track
	FunctionIDs     []FunctionID
	Moments         []Keyframe[Moment]
}

func decodeSequence(r *Reader) (Sequence, error) {
	var s Sequence
	var err error
	if s.Name, err = r.ReadPointerString(false); err != nil {
		return s, err
	}
	if s.PlaybackType, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.PlaybackSpeed, err = r.ReadF32(); err != nil {
		return s, err
	}
	if s.SpeedType, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.Length, err = r.ReadF32(); err != nil {
		return s, err
	}
	if s.OriginX, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.OriginY, err = r.ReadI32(); err != nil {
		return s, err
	}
	if s.Volume, err = r.ReadF32(); err != nil {
		return s, err
	}
	if s.BroadcastMessages, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[BroadcastMessage], error) {
		return decodeKeyframe(r, decodeBroadcastMessage)
	}, nil); err != nil {
		return s, err
	}
	if s.Tracks, err = DecodeSimpleList(r, decodeTrack, nil); err != nil {
		return s, err
	}
	fnCount, err := r.ReadU32()
	if err != nil {
		return s, err
	}
	s.FunctionIDs = make([]FunctionID, fnCount)
	for i := range s.FunctionIDs {
		if s.FunctionIDs[i].Key, err = r.ReadI32(); err != nil {
			return s, err
		}
		if s.FunctionIDs[i].Value, err = r.ReadPointerString(false); err != nil {
			return s, err
		}
	}
	if s.Moments, err = DecodeSimpleList(r, func(r *Reader) (Keyframe[Moment], error) {
		return decodeKeyframe(r, decodeMoment)
	}, nil); err != nil {
		return s, err
	}
	return s, nil
}

func encodeSequence(w *Writer, s Sequence) error {
	if err := w.WritePointerString(s.Name); err != nil {
		return err
	}
	if err := w.WriteI32(s.PlaybackType); err != nil {
		return err
	}
	if err := w.WriteF32(s.PlaybackSpeed); err != nil {
		return err
	}
	if err := w.WriteI32(s.SpeedType); err != nil {
		return err
	}
	if err := w.WriteF32(s.Length); err != nil {
		return err
	}
	if err := w.WriteI32(s.OriginX); err != nil {
		return err
	}
	if err := w.WriteI32(s.OriginY); err != nil {
		return err
	}
	if err := w.WriteF32(s.Volume); err != nil {
		return err
	}
	if err := EncodeSimpleList(w, s.BroadcastMessages, func(w *Writer, k Keyframe[BroadcastMessage]) error {
		return encodeKeyframe(w, k, encodeBroadcastMessage)
	}, nil); err != nil {
		return err
	}
	if err := EncodeSimpleList(w, s.Tracks, encodeTrack, nil); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(len(s.FunctionIDs))); err != nil {
		return err
	}
	for _, f := range s.FunctionIDs {
		if err := w.WriteI32(f.Key); err != nil {
			return err
		}
		if err := w.WritePointerString(f.Value); err != nil {
			return err
		}
	}
	return EncodeSimpleList(w, s.Moments, func(w *Writer, k Keyframe[Moment]) error {
		return encodeKeyframe(w, k, encodeMoment)
	}, nil)
}

// decodeSEQNChunk implements the SEQN chunk header: pad_check(4, 0) then
// an i32 chunk version, then PL<Sequence>.
func decodeSEQNChunk(r *Reader) (int32, []Sequence, error) {
	if err := r.PadCheck(4, 0); err != nil {
		return 0, nil, err
	}
	version, err := r.ReadI32()
	if err != nil {
		return 0, nil, err
	}
	sequences, err := DecodePointerList(r, decodeSequence, nil)
	if err != nil {
		return 0, nil, err
	}
	return version, sequences, nil
}

func encodeSEQNChunk(w *Writer, version int32, sequences []Sequence) error {
	if err := w.PadCheck(4, 0); err != nil {
		return err
	}
	if err := w.WriteI32(version); err != nil {
		return err
	}
	return EncodePointerList(w, sequences, encodeSequence, nil)
}
