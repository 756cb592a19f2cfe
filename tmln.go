package clovy

import "strconv"

// TimelineMoment is one keyed moment in a Timeline: a step number and the
// two-level event list triggered at it (mirrors Object's PL<PL<Event>>).
type TimelineMoment struct {
	Step   int32
	Events [][]Event
}

func decodeTimelineMoment(r *Reader) (TimelineMoment, error) {
	var m TimelineMoment
	var err error
	if m.Step, err = r.ReadI32(); err != nil {
		return m, err
	}
	if m.Events, err = ReadPointerObject(r, func(r *Reader) ([][]Event, error) {
		return DecodePointerList(r, decodeEventList, nil)
	}); err != nil {
		return m, err
	}
	return m, nil
}

func encodeTimelineMoment(w *Writer, m TimelineMoment, key string) error {
	if err := w.WriteI32(m.Step); err != nil {
		return err
	}
	return WritePointerObject(w, key, m.Events, func(w *Writer, events [][]Event) error {
		return EncodePointerList(w, events, encodeEventList, nil)
	})
}

// Timeline is one TMLN entry: a name and its ordered moments.
type Timeline struct {
	Name    []byte
	Moments []TimelineMoment
}

func decodeTimeline(r *Reader) (Timeline, error) {
	var t Timeline
	var err error
	if t.Name, err = r.ReadPointerString(false); err != nil {
		return t, err
	}
	if t.Moments, err = DecodePointerList(r, decodeTimelineMoment, nil); err != nil {
		return t, err
	}
	return t, nil
}

func encodeTimeline(w *Writer, t Timeline) error {
	if err := w.WritePointerString(t.Name); err != nil {
		return err
	}
	idx := 0
	return EncodePointerList(w, t.Moments, func(w *Writer, m TimelineMoment) error {
		idx++
		return encodeTimelineMoment(w, m, "tmln:"+string(t.Name)+":"+strconv.Itoa(idx))
	}, nil)
}
