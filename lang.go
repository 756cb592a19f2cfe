package clovy

// Language is one per-language record in the LANG chunk: a name, a region
// tag, and entry_count strings (entry_count is read once at the chunk
// level and stashed in GlobalData so every Language can re-use it without
// re-deriving it).
type Language struct {
	Name    []byte
	Region  []byte
	Entries [][]byte
}

func decodeLanguage(r *Reader) (Language, error) {
	var l Language
	var err error
	if l.Name, err = r.ReadPointerString(false); err != nil {
		return l, err
	}
	if l.Region, err = r.ReadPointerString(false); err != nil {
		return l, err
	}
	l.Entries = make([][]byte, r.Global.LangEntryCount)
	for i := range l.Entries {
		if l.Entries[i], err = r.ReadPointerString(false); err != nil {
			return l, err
		}
	}
	return l, nil
}

func encodeLanguage(w *Writer, l Language) error {
	if err := w.WritePointerString(l.Name); err != nil {
		return err
	}
	if err := w.WritePointerString(l.Region); err != nil {
		return err
	}
	for _, e := range l.Entries {
		if err := w.WritePointerString(e); err != nil {
			return err
		}
	}
	return nil
}

// LanguageInfo is the LANG chunk: a header (unknown i32, language_count,
// entry_count, entry_ids) followed by language_count Language records.
type LanguageInfo struct {
	Unknown   int32
	EntryIDs  [][]byte
	Languages []Language
}

func decodeLanguageInfo(r *Reader) (*LanguageInfo, error) {
	l := &LanguageInfo{}
	var err error
	if l.Unknown, err = r.ReadI32(); err != nil {
		return nil, err
	}
	languageCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	entryCount, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	r.Global.LangEntryCount = entryCount

	l.EntryIDs = make([][]byte, entryCount)
	for i := range l.EntryIDs {
		if l.EntryIDs[i], err = r.ReadPointerString(false); err != nil {
			return nil, err
		}
	}

	l.Languages = make([]Language, languageCount)
	for i := range l.Languages {
		if l.Languages[i], err = decodeLanguage(r); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// encodeLanguageInfo derives language_count and entry_count from the
// actual slice lengths on write, rather than trusting separately-tracked
// counters — spec.md §9 flags the original's counter/list-length drift as
// the likely source of a round-trip bug and specifies deriving from list
// length instead.
func encodeLanguageInfo(w *Writer, l *LanguageInfo) error {
	if err := w.WriteI32(l.Unknown); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(l.Languages))); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(l.EntryIDs))); err != nil {
		return err
	}
	for _, id := range l.EntryIDs {
		if err := w.WritePointerString(id); err != nil {
			return err
		}
	}
	for _, lang := range l.Languages {
		if err := encodeLanguage(w, lang); err != nil {
			return err
		}
	}
	return nil
}
