package clovy

// GlobalData holds session-scoped state that one chunk's decode leaves
// behind for another chunk to consume, kept off any package-level variable
// per spec.md §9 ("avoid process-wide statics"). Today the only field is
// the LANG entry count, which Language needs to know how many pointer
// strings to read per language record.
type GlobalData struct {
	LangEntryCount int32
}

// FileSystem is the optional seam AGRP uses to resolve audiogroup{i}.dat
// side-files. Decode/encode sessions that don't supply one simply skip
// side-file recursion — AGRP still decodes its own PL<AudioGroup> list.
type FileSystem interface {
	Open(name string) ([]byte, error)
	Create(name string) (WriteCloserSeeker, error)
}

// WriteCloserSeeker is the minimal surface FileSystem.Create needs to hand
// back: something the writer can seek within and close when done.
type WriteCloserSeeker interface {
	Write(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Close() error
}
