package clovy

import "strconv"

// ExtensionOption is one option record inside an extension's PL<ExtensionOption>.
type ExtensionOption struct {
	Name  []byte
	Value []byte
	Kind  int32
}

func decodeExtensionOption(r *Reader) (ExtensionOption, error) {
	var o ExtensionOption
	var err error
	if o.Name, err = r.ReadPointerString(false); err != nil {
		return o, err
	}
	if o.Value, err = r.ReadPointerString(false); err != nil {
		return o, err
	}
	if o.Kind, err = r.ReadI32(); err != nil {
		return o, err
	}
	return o, nil
}

func encodeExtensionOption(w *Writer, o ExtensionOption) error {
	if err := w.WritePointerString(o.Name); err != nil {
		return err
	}
	if err := w.WritePointerString(o.Value); err != nil {
		return err
	}
	return w.WriteI32(o.Kind)
}

// ExtensionFile is one file record inside an extension's files list.
type ExtensionFile struct {
	Filename   []byte
	CleanName  []byte
	Kind       int32
	InitScript []byte
	FinalScript []byte
	Functions  []ExtensionFunction
}

// ExtensionFunction is one exported function of an ExtensionFile.
type ExtensionFunction struct {
	Name      []byte
	ExtName   []byte
	Kind      int32
	ReturnType int32
	ID        int32
	ArgCount  int32
	ArgTypes  []int32
}

func decodeExtensionFunction(r *Reader) (ExtensionFunction, error) {
	var f ExtensionFunction
	var err error
	if f.Name, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.ExtName, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.Kind, err = r.ReadI32(); err != nil {
		return f, err
	}
	if f.ReturnType, err = r.ReadI32(); err != nil {
		return f, err
	}
	if f.ID, err = r.ReadI32(); err != nil {
		return f, err
	}
	if f.ArgCount, err = r.ReadI32(); err != nil {
		return f, err
	}
	f.ArgTypes = make([]int32, f.ArgCount)
	for i := range f.ArgTypes {
		if f.ArgTypes[i], err = r.ReadI32(); err != nil {
			return f, err
		}
	}
	return f, nil
}

func encodeExtensionFunction(w *Writer, f ExtensionFunction) error {
	if err := w.WritePointerString(f.Name); err != nil {
		return err
	}
	if err := w.WritePointerString(f.ExtName); err != nil {
		return err
	}
	if err := w.WriteI32(f.Kind); err != nil {
		return err
	}
	if err := w.WriteI32(f.ReturnType); err != nil {
		return err
	}
	if err := w.WriteI32(f.ID); err != nil {
		return err
	}
	if err := w.WriteI32(int32(len(f.ArgTypes))); err != nil {
		return err
	}
	for _, t := range f.ArgTypes {
		if err := w.WriteI32(t); err != nil {
			return err
		}
	}
	return nil
}

func decodeExtensionFile(r *Reader) (ExtensionFile, error) {
	var f ExtensionFile
	var err error
	if f.Filename, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.CleanName, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.Kind, err = r.ReadI32(); err != nil {
		return f, err
	}
	if f.InitScript, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.FinalScript, err = r.ReadPointerString(false); err != nil {
		return f, err
	}
	if f.Functions, err = DecodePointerList(r, decodeExtensionFunction, nil); err != nil {
		return f, err
	}
	return f, nil
}

func encodeExtensionFile(w *Writer, f ExtensionFile) error {
	if err := w.WritePointerString(f.Filename); err != nil {
		return err
	}
	if err := w.WritePointerString(f.CleanName); err != nil {
		return err
	}
	if err := w.WriteI32(f.Kind); err != nil {
		return err
	}
	if err := w.WritePointerString(f.InitScript); err != nil {
		return err
	}
	if err := w.WritePointerString(f.FinalScript); err != nil {
		return err
	}
	return EncodePointerList(w, f.Functions, encodeExtensionFunction, nil)
}

// Extension is one EXTN entry: folder_name, name, an optional version
// (V >= 2023.4.0.0), class_name, then either inline files (pre-2022.6) or
// pointer-object files/options (2022.6+). A trailing 16-byte GUID is
// appended after the whole list when V >= 1.0.0.9999.
type Extension struct {
	FolderName []byte
	Name       []byte
	Version    []byte
	ClassName  []byte
	Files      []ExtensionFile
	Options    []ExtensionOption
	GUID       [16]byte
	HasGUID    bool
}

func decodeExtension(r *Reader) (Extension, error) {
	var e Extension
	var err error
	if e.FolderName, err = r.ReadPointerString(false); err != nil {
		return e, err
	}
	if e.Name, err = r.ReadPointerString(false); err != nil {
		return e, err
	}
	if r.Version.AtLeast(2023, 4, 0, 0) {
		if e.Version, err = r.ReadPointerString(false); err != nil {
			return e, err
		}
	}
	if e.ClassName, err = r.ReadPointerString(false); err != nil {
		return e, err
	}
	if r.Version.AtLeast(2022, 6, 0, 0) {
		if e.Files, err = ReadPointerObject(r, func(r *Reader) ([]ExtensionFile, error) {
			return DecodePointerList(r, decodeExtensionFile, nil)
		}); err != nil {
			return e, err
		}
		if e.Options, err = ReadPointerObject(r, func(r *Reader) ([]ExtensionOption, error) {
			return DecodePointerList(r, decodeExtensionOption, nil)
		}); err != nil {
			return e, err
		}
	} else {
		if e.Files, err = DecodePointerList(r, decodeExtensionFile, nil); err != nil {
			return e, err
		}
	}
	return e, nil
}

func encodeExtension(w *Writer, e Extension, key string) error {
	if err := w.WritePointerString(e.FolderName); err != nil {
		return err
	}
	if err := w.WritePointerString(e.Name); err != nil {
		return err
	}
	if w.Version.AtLeast(2023, 4, 0, 0) {
		if err := w.WritePointerString(e.Version); err != nil {
			return err
		}
	}
	if err := w.WritePointerString(e.ClassName); err != nil {
		return err
	}
	if w.Version.AtLeast(2022, 6, 0, 0) {
		if err := WritePointerObject(w, key+":files", e.Files, func(w *Writer, files []ExtensionFile) error {
			return EncodePointerList(w, files, encodeExtensionFile, nil)
		}); err != nil {
			return err
		}
		if err := WritePointerObject(w, key+":options", e.Options, func(w *Writer, opts []ExtensionOption) error {
			return EncodePointerList(w, opts, encodeExtensionOption, nil)
		}); err != nil {
			return err
		}
	} else {
		if err := EncodePointerList(w, e.Files, encodeExtensionFile, nil); err != nil {
			return err
		}
	}
	return nil
}

// decodeExtensionList decodes the EXTN chunk: runs the EXTN format probe
// first (which may bump V before the main PL<Extension> decode begins),
// then the list itself, then (if V >= 1.0.0.9999) one 16-byte GUID per
// extension, in list order.
func decodeExtensionList(r *Reader, chunk Chunk) ([]Extension, error) {
	if err := probeEXTN(r, chunk); err != nil {
		return nil, err
	}
	extensions, err := DecodePointerList(r, decodeExtension, nil)
	if err != nil {
		return nil, err
	}
	if r.Version.AtLeast(1, 0, 0, 9999) {
		for i := range extensions {
			b, err := r.ReadBytes(16)
			if err != nil {
				return nil, err
			}
			copy(extensions[i].GUID[:], b)
			extensions[i].HasGUID = true
		}
	}
	return extensions, nil
}

func encodeExtensionList(w *Writer, extensions []Extension) error {
	if err := w.WriteU32(uint32(len(extensions))); err != nil {
		return err
	}
	tableStart, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.WriteBytes(make([]byte, 4*len(extensions))); err != nil {
		return err
	}
	offsets := make([]uint32, len(extensions))
	for i, e := range extensions {
		pos, err := w.StreamPosition()
		if err != nil {
			return err
		}
		offsets[i] = uint32(pos)
		if err := encodeExtension(w, e, extensionKey(i)); err != nil {
			return err
		}
	}
	endPos, err := w.StreamPosition()
	if err != nil {
		return err
	}
	if err := w.SeekTo(tableStart); err != nil {
		return err
	}
	for _, off := range offsets {
		if err := w.WriteU32(off); err != nil {
			return err
		}
	}
	if err := w.SeekTo(endPos); err != nil {
		return err
	}

	if w.Version.AtLeast(1, 0, 0, 9999) {
		for _, e := range extensions {
			if err := w.WriteBytes(e.GUID[:]); err != nil {
				return err
			}
		}
	}
	return nil
}

func extensionKey(i int) string {
	return "extn:" + strconv.Itoa(i)
}
