package clovy

import (
	"bytes"
	"fmt"
)

// AudioGroup is one AGRP entry: a name and, when the version is at least
// 2.3.0.0, a path pointer-string. HasPath records whether the path was read.
type AudioGroup struct {
	Name    []byte
	Path    []byte
	HasPath bool
}

func decodeAudioGroup(r *Reader) (AudioGroup, error) {
	var a AudioGroup
	var err error
	if a.Name, err = r.ReadPointerString(false); err != nil {
		return a, err
	}
	if r.Version.AtLeast(2, 3, 0, 0) {
		if a.Path, err = r.ReadPointerString(false); err != nil {
			return a, err
		}
		a.HasPath = true
	}
	return a, nil
}

func encodeAudioGroup(w *Writer, a AudioGroup) error {
	if err := w.WritePointerString(a.Name); err != nil {
		return err
	}
	if w.Version.AtLeast(2, 3, 0, 0) {
		return w.WritePointerString(a.Path)
	}
	return nil
}

// LoadAudioGroupSideFiles opens and decodes each audiogroup{i}.dat side
// file for groups[1:] (index 0 is the builtin group and has no side file)
// using r's FileSystem seam, returning one Directory per side file in
// group order. A reader with no FileSystem attached returns (nil, nil):
// side-file recursion is opt-in, keeping the core engine a pure
// byte-stream codec per spec.md §5's resource model.
func LoadAudioGroupSideFiles(r *Reader, groups []AudioGroup) ([]*Directory, error) {
	if r.fs == nil {
		return nil, nil
	}
	out := make([]*Directory, 0, len(groups))
	for i := range groups {
		if i == 0 {
			continue
		}
		name := fmt.Sprintf("audiogroup%d.dat", i)
		data, err := r.fs.Open(name)
		if err != nil {
			return nil, fmt.Errorf("clovy: opening %s: %w", name, err)
		}
		sub := NewReader(bytes.NewReader(data))
		dir, err := Decode(sub)
		if err != nil {
			return nil, fmt.Errorf("clovy: decoding %s: %w", name, err)
		}
		out = append(out, dir)
	}
	return out, nil
}

// SaveAudioGroupSideFiles is the write-side counterpart: it completes the
// AGRP encode path the original engine left as a stub (spec.md §9), by
// actually emitting one audiogroup{i}.dat per side directory via w's
// FileSystem seam.
func SaveAudioGroupSideFiles(w *Writer, sideDirs []*Directory) error {
	if w.fs == nil {
		return nil
	}
	for i, dir := range sideDirs {
		name := fmt.Sprintf("audiogroup%d.dat", i+1)
		out, err := w.fs.Create(name)
		if err != nil {
			return fmt.Errorf("clovy: creating %s: %w", name, err)
		}
		sideWriter := NewWriter(out)
		sideWriter.Version = w.Version
		if err := Encode(sideWriter, dir); err != nil {
			_ = out.Close()
			return fmt.Errorf("clovy: encoding %s: %w", name, err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("clovy: closing %s: %w", name, err)
		}
	}
	return nil
}
