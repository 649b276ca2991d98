// Package docx performs template substitution and appendix composition
// on .docx containers by direct zip and XML manipulation. No document
// model is built; every transform is string surgery on word/document.xml
// plus part/relationship bookkeeping, and every appendix transform
// degrades to a no-op when its insertion anchor is missing.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// archive is an in-memory OOXML zip container. Part order is preserved
// across a read/write cycle; Word tolerates reordering but diffable
// output makes tests and debugging saner.
type archive struct {
	names []string
	parts map[string][]byte
}

func openArchive(data []byte) (*archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx container: %w", err)
	}
	a := &archive{parts: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		a.names = append(a.names, f.Name)
		a.parts[f.Name] = b
	}
	return a, nil
}

func (a *archive) part(name string) ([]byte, bool) {
	b, ok := a.parts[name]
	return b, ok
}

// setPart replaces or adds a part, keeping insertion order for new names.
func (a *archive) setPart(name string, data []byte) {
	if _, ok := a.parts[name]; !ok {
		a.names = append(a.names, name)
	}
	a.parts[name] = data
}

func (a *archive) removePart(name string) {
	if _, ok := a.parts[name]; !ok {
		return
	}
	delete(a.parts, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
}

// bytes re-serializes the container with DEFLATE compression.
func (a *archive) bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range a.names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", name, err)
		}
		if _, err := w.Write(a.parts[name]); err != nil {
			return nil, fmt.Errorf("write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize docx container: %w", err)
	}
	return buf.Bytes(), nil
}
