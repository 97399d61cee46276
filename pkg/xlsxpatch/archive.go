package xlsxpatch

import (
	"archive/zip"
	"io"

	"github.com/beevik/etree"
)

// Archive helpers shared by the extraction and injection passes. All
// rewriting goes through an in-memory zip.Writer; source files are
// never modified in place.

func readZipEntry(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			return readFileBytes(f)
		}
	}
	return nil, nil
}

func readFileBytes(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseZipFile loads one archive entry as an XML document.
func parseZipFile(f *zip.File) (*etree.Document, error) {
	data, err := readFileBytes(f)
	if err != nil {
		return nil, NewPatchError(f.Name, "read", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, NewPatchError(f.Name, "parse", err)
	}
	return doc, nil
}

// writeZipEntry writes a named entry with the given compression method.
func writeZipEntry(zw *zip.Writer, name string, method uint16, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
	if err != nil {
		return NewPatchError(name, "write", err)
	}
	if _, err := w.Write(data); err != nil {
		return NewPatchError(name, "write", err)
	}
	return nil
}
