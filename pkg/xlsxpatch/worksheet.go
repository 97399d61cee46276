package xlsxpatch

import (
	"archive/zip"
	"strings"

	"github.com/beevik/etree"
)

// WorksheetRoot reads one named entry of an xlsx archive and returns
// its parsed XML root element. A leading "/" on the entry name is
// stripped. Intended for inspection and debugging; no fragment logic.
func WorksheetRoot(xlsxPath, entryName string) (*etree.Element, error) {
	name := strings.TrimPrefix(entryName, "/")
	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	data, err := readZipEntry(&zr.Reader, name)
	if err != nil {
		return nil, NewPatchError(name, "read", err)
	}
	if data == nil {
		return nil, NewPatchError(name, "read", ErrEntryNotFound)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, NewPatchError(name, "parse", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, NewPatchError(name, "parse", ErrMissingRoot)
	}
	return root, nil
}
