package xlsxpatch

import (
	"archive/zip"
	"bytes"
	"path"

	"github.com/beevik/etree"
)

// FragmentMap maps a worksheet's archive path to one extracted XML
// element, or nil when the worksheet has no such element.
type FragmentMap map[string]*etree.Element

// extractWorksheetFragments walks every worksheet entry of an archive
// and records the named child of its worksheet root, nil if absent.
func extractWorksheetFragments(xlsxPath, childTag string) (FragmentMap, error) {
	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	fragments := make(FragmentMap)
	for _, f := range zr.File {
		if path.Dir(f.Name) != worksheetsDir {
			continue
		}
		doc, err := parseZipFile(f)
		if err != nil {
			return nil, err
		}
		root := doc.Root()
		if root == nil || root.Tag != "worksheet" {
			fragments[f.Name] = nil
			continue
		}
		fragments[f.Name] = root.SelectElement(childTag)
	}
	return fragments, nil
}

// injectWorksheetFragments rewrites an archive into an in-memory
// buffer. Entries without a mapped fragment are copied verbatim;
// mapped entries are parsed, spliced, and re-serialized under the
// source entry's compression method. Map keys naming entries absent
// from the archive are ignored.
func injectWorksheetFragments(xlsxPath string, fragments FragmentMap, splice func(root, fragment *etree.Element)) ([]byte, error) {
	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		fragment, ok := fragments[f.Name]
		if !ok || fragment == nil {
			if err := zw.Copy(f); err != nil {
				return nil, NewPatchError(f.Name, "write", err)
			}
			continue
		}
		doc, err := parseZipFile(f)
		if err != nil {
			return nil, err
		}
		root := doc.Root()
		if root == nil || root.Tag != "worksheet" {
			return nil, NewPatchError(f.Name, "parse", ErrNotWorksheet)
		}
		// Splice a copy so the caller's map survives injection.
		splice(root, fragment.Copy())
		data, err := doc.WriteToBytes()
		if err != nil {
			return nil, NewPatchError(f.Name, "serialize", err)
		}
		if err := writeZipEntry(zw, f.Name, f.Method, data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
