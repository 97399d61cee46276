package xlsxpatch

import (
	"archive/zip"
	"bytes"
	"path"
	"sort"

	"github.com/beevik/etree"
)

// ChartFile is one entry of a ChartFileMap: either a whole file to
// restore verbatim (Raw) or a list of elements to merge into the
// entry's XML root (Elements). Method records the source entry's zip
// compression method.
type ChartFile struct {
	Method   uint16
	Raw      []byte
	Elements []*etree.Element
}

// ChartFileMap maps archive entry paths to the chart-related content
// captured from them.
type ChartFileMap map[string]ChartFile

// ChartPolicy decides which entries are captured wholesale and which
// content-type declarations count as chart content. The split between
// whole-file capture and fragment merge is deliberately configurable;
// an entry matched by WholeFileDirs is always treated as a whole file,
// even if a fragment rule would also apply.
type ChartPolicy struct {
	// WholeFileDirs lists archive directories whose entries are
	// captured and restored byte-for-byte.
	WholeFileDirs []string
	// FragmentContentTypes lists MIME types whose Override elements in
	// the content-types manifest are carried as fragments.
	FragmentContentTypes []string
}

// DefaultChartPolicy returns the policy matching the standard xlsx
// layout: chart, drawing, and worksheet-relationship parts wholesale;
// content-type overrides and worksheet drawing references as
// fragments.
func DefaultChartPolicy() ChartPolicy {
	return ChartPolicy{
		WholeFileDirs: []string{
			"xl/charts",
			"xl/charts/_rels",
			"xl/drawings",
			"xl/drawings/_rels",
			"xl/worksheets/_rels",
		},
		FragmentContentTypes: []string{
			DrawingContentType,
			ChartContentType,
		},
	}
}

func (p ChartPolicy) wholeFile(name string) bool {
	dir := path.Dir(name)
	for _, d := range p.WholeFileDirs {
		if dir == d {
			return true
		}
	}
	return false
}

func (p ChartPolicy) fragmentContentType(contentType string) bool {
	for _, ct := range p.FragmentContentTypes {
		if contentType == ct {
			return true
		}
	}
	return false
}

// ExtractChartFiles captures the chart-related content of an xlsx file
// under the default policy.
//
// Whole chart, drawing, and relationship files are captured raw. The
// content-types manifest contributes its drawing/chart Override
// elements and each worksheet contributes its drawing reference, both
// recorded as fragments under the owning entry's path. Restore the
// result into a rewritten workbook with InjectChartFiles.
func ExtractChartFiles(xlsxPath string) (ChartFileMap, error) {
	return ExtractChartFilesWithPolicy(xlsxPath, DefaultChartPolicy())
}

// ExtractChartFilesWithPolicy captures chart-related content using a
// caller-supplied classification policy.
func ExtractChartFilesWithPolicy(xlsxPath string, policy ChartPolicy) (ChartFileMap, error) {
	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	files := make(ChartFileMap)
	for _, f := range zr.File {
		switch {
		case policy.wholeFile(f.Name):
			data, err := readFileBytes(f)
			if err != nil {
				return nil, NewPatchError(f.Name, "read", err)
			}
			files[f.Name] = ChartFile{Method: f.Method, Raw: data}
		case f.Name == contentTypesPath:
			doc, err := parseZipFile(f)
			if err != nil {
				return nil, err
			}
			var overrides []*etree.Element
			if root := doc.Root(); root != nil {
				for _, override := range root.SelectElements("Override") {
					if policy.fragmentContentType(override.SelectAttrValue("ContentType", "")) {
						overrides = append(overrides, override.Copy())
					}
				}
			}
			if len(overrides) > 0 {
				files[f.Name] = ChartFile{Method: f.Method, Elements: overrides}
			}
		case path.Dir(f.Name) == worksheetsDir:
			doc, err := parseZipFile(f)
			if err != nil {
				return nil, err
			}
			root := doc.Root()
			if root == nil || root.Tag != "worksheet" {
				continue
			}
			if drawing := root.SelectElement("drawing"); drawing != nil {
				files[f.Name] = ChartFile{Method: f.Method, Elements: []*etree.Element{drawing.Copy()}}
			}
		}
	}
	return files, nil
}

// InjectChartFiles rewrites an xlsx file with the captured chart
// content restored and returns the archive bytes.
//
// Raw entries are written from the map, superseding any same-named
// source entry and recreating entries the rewrite stripped. Fragment
// entries are re-parsed from the archive being patched with each
// mapped element appended to the root. All other entries are copied
// verbatim. Fragment keys naming entries absent from the archive are
// ignored.
func InjectChartFiles(xlsxPath string, files ChartFileMap) ([]byte, error) {
	zr, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	written := make(map[string]bool)
	for _, f := range zr.File {
		written[f.Name] = true
		cf, ok := files[f.Name]
		if !ok {
			if err := zw.Copy(f); err != nil {
				return nil, NewPatchError(f.Name, "write", err)
			}
			continue
		}
		if cf.Raw != nil {
			// Restored from the map, not copied from source.
			if err := writeZipEntry(zw, f.Name, cf.Method, cf.Raw); err != nil {
				return nil, err
			}
			continue
		}
		doc, err := parseZipFile(f)
		if err != nil {
			return nil, err
		}
		root := doc.Root()
		if root == nil {
			return nil, NewPatchError(f.Name, "parse", ErrMissingRoot)
		}
		for _, el := range cf.Elements {
			root.AddChild(el.Copy())
		}
		data, err := doc.WriteToBytes()
		if err != nil {
			return nil, NewPatchError(f.Name, "serialize", err)
		}
		if err := writeZipEntry(zw, f.Name, f.Method, data); err != nil {
			return nil, err
		}
	}

	// Entries the rewrite stripped entirely come back from the map.
	var restored []string
	for name, cf := range files {
		if !written[name] && cf.Raw != nil {
			restored = append(restored, name)
		}
	}
	sort.Strings(restored)
	for _, name := range restored {
		if err := writeZipEntry(zw, name, files[name].Method, files[name].Raw); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
