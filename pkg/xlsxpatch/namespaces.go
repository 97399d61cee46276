// Package xlsxpatch extracts XML fragments and chart files from xlsx
// archives and splices them back into archives rewritten by a
// spreadsheet library, restoring the parts such libraries drop on save.
package xlsxpatch

// Namespace URIs fixed by the Office Open XML spreadsheet schema.
const (
	// SheetMainNS is the spreadsheet main namespace (worksheet, extLst,
	// dataValidations, drawing elements).
	SheetMainNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	// RelNS is the office document relationships namespace.
	RelNS = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	// PkgRelNS is the package relationships namespace.
	PkgRelNS = "http://schemas.openxmlformats.org/package/2006/relationships"
	// ContentTypesNS is the [Content_Types].xml namespace.
	ContentTypesNS = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// MIME types declared for drawing and chart parts in the content-types
// manifest.
const (
	DrawingContentType = "application/vnd.openxmlformats-officedocument.drawing+xml"
	ChartContentType   = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
)

// Namespaces maps short aliases to the schema namespace URIs above.
var Namespaces = map[string]string{
	"main":   SheetMainNS,
	"r":      RelNS,
	"pkgRel": PkgRelNS,
	"ct":     ContentTypesNS,
}

// Archive paths fixed by the xlsx package layout.
const (
	worksheetsDir    = "xl/worksheets"
	contentTypesPath = "[Content_Types].xml"
)
