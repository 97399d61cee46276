package xlsxpatch

import "github.com/beevik/etree"

const extensionListTag = "extLst"

// ExtractExtensionLists loads the extension list of every worksheet in
// an xlsx file.
//
// Extension lists hold, e.g., worksheet data validation settings that
// some spreadsheet libraries cannot read and silently drop on save.
// Capture them before the rewrite and restore them afterwards with
// InjectExtensionLists. Worksheets without an extension list map to
// nil.
func ExtractExtensionLists(xlsxPath string) (FragmentMap, error) {
	return extractWorksheetFragments(xlsxPath, extensionListTag)
}

// InjectExtensionLists rewrites an xlsx file with the mapped extension
// lists appended to their worksheets and returns the archive bytes.
//
// The fragment is appended without checking for an existing extLst
// element: injecting into a worksheet that already has one produces
// two siblings, so callers must inject into a rewrite that dropped it.
func InjectExtensionLists(xlsxPath string, extensionLists FragmentMap) ([]byte, error) {
	return injectWorksheetFragments(xlsxPath, extensionLists, func(root, fragment *etree.Element) {
		root.AddChild(fragment)
	})
}
