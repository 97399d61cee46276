package xlsxpatch

import "github.com/beevik/etree"

const dataValidationsTag = "dataValidations"

// ExtractDataValidations loads the dataValidations element of every
// worksheet in an xlsx file. Worksheets without one map to nil.
func ExtractDataValidations(xlsxPath string) (FragmentMap, error) {
	return extractWorksheetFragments(xlsxPath, dataValidationsTag)
}

// InjectDataValidations rewrites an xlsx file with the mapped
// dataValidations elements spliced into their worksheets and returns
// the archive bytes.
//
// Unlike InjectExtensionLists this is idempotent: a worksheet that
// already has a dataValidations element gets it replaced in place
// rather than gaining a duplicate.
func InjectDataValidations(xlsxPath string, validations FragmentMap) ([]byte, error) {
	return injectWorksheetFragments(xlsxPath, validations, func(root, fragment *etree.Element) {
		if old := root.SelectElement(dataValidationsTag); old != nil {
			index := old.Index()
			root.InsertChildAt(index, fragment)
			root.RemoveChild(old)
			return
		}
		root.AddChild(fragment)
	})
}
