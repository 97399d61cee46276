package xlsxpatch

import (
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// definedNameDest is one (sheet, name, range) destination of a defined
// name.
type definedNameDest struct {
	sheet     string
	name      string
	cellRange string
}

// DefinedNamesByWorksheet flattens a workbook's defined-name table into
// a mapping from worksheet name to the defined names anchored there:
//
//	{"Foo sheet": {"Some foo range": "$D$11:$D$20", "Some foo cell": "$B$6"},
//	 "Bar sheet": {"Some bar cell": "$K$2"}}
//
// A defined name referring to several areas contributes one entry per
// area. If the same (sheet, name) pair occurs twice, the destination
// sorting last wins.
func DefinedNamesByWorksheet(f *excelize.File) map[string]map[string]string {
	var dests []definedNameDest
	for _, dn := range f.GetDefinedName() {
		for _, area := range strings.Split(dn.RefersTo, ",") {
			sheet, cellRange := splitAreaRef(area)
			if sheet == "" {
				continue
			}
			dests = append(dests, definedNameDest{sheet: sheet, name: dn.Name, cellRange: cellRange})
		}
	}

	// Sort so destinations group by sheet and later duplicates
	// overwrite earlier ones deterministically.
	sort.Slice(dests, func(i, j int) bool {
		if dests[i].sheet != dests[j].sheet {
			return dests[i].sheet < dests[j].sheet
		}
		if dests[i].name != dests[j].name {
			return dests[i].name < dests[j].name
		}
		return dests[i].cellRange < dests[j].cellRange
	})

	result := make(map[string]map[string]string)
	for _, d := range dests {
		names, ok := result[d.sheet]
		if !ok {
			names = make(map[string]string)
			result[d.sheet] = names
		}
		names[d.name] = d.cellRange
	}
	return result
}

// splitAreaRef splits a reference like "'My Sheet'!$A$1:$B$2" into the
// unquoted sheet name and the range. The sheet name is empty when the
// reference has no sheet qualifier.
func splitAreaRef(ref string) (sheet, cellRange string) {
	ref = strings.TrimSpace(ref)
	i := strings.LastIndex(ref, "!")
	if i < 0 {
		return "", ref
	}
	sheet = ref[:i]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, ref[i+1:]
}
