package xlsxpatch

import (
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// ColumnWidths computes a character width for every column of a sheet
// that contains at least one non-empty cell. The width of a column is
// the length of its widest display value, raised to minWidth when the
// widest value is shorter. Pass minWidth 0 for no floor.
func ColumnWidths(f *excelize.File, sheet string, minWidth int) (map[string]int, error) {
	cols, err := f.GetCols(sheet)
	if err != nil {
		return nil, err
	}

	widths := make(map[string]int)
	for i, col := range cols {
		widest := 0
		for _, value := range col {
			if value == "" {
				continue
			}
			if n := utf8.RuneCountInString(value); n > widest {
				widest = n
			}
		}
		if widest == 0 {
			// No non-blank cells in this column.
			continue
		}
		if widest < minWidth {
			widest = minWidth
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		widths[name] = widest
	}
	return widths, nil
}
