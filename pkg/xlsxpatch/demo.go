package xlsxpatch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/xuri/excelize/v2"
)

const (
	demoSeriesCount = 3
	demoRowCount    = 24
	demoChartSheet  = "Charts"
)

// BuildDemoWorkbook builds a sample workbook: several data worksheets
// holding generated numeric series and a chart worksheet with a
// scatter chart whose series reference the data worksheets' time and
// value columns. Illustrative only; the caller decides where to save
// it.
func BuildDemoWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	rng := rand.New(rand.NewSource(1))

	var series []excelize.ChartSeries
	for i := 0; i < demoSeriesCount; i++ {
		sheet := fmt.Sprintf("Data %d", i+1)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "A1", "time"); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "B1", "value"); err != nil {
			return nil, err
		}
		for row, value := range demoSeries(rng, demoRowCount, float64(100*(i+1))) {
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), row); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), value); err != nil {
				return nil, err
			}
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, demoRowCount+1),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, demoRowCount+1),
		})
	}

	if _, err := f.NewSheet(demoChartSheet); err != nil {
		return nil, err
	}
	chart := excelize.Chart{
		Type:   excelize.Scatter,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: "Generated series"}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "time"}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "value"}}},
	}
	if err := f.AddChart(demoChartSheet, "B2", &chart); err != nil {
		return nil, err
	}
	return f, nil
}

// demoSeries generates n values around base with seasonal variation
// and random noise.
func demoSeries(rng *rand.Rand, n int, base float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		seasonal := 1 + 0.15*math.Sin(float64(i)*math.Pi/6)
		noise := 1 + (rng.Float64()-0.5)*0.2
		values[i] = base * seasonal * noise
	}
	return values
}
