package exports

import (
	"fmt"
	"io"

	"gridset-app/repositories"

	"github.com/xuri/excelize/v2"
)

// WriteExcel renders the report as an .xlsx workbook.
func WriteExcel(w io.Writer, data *ReportData) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: &excelize.Fill{Type: "pattern", Color: []string{"4CAF50"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", data.Title)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", data.generatedLine())

	row := 4
	writeHeader := func(a, b string) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), a)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
		row++
	}
	writeRows := func(rows []repositories.DistributionRow) {
		for _, r := range rows {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Label)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Count)
			row++
		}
		row++
	}

	if data.Rows != nil {
		writeHeader("Item", "Count")
		writeRows(data.Rows)
		return f.Write(w)
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Asset Summary")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), titleStyle)
	row++
	for _, r := range data.summaryRows() {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r[1])
		row++
	}
	row++

	writeHeader("Category", "Count")
	writeRows(data.Categories)
	writeHeader("Status", "Count")
	writeRows(data.Statuses)
	writeHeader("Department", "Count")
	writeRows(data.Departments)

	return f.Write(w)
}
