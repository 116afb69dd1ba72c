package exports

import (
	"fmt"
	"io"

	"gridset-app/repositories"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders the report as a PDF document.
func WritePDF(w io.Writer, data *ReportData) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 12, "GridSet", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 200, 83)
	pdf.CellFormat(0, 10, data.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 8, data.generatedLine(), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeTable := func(header string, rows []repositories.DistributionRow) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(0, 200, 83)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(140, 9, header, "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 9, "Count", "1", 1, "C", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(44, 62, 80)
		fill := false
		for _, row := range rows {
			if fill {
				pdf.SetFillColor(232, 245, 233)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}
			pdf.CellFormat(140, 8, row.Label, "1", 0, "L", true, 0, "")
			pdf.CellFormat(35, 8, fmt.Sprintf("%d", row.Count), "1", 1, "C", true, 0, "")
			fill = !fill
		}
		pdf.Ln(6)
	}

	if data.Rows != nil {
		writeTable("Item", data.Rows)
		return pdf.Output(w)
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 200, 83)
	pdf.CellFormat(0, 10, "Asset Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(44, 62, 80)
	for _, row := range data.summaryRows() {
		pdf.CellFormat(105, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	sectionTitle := func(title string) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(0, 200, 83)
		pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	}

	sectionTitle("Category Distribution")
	writeTable("Category", data.Categories)
	sectionTitle("Status Distribution")
	writeTable("Status", data.Statuses)
	sectionTitle("Department Distribution")
	writeTable("Department", data.Departments)

	return pdf.Output(w)
}
