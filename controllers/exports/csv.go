package exports

import (
	"encoding/csv"
	"fmt"
	"io"

	"gridset-app/repositories"
)

// WriteCSV renders the report as CSV, mirroring the section layout of the
// other renderers.
func WriteCSV(w io.Writer, data *ReportData) error {
	writer := csv.NewWriter(w)

	writer.Write([]string{data.Title, data.generatedLine()})
	writer.Write([]string{})

	if data.Rows != nil {
		writer.Write([]string{"Item", "Count"})
		for _, row := range data.Rows {
			writer.Write([]string{row.Label, fmt.Sprintf("%d", row.Count)})
		}
		writer.Flush()
		return writer.Error()
	}

	writer.Write([]string{"Asset Summary"})
	for _, row := range data.summaryRows() {
		writer.Write(row)
	}
	writer.Write([]string{})

	writeSection := func(title, header string, rows []repositories.DistributionRow) {
		writer.Write([]string{title})
		writer.Write([]string{header, "Count"})
		for _, row := range rows {
			writer.Write([]string{row.Label, fmt.Sprintf("%d", row.Count)})
		}
		writer.Write([]string{})
	}

	writeSection("Category Distribution", "Category", data.Categories)
	writeSection("Status Distribution", "Status", data.Statuses)
	writeSection("Department Distribution", "Department", data.Departments)

	writer.Flush()
	return writer.Error()
}
