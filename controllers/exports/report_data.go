// Package exports renders report aggregation results into the downloadable
// formats (CSV, Excel, PDF). It consumes rows and summary scalars only; all
// querying happens upstream.
package exports

import (
	"fmt"
	"strings"
	"time"

	"gridset-app/repositories"
)

type ReportData struct {
	Title       string
	GeneratedAt time.Time

	// Rows is set for the single-distribution reports (by category, status or
	// department). When nil the complete report layout is used instead.
	Rows []repositories.DistributionRow

	Summary     *repositories.ReportSummary
	Categories  []repositories.DistributionRow
	Statuses    []repositories.DistributionRow
	Departments []repositories.DistributionRow
}

// Filename derives the attachment name from the report title.
func Filename(title, ext string) string {
	return strings.ToLower(strings.ReplaceAll(title, " ", "_")) + "." + ext
}

func (d *ReportData) generatedLine() string {
	return "Generated on: " + d.GeneratedAt.Format("January 02, 2006")
}

func (d *ReportData) summaryRows() [][]string {
	if d.Summary == nil {
		return nil
	}
	return [][]string{
		{"Total Assets", fmt.Sprintf("%d", d.Summary.TotalAssets)},
		{"Total Value", d.Summary.TotalValue.StringFixed(2)},
		{"Utilization Rate", fmt.Sprintf("%.1f%%", d.Summary.UtilizationRate)},
		{"Avg Response Days", fmt.Sprintf("%.1f", d.Summary.AvgResponseDays)},
	}
}
