package controllers

import (
	"bytes"
	"time"

	"gridset-app/controllers/exports"
	"gridset-app/models"
	"gridset-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{DB: DB}
}

func parseReportFilter(ctx *fiber.Ctx) repositories.ReportFilter {
	filter := repositories.ReportFilter{
		Department: ctx.Query("department"),
		Category:   ctx.Query("category"),
		Status:     ctx.Query("status"),
	}
	if raw := ctx.Query("start_date"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			filter.StartDate = &parsed
		}
	}
	if raw := ctx.Query("end_date"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			// Inclusive end of day.
			end := parsed.Add(24*time.Hour - time.Second)
			filter.EndDate = &end
		}
	}
	return filter
}

// relabel swaps stored enum codes for their display labels.
func relabel(rows []repositories.DistributionRow, labels map[string]string) []repositories.DistributionRow {
	for i, row := range rows {
		if label, ok := labels[row.Label]; ok {
			rows[i].Label = label
		}
	}
	return rows
}

// GetReports returns the filtered aggregation consumed by the reports screen.
func (c *ReportController) GetReports(ctx *fiber.Ctx) error {
	filter := parseReportFilter(ctx)
	repo := repositories.NewReportRepository(c.DB)

	summary, err := repo.Summary(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	assets, err := repo.Assets(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	categories, err := repo.Distribution(filter, "category")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	statuses, err := repo.Distribution(filter, "status")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	departments, err := repo.Distribution(filter, "department")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"summary":                 summary,
			"assets":                  assets,
			"category_distribution":   relabel(categories, models.AssetCategories),
			"status_distribution":     relabel(statuses, models.AssetStatuses),
			"department_distribution": departments,
		},
	})
}

// DownloadReport streams the report in the requested format (csv, excel or
// pdf) and scope (all, category, status or department).
func (c *ReportController) DownloadReport(ctx *fiber.Ctx) error {
	filter := parseReportFilter(ctx)
	repo := repositories.NewReportRepository(c.DB)

	formatType := ctx.Query("format", "pdf")
	reportType := ctx.Query("type", "all")

	data := &exports.ReportData{GeneratedAt: time.Now()}

	switch reportType {
	case "category":
		rows, err := repo.Distribution(filter, "category")
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		data.Title = "Asset Distribution by Category"
		data.Rows = relabel(rows, models.AssetCategories)
	case "status":
		rows, err := repo.Distribution(filter, "status")
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		data.Title = "Asset Distribution by Status"
		data.Rows = relabel(rows, models.AssetStatuses)
	case "department":
		rows, err := repo.Distribution(filter, "department")
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		data.Title = "Asset Distribution by Department"
		data.Rows = rows
	default:
		data.Title = "Complete Asset Report"
		summary, err := repo.Summary(filter)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		data.Summary = summary

		if data.Categories, err = repo.Distribution(filter, "category"); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if data.Statuses, err = repo.Distribution(filter, "status"); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if data.Departments, err = repo.Distribution(filter, "department"); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		data.Categories = relabel(data.Categories, models.AssetCategories)
		data.Statuses = relabel(data.Statuses, models.AssetStatuses)
	}

	var buf bytes.Buffer
	switch formatType {
	case "csv":
		if err := exports.WriteCSV(&buf, data); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		ctx.Set("Content-Type", "text/csv")
		ctx.Set("Content-Disposition", `attachment; filename="`+exports.Filename(data.Title, "csv")+`"`)
	case "excel":
		if err := exports.WriteExcel(&buf, data); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Set("Content-Disposition", `attachment; filename="`+exports.Filename(data.Title, "xlsx")+`"`)
	default:
		if err := exports.WritePDF(&buf, data); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		ctx.Set("Content-Type", "application/pdf")
		ctx.Set("Content-Disposition", `attachment; filename="`+exports.Filename(data.Title, "pdf")+`"`)
	}

	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
