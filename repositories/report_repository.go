package repositories

import (
	"time"

	"gridset-app/models"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ReportFilter narrows the report result set. All filters are independent and
// combined with AND; zero values are ignored.
type ReportFilter struct {
	Department string
	Category   string
	Status     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ReportSummary holds the scalar aggregates shown above every report.
type ReportSummary struct {
	TotalAssets     int64           `json:"total_assets"`
	TotalValue      decimal.Decimal `json:"total_value"`
	UtilizationRate float64         `json:"utilization_rate"`
	AvgResponseDays float64         `json:"avg_response_days"`
}

// DistributionRow is one equality group with its member count.
type DistributionRow struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) assetQuery(filter ReportFilter) *gorm.DB {
	query := r.DB.Model(&models.Asset{}).
		Joins("JOIN departments ON departments.id = assets.department_id")

	if filter.Department != "" {
		query = query.Where("departments.name = ?", filter.Department)
	}
	if filter.Category != "" {
		query = query.Where("assets.category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("assets.status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("assets.purchase_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("assets.purchase_date <= ?", filter.EndDate)
	}
	return query
}

func (r *ReportRepository) requestQuery(filter ReportFilter) *gorm.DB {
	query := r.DB.Model(&models.AssetRequest{}).
		Joins("JOIN assets ON assets.id = asset_requests.asset_id").
		Joins("JOIN departments ON departments.id = assets.department_id").
		Where("assets.deleted_at IS NULL")

	if filter.Department != "" {
		query = query.Where("departments.name = ?", filter.Department)
	}
	if filter.Category != "" {
		query = query.Where("assets.category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("assets.status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("asset_requests.request_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("asset_requests.request_date <= ?", filter.EndDate)
	}
	return query
}

// Summary computes the report scalars. Utilization is defined as 0 for an
// empty result set rather than a division error. Response time is averaged in
// Go because interval arithmetic differs per SQL driver.
func (r *ReportRepository) Summary(filter ReportFilter) (*ReportSummary, error) {
	summary := &ReportSummary{TotalValue: decimal.Zero}

	if err := r.assetQuery(filter).Count(&summary.TotalAssets).Error; err != nil {
		return nil, err
	}

	var totalValue decimal.NullDecimal
	if err := r.assetQuery(filter).
		Select("SUM(assets.purchase_cost)").
		Row().Scan(&totalValue); err == nil && totalValue.Valid {
		summary.TotalValue = totalValue.Decimal
	}

	if summary.TotalAssets > 0 {
		var inUse int64
		if err := r.assetQuery(filter).
			Where("assets.status = ?", models.AssetStatusInUse).
			Count(&inUse).Error; err != nil {
			return nil, err
		}
		summary.UtilizationRate = float64(inUse) / float64(summary.TotalAssets) * 100
	}

	var resolved []models.AssetRequest
	if err := r.requestQuery(filter).
		Where("asset_requests.status <> ?", models.RequestPending).
		Find(&resolved).Error; err != nil {
		return nil, err
	}
	if len(resolved) > 0 {
		var total time.Duration
		for _, request := range resolved {
			if request.ApprovalDate != nil {
				total += request.ApprovalDate.Sub(request.RequestDate)
			}
		}
		summary.AvgResponseDays = total.Hours() / 24 / float64(len(resolved))
	}

	return summary, nil
}

// Distribution groups the filtered assets by category, status or department
// and counts each group. Rows come back in label order so report output is
// stable across runs.
func (r *ReportRepository) Distribution(filter ReportFilter, groupBy string) ([]DistributionRow, error) {
	query := r.assetQuery(filter)

	switch groupBy {
	case "category":
		query = query.Select("assets.category AS label, COUNT(*) AS count").Group("assets.category")
	case "status":
		query = query.Select("assets.status AS label, COUNT(*) AS count").Group("assets.status")
	case "department":
		query = query.Select("departments.name AS label, COUNT(*) AS count").Group("departments.name")
	default:
		return nil, gorm.ErrInvalidField
	}

	var rows []DistributionRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	slices.SortFunc(rows, func(a, b DistributionRow) int {
		switch {
		case a.Label < b.Label:
			return -1
		case a.Label > b.Label:
			return 1
		}
		return 0
	})
	return rows, nil
}

// Assets returns the filtered asset rows for the detailed report listing.
func (r *ReportRepository) Assets(filter ReportFilter) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.assetQuery(filter).
		Preload("Department").
		Preload("AssignedTo").
		Order("assets.created_at DESC").
		Find(&assets).Error
	return assets, err
}
