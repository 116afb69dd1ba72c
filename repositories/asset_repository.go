package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gridset-app/config"
	"gridset-app/models"

	"gorm.io/gorm"
)

// maxNumberAttempts bounds the retry loop when two writers race for the same
// asset number.
const maxNumberAttempts = 10

type AssetRepository struct {
	DB *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{DB: db}
}

// nextSequence finds the last asset number in the (department, category)
// partition and returns the next counter value. The "last" number is picked by
// lexicographic order on the full asset_no string, which is only correct while
// the counter stays within its zero-padded 4-digit width; past 9999 the sort
// order breaks down.
func (r *AssetRepository) nextSequence(departmentID uint, category string) (int, error) {
	var last models.Asset
	err := r.DB.
		Where("department_id = ? AND category = ?", departmentID, category).
		Order("asset_no DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, err
	}

	// Extract the trailing counter segment; anything unparsable restarts at 1.
	parts := strings.Split(last.AssetNo, "-")
	n, convErr := strconv.Atoi(parts[len(parts)-1])
	if convErr != nil {
		return 1, nil
	}
	return n + 1, nil
}

func formatAssetNo(departmentName, category string, seq int) string {
	return fmt.Sprintf("%s-%s-%s-%04d", departmentName, category, config.OrgTag, seq)
}

// NextAssetNumber returns the asset number the next asset in the department and
// category would receive. Both attributes are required.
func (r *AssetRepository) NextAssetNumber(department *models.Department, category string) (string, error) {
	if department == nil || department.Name == "" || category == "" {
		return "", ErrMissingAttribute
	}
	seq, err := r.nextSequence(department.ID, category)
	if err != nil {
		return "", err
	}
	return formatAssetNo(department.Name, category, seq), nil
}

// CreateWithNumber assigns a unique asset number to the asset and persists it.
// A uniqueness violation on asset_no means a concurrent writer took the
// candidate; the counter is bumped and the insert retried up to
// maxNumberAttempts before giving up with ErrNumberExhausted.
func (r *AssetRepository) CreateWithNumber(asset *models.Asset) error {
	if asset.DepartmentID == 0 || asset.Category == "" {
		return ErrMissingAttribute
	}

	var department models.Department
	if err := r.DB.First(&department, asset.DepartmentID).Error; err != nil {
		return err
	}

	seq, err := r.nextSequence(asset.DepartmentID, asset.Category)
	if err != nil {
		return err
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		asset.AssetNo = formatAssetNo(department.Name, asset.Category, seq)
		err := r.DB.Create(asset).Error
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		asset.ID = 0
		seq++
	}

	return ErrNumberExhausted
}

// BackfillNumbers assigns asset numbers to assets created without one. Returns
// the number of assets updated.
func (r *AssetRepository) BackfillNumbers() (int, error) {
	var assets []models.Asset
	if err := r.DB.Preload("Department").
		Where("asset_no IS NULL OR asset_no = ''").
		Find(&assets).Error; err != nil {
		return 0, err
	}

	count := 0
	for i := range assets {
		asset := &assets[i]
		if asset.DepartmentID == 0 || asset.Category == "" {
			continue
		}
		seq, err := r.nextSequence(asset.DepartmentID, asset.Category)
		if err != nil {
			return count, err
		}
		asset.AssetNo = formatAssetNo(asset.Department.Name, asset.Category, seq)
		if err := r.DB.Model(asset).Update("asset_no", asset.AssetNo).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// AssetFilter narrows asset listings; zero values mean no filtering.
type AssetFilter struct {
	Query      string
	Category   string
	Status     string
	Department string
}

// List returns assets matching the filter, newest first.
func (r *AssetRepository) List(filter AssetFilter) ([]models.Asset, error) {
	query := r.DB.Model(&models.Asset{}).
		Joins("JOIN departments ON departments.id = assets.department_id").
		Preload("Department").
		Preload("AssignedTo").
		Order("assets.created_at DESC")

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where(
			"assets.asset_no LIKE ? OR assets.serial_no LIKE ? OR assets.description LIKE ? OR assets.category LIKE ? OR departments.name LIKE ? OR assets.status LIKE ?",
			like, like, like, like, like, like,
		)
	}
	if filter.Category != "" {
		query = query.Where("assets.category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("assets.status = ?", filter.Status)
	}
	if filter.Department != "" {
		query = query.Where("departments.name = ?", filter.Department)
	}

	var assets []models.Asset
	err := query.Find(&assets).Error
	return assets, err
}
