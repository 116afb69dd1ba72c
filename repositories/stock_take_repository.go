package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gridset-app/models"

	"gorm.io/gorm"
)

type StockTakeRepository struct {
	DB *gorm.DB
}

func NewStockTakeRepository(db *gorm.DB) *StockTakeRepository {
	return &StockTakeRepository{DB: db}
}

// generateCode produces the next stock take code, ST<yyyymmdd><seq>. The daily
// sequence restarts at 1 on the first session of each day.
func (r *StockTakeRepository) generateCode() (string, error) {
	var last models.StockTake
	if err := r.DB.Last(&last).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	today := time.Now().Format("20060102")
	seq := 1
	if last.Code != "" && len(last.Code) >= 14 && last.Code[2:10] == today {
		if n, err := strconv.Atoi(last.Code[len(last.Code)-4:]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("ST%s%04d", today, seq), nil
}

// Create opens a reconciliation session for the department, snapshotting every
// asset it currently owns into one item with an expected quantity of 1.
func (r *StockTakeRepository) Create(departmentID uint, notes string, createdBy int) (*models.StockTake, error) {
	var department models.Department
	if err := r.DB.First(&department, departmentID).Error; err != nil {
		return nil, err
	}

	var assets []models.Asset
	if err := r.DB.Where("department_id = ?", departmentID).Find(&assets).Error; err != nil {
		return nil, err
	}

	code, err := r.generateCode()
	if err != nil {
		return nil, err
	}

	stockTake := models.StockTake{
		Code:         code,
		DepartmentID: departmentID,
		Notes:        notes,
		Status:       models.StockTakeInProgress,
		CreatedBy:    createdBy,
	}

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&stockTake).Error; err != nil {
			return err
		}
		var items []models.StockTakeItem
		for _, asset := range assets {
			items = append(items, models.StockTakeItem{
				StockTakeID: stockTake.ID,
				AssetID:     asset.ID,
				ExpectedQty: 1,
			})
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stockTake, nil
}

// ItemCount is one submitted count for a stock take item.
type ItemCount struct {
	ItemID    uint   `json:"item_id"`
	ActualQty int    `json:"actual_qty"`
	Notes     string `json:"notes"`
}

// SubmitCounts records a batch of counts and re-derives the session status.
// The derivation is not monotonic: editing counts can move a session back out
// of completed or discrepancy.
func (r *StockTakeRepository) SubmitCounts(stockTakeID uint, counts []ItemCount) (*models.StockTake, error) {
	var stockTake models.StockTake
	if err := r.DB.First(&stockTake, stockTakeID).Error; err != nil {
		return nil, err
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for _, count := range counts {
			result := tx.Model(&models.StockTakeItem{}).
				Where("id = ? AND stock_take_id = ?", count.ItemID, stockTakeID).
				Updates(map[string]interface{}{
					"actual_qty": count.ActualQty,
					"counted":    true,
					"notes":      count.Notes,
				})
			if result.Error != nil {
				return result.Error
			}
		}

		var items []models.StockTakeItem
		if err := tx.Where("stock_take_id = ?", stockTakeID).Find(&items).Error; err != nil {
			return err
		}

		stockTake.Status = deriveStatus(items)
		return tx.Model(&stockTake).Update("status", stockTake.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return &stockTake, nil
}

// deriveStatus computes the session status from its items: any counted
// quantity mismatch wins, then fully counted means completed, anything else is
// still in progress.
func deriveStatus(items []models.StockTakeItem) string {
	for _, item := range items {
		if item.Counted && item.ActualQty != item.ExpectedQty {
			return models.StockTakeDiscrepancy
		}
	}
	for _, item := range items {
		if !item.Counted {
			return models.StockTakeInProgress
		}
	}
	return models.StockTakeCompleted
}

// GetByID loads a session with its items and their assets.
func (r *StockTakeRepository) GetByID(id uint) (*models.StockTake, error) {
	var stockTake models.StockTake
	err := r.DB.Preload("Department").
		Preload("Items").
		Preload("Items.Asset").
		First(&stockTake, id).Error
	if err != nil {
		return nil, err
	}
	return &stockTake, nil
}

// List returns all sessions, newest first.
func (r *StockTakeRepository) List() ([]models.StockTake, error) {
	var stockTakes []models.StockTake
	err := r.DB.Preload("Department").Order("created_at DESC").Find(&stockTakes).Error
	return stockTakes, err
}
