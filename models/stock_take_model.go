package models

import "gorm.io/gorm"

const (
	StockTakeInProgress  = "in_progress"
	StockTakeCompleted   = "completed"
	StockTakeDiscrepancy = "discrepancy"
)

// StockTake is a reconciliation session over one department's assets. Status is
// re-derived from the items on every count submission and can oscillate while
// counts are edited.
type StockTake struct {
	gorm.Model
	Code         string          `json:"code" gorm:"unique"`
	DepartmentID uint            `json:"department_id" gorm:"not null;index"`
	Department   Department      `json:"department,omitempty"`
	Notes        string          `json:"notes"`
	Status       string          `json:"status" gorm:"size:20;default:'in_progress'"`
	CreatedBy    int             `json:"created_by"`
	Items        []StockTakeItem `json:"items" gorm:"foreignKey:StockTakeID;constraint:OnDelete:CASCADE"`
}

// StockTakeItem snapshots one asset present in the department when the session
// was created. Counted distinguishes an asset counted as missing (ActualQty 0)
// from one not yet counted.
type StockTakeItem struct {
	gorm.Model
	StockTakeID uint   `json:"stock_take_id" gorm:"index"`
	AssetID     uint   `json:"asset_id" gorm:"index"`
	Asset       Asset  `json:"asset,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	ExpectedQty int    `json:"expected_qty" gorm:"default:1"`
	ActualQty   int    `json:"actual_qty"`
	Counted     bool   `json:"counted"`
	Notes       string `json:"notes"`
}
