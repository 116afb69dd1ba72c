package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AssetStatusAvailable   = "available"
	AssetStatusInUse       = "in_use"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRetired     = "retired"
)

const (
	CategoryFurniture      = "furniture"
	CategoryTechnology     = "technology"
	CategoryVehicles       = "vehicles"
	CategoryOfficeSupplies = "office_supplies"
	CategoryMachinery      = "machinery"
)

// AssetStatuses maps status codes to display labels.
var AssetStatuses = map[string]string{
	AssetStatusAvailable:   "Available",
	AssetStatusInUse:       "In Use",
	AssetStatusMaintenance: "Under Maintenance",
	AssetStatusRetired:     "Retired",
}

// AssetCategories maps category codes to display labels.
var AssetCategories = map[string]string{
	CategoryFurniture:      "Furniture",
	CategoryTechnology:     "Technology",
	CategoryVehicles:       "Vehicles",
	CategoryOfficeSupplies: "Office Supplies",
	CategoryMachinery:      "Machinery / Equipment",
}

type Asset struct {
	gorm.Model
	AssetNo      string          `json:"asset_no" gorm:"uniqueIndex;size:50"`
	SerialNo     string          `json:"serial_no"`
	PurchaseDate *time.Time      `json:"purchase_date"`
	PurchaseCost decimal.Decimal `json:"purchase_cost" gorm:"type:decimal(12,2)"`
	Condition    string          `json:"condition"`
	// Depreciation rate in %
	Depreciation decimal.Decimal `json:"depreciation" gorm:"type:decimal(5,2)"`
	Supplier     string          `json:"supplier"`
	Warranty     string          `json:"warranty"`
	Description  string          `json:"description"`
	Category     string          `json:"category" gorm:"size:50;index"`
	DepartmentID uint            `json:"department_id" gorm:"not null;index"`
	Department   Department      `json:"department,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Status       string          `json:"status" gorm:"size:20;default:'available';index"`
	AssignedToID *uint           `json:"assigned_to_id"`
	AssignedTo   *User           `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
	Image        string          `json:"image"`

	Requests []AssetRequest `json:"requests,omitempty" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

func ValidCategory(category string) bool {
	_, ok := AssetCategories[category]
	return ok
}

func ValidAssetStatus(status string) bool {
	_, ok := AssetStatuses[status]
	return ok
}
