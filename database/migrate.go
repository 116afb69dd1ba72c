package database

import (
	"gridset-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Asset{},
		&models.AssetRequest{},
		&models.StockTake{},
		&models.StockTakeItem{},
	)
}
