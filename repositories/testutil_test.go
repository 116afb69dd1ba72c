package repositories

import (
	"fmt"
	"testing"

	"gridset-app/config"
	"gridset-app/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Asset{},
		&models.AssetRequest{},
		&models.StockTake{},
		&models.StockTakeItem{},
	))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedDepartment(t *testing.T, db *gorm.DB, name string) models.Department {
	t.Helper()
	department := models.Department{Name: name}
	require.NoError(t, db.Create(&department).Error)
	return department
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Name:     username,
		Email:    username + "@gridset.local",
		Role:     models.RoleStaff,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedAsset(t *testing.T, db *gorm.DB, departmentID uint, category, assetNo string) models.Asset {
	t.Helper()
	asset := models.Asset{
		AssetNo:      assetNo,
		Category:     category,
		DepartmentID: departmentID,
		Status:       models.AssetStatusAvailable,
	}
	require.NoError(t, db.Create(&asset).Error)
	return asset
}
