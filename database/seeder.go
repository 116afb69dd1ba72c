package database

import (
	"log"

	"gridset-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders creates the initial admin account and a starter set of
// departments when the tables are empty.
func RunSeeders(db *gorm.DB) {
	seedAdmin(db)
	seedDepartments(db)
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash seed password:", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@gridset.local",
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
	}
}

func seedDepartments(db *gorm.DB) {
	var count int64
	db.Model(&models.Department{}).Count(&count)
	if count > 0 {
		return
	}

	for _, name := range []string{"IT", "Finance", "Operations", "HR"} {
		if err := db.Create(&models.Department{Name: name}).Error; err != nil {
			log.Println("Failed to seed department:", err)
		}
	}
}
