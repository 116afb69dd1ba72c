package models

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Name   string  `json:"name" gorm:"unique;not null"`
	Assets []Asset `json:"assets,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}
