package models

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Role     string `json:"role" gorm:"default:'staff'"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
