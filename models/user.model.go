package models

import (
	"gorm.io/gorm"
)

const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	gorm.Model
	Name      string `json:"name" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"`
	Role      string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Password  string `json:"-" gorm:"not null"`
	Photo     string `json:"photo" gorm:"default:''"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	About     string `json:"about"`
	IsDeleted bool   `gorm:"default:false"`
}
