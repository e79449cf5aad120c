package models

import "gorm.io/gorm"

// CartItem is an ephemeral "wants to buy" row, removed on purchase or explicit removal
type CartItem struct {
	gorm.Model
	UserEmail string `json:"user_email" gorm:"index;not null"`
	ClassID   uint   `json:"class_id" gorm:"index;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
