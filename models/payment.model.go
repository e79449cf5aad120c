package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is the append-only ledger of settled purchases
type Payment struct {
	gorm.Model
	UserEmail     string         `json:"user_email" gorm:"index;not null"`
	TransactionID string         `json:"transaction_id" gorm:"uniqueIndex;not null"`
	Amount        float64        `json:"amount" gorm:"not null"`
	Date          time.Time      `json:"date"`
	Classes       []PaymentClass `json:"classes" gorm:"foreignKey:PaymentID"`
}

// PaymentClass links a payment to one of the classes it covered
type PaymentClass struct {
	ID        uint `json:"-" gorm:"primarykey"`
	PaymentID uint `json:"-" gorm:"index;not null"`
	ClassID   uint `json:"class_id" gorm:"index;not null"`
}
