package models

import "gorm.io/gorm"

// Enrollment records a settled purchase; immutable once created
type Enrollment struct {
	gorm.Model
	UserEmail     string            `json:"user_email" gorm:"index;not null"`
	TransactionID string            `json:"transaction_id" gorm:"index;not null"`
	Classes       []EnrollmentClass `json:"classes" gorm:"foreignKey:EnrollmentID"`
}

// EnrollmentClass links an enrollment to one purchased class
type EnrollmentClass struct {
	ID           uint `json:"-" gorm:"primarykey"`
	EnrollmentID uint `json:"-" gorm:"index;not null"`
	ClassID      uint `json:"class_id" gorm:"index;not null"`
}
