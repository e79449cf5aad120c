package models

import "gorm.io/gorm"

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationDenied   = "denied"
)

// InstructorApplication is a user's request to become an instructor.
// At most one pending application may exist per email.
type InstructorApplication struct {
	gorm.Model
	ApplicantEmail string `json:"applicant_email" gorm:"index;not null"`
	Name           string `json:"name"`
	Experience     string `json:"experience"`
	Status         string `json:"status" gorm:"default:'pending'"` // pending, approved, denied
	IsDeleted      bool   `gorm:"default:false"`
}
