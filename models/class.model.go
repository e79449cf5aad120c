package models

import "gorm.io/gorm"

const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

// Class represents a purchasable course listing
type Class struct {
	gorm.Model
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
	InstructorName  string  `json:"instructor_name"`
	InstructorEmail string  `json:"instructor_email" gorm:"index;not null"`
	Price           float64 `json:"price" gorm:"default:0"`
	AvailableSeats  int     `json:"available_seats" gorm:"default:0"`
	TotalEnrolled   int     `json:"total_enrolled" gorm:"default:0"`
	Status          string  `json:"status" gorm:"default:'pending'"` // pending, approved, denied
	Reason          string  `json:"reason"`                          // set when denied
	VideoLink       string  `json:"video_link"`
	IsDeleted       bool    `gorm:"default:false"`
}

// ValidStatusTransition reports whether a listing may move between the two states.
// pending -> approved/denied, approved -> denied (revoke), denied -> approved (reinstate).
func ValidStatusTransition(from, to string) bool {
	switch from {
	case ClassPending:
		return to == ClassApproved || to == ClassDenied
	case ClassApproved:
		return to == ClassDenied
	case ClassDenied:
		return to == ClassApproved
	}
	return false
}
