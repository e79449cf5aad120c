package services

import (
	"campus/gateway"
	"campus/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Settlement finalizes a purchase: seat counters, enrollment, cart cleanup and
// the payment ledger move together or not at all.
type Settlement struct {
	db *gorm.DB
	gw gateway.Client
}

func NewSettlement(db *gorm.DB, gw gateway.Client) *Settlement {
	return &Settlement{db: db, gw: gw}
}

type SettleInput struct {
	UserEmail     string
	ClassIDs      []uint
	TransactionID string
	Amount        float64
}

type SettleResult struct {
	Payment    models.Payment    `json:"payment"`
	Enrollment models.Enrollment `json:"enrollment"`
	Classes    []models.Class    `json:"classes"`
}

// Settle runs the checkout sequence as a single transaction.
// The intent is re-verified against the gateway first; inside the transaction
// each seat decrement is conditional on available_seats > 0, so two buyers of
// the last seat cannot both settle.
func (s *Settlement) Settle(in SettleInput) (*SettleResult, error) {
	if in.UserEmail == "" || in.TransactionID == "" || len(in.ClassIDs) == 0 {
		return nil, fmt.Errorf("%w: userEmail, transactionId and classIds are required", ErrValidation)
	}

	// A repeated id must not decrement twice
	seen := make(map[uint]bool, len(in.ClassIDs))
	classIDs := make([]uint, 0, len(in.ClassIDs))
	for _, id := range in.ClassIDs {
		if !seen[id] {
			seen[id] = true
			classIDs = append(classIDs, id)
		}
	}

	if s.gw != nil {
		intent, err := s.gw.VerifyIntent(in.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGateway, err)
		}
		if intent.Status != "succeeded" {
			return nil, fmt.Errorf("%w: intent %s has status %q", ErrGateway, in.TransactionID, intent.Status)
		}
	}

	result := &SettleResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A transaction id settles at most once
		var existing models.Payment
		err := tx.Where("transaction_id = ?", in.TransactionID).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: transaction %s already settled", ErrConflict, in.TransactionID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var classes []models.Class
		if err := tx.Where("id IN ? AND is_deleted = false", classIDs).Find(&classes).Error; err != nil {
			return err
		}
		if len(classes) != len(classIDs) {
			found := make(map[uint]bool, len(classes))
			for _, cl := range classes {
				found[cl.ID] = true
			}
			for _, id := range classIDs {
				if !found[id] {
					return fmt.Errorf("%w: class %d", ErrNotFound, id)
				}
			}
		}

		for _, cl := range classes {
			if cl.AvailableSeats <= 0 {
				return fmt.Errorf("%w: class %d is sold out", ErrCapacity, cl.ID)
			}
		}

		// Per-class decrement, guarded so a concurrent settlement cannot
		// push a counter below zero
		for _, id := range classIDs {
			res := tx.Model(&models.Class{}).
				Where("id = ? AND available_seats > 0", id).
				UpdateColumns(map[string]interface{}{
					"available_seats": gorm.Expr("available_seats - 1"),
					"total_enrolled":  gorm.Expr("total_enrolled + 1"),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: class %d is sold out", ErrCapacity, id)
			}
		}

		enrollment := models.Enrollment{
			UserEmail:     in.UserEmail,
			TransactionID: in.TransactionID,
		}
		for _, id := range classIDs {
			enrollment.Classes = append(enrollment.Classes, models.EnrollmentClass{ClassID: id})
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		// Only the purchased items leave the cart, scoped to this user
		if err := tx.Where("user_email = ? AND class_id IN ?", in.UserEmail, classIDs).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		payment := models.Payment{
			UserEmail:     in.UserEmail,
			TransactionID: in.TransactionID,
			Amount:        in.Amount,
			Date:          time.Now(),
		}
		for _, id := range classIDs {
			payment.Classes = append(payment.Classes, models.PaymentClass{ClassID: id})
		}
		if err := tx.Create(&payment).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
				return fmt.Errorf("%w: transaction %s already settled", ErrConflict, in.TransactionID)
			}
			return err
		}

		var updated []models.Class
		if err := tx.Where("id IN ?", classIDs).Find(&updated).Error; err != nil {
			return err
		}

		result.Payment = payment
		result.Enrollment = enrollment
		result.Classes = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
