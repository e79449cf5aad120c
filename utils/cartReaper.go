package utils

import (
	"campus/config"
	"campus/database"
	"campus/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// reapStaleCartItems removes cart entries older than the configured TTL
func reapStaleCartItems() {
	if config.AppConfig.CartTTLHours <= 0 {
		return
	}
	ttl := time.Duration(config.AppConfig.CartTTLHours) * time.Hour
	cutoff := time.Now().Add(-ttl)

	res := database.Database.Db.
		Where("created_at < ?", cutoff).
		Delete(&models.CartItem{})
	if res.Error != nil {
		log.Printf("Cart reaper failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Cart reaper removed %d stale items", res.RowsAffected)
	}
}

// InitializeCartReaper starts the hourly cart cleanup job. Cart items
// normally leave the cart only through settlement or their owner; expiring
// abandoned entries is an opt-in via CART_TTL_HOURS > 0.
func InitializeCartReaper() *cron.Cron {
	if config.AppConfig.CartTTLHours <= 0 {
		return nil
	}

	c := cron.New()

	c.AddFunc("@hourly", func() {
		reapStaleCartItems()
	})

	c.Start()
	log.Println("Cart reaper scheduler started - runs hourly")
	return c
}
