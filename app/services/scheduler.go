package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
)

const purgeReadAfterDays = 30

// StartScheduler starts the background maintenance ticker. Read
// notifications older than thirty days are purged once per day.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()
			if now.Hour() != 3 {
				continue
			}

			log.Println("Running scheduled maintenance [03:00]...")
			n, err := database.PurgeReadNotifications(db, purgeReadAfterDays)
			if err != nil {
				log.Printf("Error purging old notifications: %v", err)
			} else if n > 0 {
				log.Printf("Purged %d read notifications", n)
			}
		}
	}()
}
