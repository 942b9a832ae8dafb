package main

import (
	"log"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/config"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
)

func main() {
	log.Println("Running migrations...")

	cfg := config.Load()
	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migrations completed successfully")
}
