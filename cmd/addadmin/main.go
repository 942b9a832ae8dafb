// Command addadmin creates an administrator account from the command line,
// used to bootstrap a fresh deployment.
package main

import (
	"flag"
	"log"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/config"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/database"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/routes/auth"
)

func main() {
	username := flag.String("username", "", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("Usage: addadmin -username <name> -email <email> -password <password>")
	}

	cfg := config.Load()
	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := database.CreateUser(db, user); err != nil {
		if err == database.ErrDuplicateEmail {
			log.Fatalf("A user with email %s already exists", *email)
		}
		log.Fatal("Failed to create admin user:", err)
	}

	log.Printf("Admin user %s created with id %s", user.Username, user.ID)
}
