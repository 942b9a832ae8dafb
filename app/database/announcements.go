package database

import (
	"database/sql"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// CreateAnnouncement adds a new announcement.
func CreateAnnouncement(db *sql.DB, a *models.Announcement) error {
	query := `INSERT INTO announcements (title, content, author)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`
	return db.QueryRow(query, a.Title, a.Content, a.Author).Scan(&a.ID, &a.CreatedAt)
}

// GetAnnouncements returns all announcements, newest first.
func GetAnnouncements(db *sql.DB) ([]models.Announcement, error) {
	query := `SELECT id, title, content, author, created_at
			  FROM announcements
			  ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func GetAnnouncementByID(db *sql.DB, id string) (*models.Announcement, error) {
	a := &models.Announcement{}
	query := `SELECT id, title, content, author, created_at
			  FROM announcements WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SearchAnnouncements matches title or content case-insensitively.
func SearchAnnouncements(db *sql.DB, term string) ([]models.Announcement, error) {
	pattern := "%" + term + "%"
	query := `SELECT id, title, content, author, created_at
			  FROM announcements
			  WHERE title ILIKE $1 OR content ILIKE $1
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
