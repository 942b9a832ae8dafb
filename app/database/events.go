package database

import (
	"database/sql"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// CreateEvent adds a new event to the database.
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `INSERT INTO events (title, description, start_time, end_time, location, organizer)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	return db.QueryRow(
		query,
		event.Title,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.Location,
		event.Organizer,
	).Scan(&event.ID)
}

// GetEvents retrieves all events ordered by start_time ascending.
func GetEvents(db *sql.DB) ([]models.Event, error) {
	query := `SELECT id, title, description, start_time, end_time, location, organizer
			  FROM events
			  ORDER BY start_time ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
			&e.Location, &e.Organizer,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func GetEventByID(db *sql.DB, id string) (*models.Event, error) {
	e := &models.Event{}
	query := `SELECT id, title, description, start_time, end_time, location, organizer
			  FROM events WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
		&e.Location, &e.Organizer,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GetUpcomingEvents returns events starting now or later, soonest first,
// capped at limit.
func GetUpcomingEvents(db *sql.DB, limit int) ([]models.Event, error) {
	query := `SELECT id, title, description, start_time, end_time, location, organizer
			  FROM events
			  WHERE start_time >= NOW()
			  ORDER BY start_time ASC
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
			&e.Location, &e.Organizer,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
