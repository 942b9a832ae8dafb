package database

import (
	"database/sql"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// CreateMessage appends a message. Messages are never edited or deleted.
func CreateMessage(db *sql.DB, m *models.Message) error {
	query := `INSERT INTO messages (sender, recipient, content)
			  VALUES ($1, $2, $3)
			  RETURNING id, sent_at`
	return db.QueryRow(query, m.Sender, m.Recipient, m.Content).Scan(&m.ID, &m.Timestamp)
}

// GetConversation returns every message exchanged between the two users,
// regardless of direction, oldest first.
func GetConversation(db *sql.DB, user1, user2 string) ([]models.Message, error) {
	query := `SELECT id, sender, recipient, content, sent_at
			  FROM messages
			  WHERE (sender = $1 AND recipient = $2)
				 OR (sender = $2 AND recipient = $1)
			  ORDER BY sent_at ASC`

	rows, err := db.Query(query, user1, user2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Recipient, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetUserConversations returns the most recent message per counterpart for
// the inbox view, newest conversation first. The grouping is done by the
// database: each message touching the user is keyed by the other party and
// only the latest one per key survives.
func GetUserConversations(db *sql.DB, username string) ([]models.Message, error) {
	query := `SELECT id, sender, recipient, content, sent_at FROM (
				  SELECT DISTINCT ON (counterpart)
						 id, sender, recipient, content, sent_at,
						 CASE WHEN sender = $1 THEN recipient ELSE sender END AS counterpart
				  FROM messages
				  WHERE sender = $1 OR recipient = $1
				  ORDER BY counterpart, sent_at DESC
			  ) latest
			  ORDER BY sent_at DESC`

	rows, err := db.Query(query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Recipient, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
