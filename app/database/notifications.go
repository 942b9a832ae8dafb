package database

import (
	"database/sql"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// CreateNotification appends a notification for a user.
func CreateNotification(db *sql.DB, n *models.Notification) error {
	query := `INSERT INTO notifications (user_id, message)
			  VALUES ($1, $2)
			  RETURNING id, is_read, created_at`
	return db.QueryRow(query, n.UserID, n.Message).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

// GetUserNotifications returns a user's notifications, newest first.
func GetUserNotifications(db *sql.DB, userID string) ([]models.Notification, error) {
	query := `SELECT id, user_id, message, is_read, created_at
			  FROM notifications
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead sets is_read on one of the user's notifications.
// Marking an already-read notification is a no-op.
func MarkNotificationRead(db *sql.DB, userID, notificationID string) error {
	query := `UPDATE notifications SET is_read = true
			  WHERE id = $1 AND user_id = $2`
	_, err := db.Exec(query, notificationID, userID)
	return err
}

// GetUnreadCount counts a user's unread notifications.
func GetUnreadCount(db *sql.DB, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	err := db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// PurgeReadNotifications deletes read notifications older than the given
// number of days. Used by the background scheduler.
func PurgeReadNotifications(db *sql.DB, olderThanDays int) (int64, error) {
	query := `DELETE FROM notifications
			  WHERE is_read = true
			  AND created_at < NOW() - ($1 * INTERVAL '1 day')`
	result, err := db.Exec(query, olderThanDays)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
