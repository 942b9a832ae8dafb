package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// ErrDuplicateEmail is returned when an insert hits the unique constraint
// on users.email.
var ErrDuplicateEmail = errors.New("email already registered")

// CreateUser inserts a new user. Email uniqueness is enforced by the
// database, not by a read-then-write check.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, email, password_hash, reg_number, department, year, is_admin)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at`

	err := db.QueryRow(query,
		user.Username, user.Email, user.PasswordHash,
		user.RegNumber, user.Department, user.Year, user.IsAdmin,
	).Scan(&user.ID, &user.CreatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
		return ErrDuplicateEmail
	}
	return err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password_hash, reg_number, department, year, is_admin, created_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.RegNumber, &user.Department, &user.Year, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password_hash, reg_number, department, year, is_admin, created_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.RegNumber, &user.Department, &user.Year, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password_hash, reg_number, department, year, is_admin, created_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.RegNumber, &user.Department, &user.Year, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers returns every registered user ordered by username.
func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, username, email, reg_number, department, year, is_admin, created_at
			  FROM users ORDER BY username`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.RegNumber,
			&user.Department, &user.Year, &user.IsAdmin, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, rows.Err()
}

// ToggleAdmin flips the admin flag and returns the new value.
func ToggleAdmin(db *sql.DB, userID string) (bool, error) {
	var isAdmin bool
	query := `UPDATE users SET is_admin = NOT is_admin WHERE id = $1 RETURNING is_admin`
	err := db.QueryRow(query, userID).Scan(&isAdmin)
	return isAdmin, err
}

// SearchUsers matches username, email or department case-insensitively.
func SearchUsers(db *sql.DB, term string) ([]*models.User, error) {
	pattern := "%" + term + "%"
	query := `SELECT id, username, email, reg_number, department, year, is_admin, created_at
			  FROM users
			  WHERE username ILIKE $1 OR email ILIKE $1 OR department ILIKE $1
			  ORDER BY username`

	rows, err := db.Query(query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.RegNumber,
			&user.Department, &user.Year, &user.IsAdmin, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, rows.Err()
}
