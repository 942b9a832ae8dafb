package database

import (
	"database/sql"

	"github.com/RITIK-CHAUDHRY/smart-campus-connect/app/models"
)

// CreateResource records an uploaded file.
func CreateResource(db *sql.DB, r *models.Resource) error {
	query := `INSERT INTO resources (title, description, file_path, file_name, uploaded_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, upload_date`
	return db.QueryRow(
		query,
		r.Title, r.Description, r.FilePath, r.FileName, r.UploadedBy,
	).Scan(&r.ID, &r.UploadDate)
}

// GetResources returns all resources, newest upload first.
func GetResources(db *sql.DB) ([]models.Resource, error) {
	query := `SELECT id, title, description, file_path, file_name, uploaded_by, upload_date
			  FROM resources
			  ORDER BY upload_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var r models.Resource
		if err := rows.Scan(
			&r.ID, &r.Title, &r.Description, &r.FilePath, &r.FileName,
			&r.UploadedBy, &r.UploadDate,
		); err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

func GetResourceByID(db *sql.DB, id string) (*models.Resource, error) {
	r := &models.Resource{}
	query := `SELECT id, title, description, file_path, file_name, uploaded_by, upload_date
			  FROM resources WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&r.ID, &r.Title, &r.Description, &r.FilePath, &r.FileName,
		&r.UploadedBy, &r.UploadDate,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}
