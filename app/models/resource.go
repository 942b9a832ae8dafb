package models

import "time"

type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FilePath    string    `json:"file_path"`
	FileName    string    `json:"file_name"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadDate  time.Time `json:"upload_date"`
}
