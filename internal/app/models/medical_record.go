package models

import "time"

type MedicalRecord struct {
	ID               int64     `json:"id"`
	PatientID        int64     `json:"patient_id"`
	ProfessionalID   int64     `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Description      *string   `json:"description"`
	FilePath         string    `json:"file_path"`
	FileName         string    `json:"file_name"`
	CreatedAt        time.Time `json:"created_at"`
}
