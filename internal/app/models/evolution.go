package models

import "time"

type Evolution struct {
	ID               int64     `json:"id"`
	PatientID        int64     `json:"patient_id"`
	PatientName      string    `json:"patient_name"`
	ProfessionalID   int64     `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	Date             string    `json:"date"`
	Description      string    `json:"description"`
	Observations     *string   `json:"observations"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
