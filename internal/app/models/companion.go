package models

import "time"

type Companion struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	PatientID   *int64    `json:"patient_id"`
	PatientName *string   `json:"patient_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
