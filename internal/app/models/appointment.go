package models

import "time"

type Appointment struct {
	ID               int64     `json:"id"`
	PatientID        int64     `json:"patient_id"`
	PatientName      string    `json:"patient_name"`
	ProfessionalID   int64     `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	TherapyTypeID    int64     `json:"therapy_type_id"`
	TherapyTypeName  string    `json:"therapy_type_name"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Frequency        string    `json:"frequency"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
