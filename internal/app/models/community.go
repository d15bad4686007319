package models

import "time"

type CommunityMessage struct {
	ID                    int64     `json:"id"`
	PatientID             int64     `json:"patient_id"`
	ProfessionalID        int64     `json:"professional_id"`
	ProfessionalName      string    `json:"professional_name"`
	ProfessionalSpecialty *string   `json:"professional_specialty"`
	Message               string    `json:"message"`
	CreatedAt             time.Time `json:"created_at"`
}
