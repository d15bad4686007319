package models

import "time"

type InsurancePlan struct {
	ID                       int64     `json:"id"`
	Name                     string    `json:"name"`
	PsychologyValue          float64   `json:"psychology_value"`
	PhysiotherapyValue       float64   `json:"physiotherapy_value"`
	OccupationalTherapyValue float64   `json:"occupational_therapy_value"`
	SpeechTherapyValue       float64   `json:"speech_therapy_value"`
	Phone                    *string   `json:"phone"`
	Email                    *string   `json:"email"`
	StartDate                *string   `json:"start_date"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
