package models

import "time"

type Patient struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	BirthDate         string    `json:"birth_date"`
	Category          string    `json:"category"`
	Gender            string    `json:"gender"`
	Phone             *string   `json:"phone"`
	Email             *string   `json:"email"`
	Address           *string   `json:"address"`
	ResponsibleID     int64     `json:"responsible_id"`
	ResponsibleName   *string   `json:"responsible_name"`
	InsurancePlanID   *int64    `json:"insurance_plan_id"`
	InsurancePlanName *string   `json:"insurance_plan_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
