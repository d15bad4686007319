package requests

type CreateInsurancePlan struct {
	Name                     string   `json:"name" validate:"required"`
	PsychologyValue          *float64 `json:"psychology_value" validate:"omitempty,gte=0"`
	PhysiotherapyValue       *float64 `json:"physiotherapy_value" validate:"omitempty,gte=0"`
	OccupationalTherapyValue *float64 `json:"occupational_therapy_value" validate:"omitempty,gte=0"`
	SpeechTherapyValue       *float64 `json:"speech_therapy_value" validate:"omitempty,gte=0"`
	Phone                    *string  `json:"phone"`
	Email                    *string  `json:"email" validate:"omitempty,email"`
	StartDate                *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateInsurancePlan struct {
	Name                     *string  `json:"name" validate:"omitempty,min=1"`
	PsychologyValue          *float64 `json:"psychology_value" validate:"omitempty,gte=0"`
	PhysiotherapyValue       *float64 `json:"physiotherapy_value" validate:"omitempty,gte=0"`
	OccupationalTherapyValue *float64 `json:"occupational_therapy_value" validate:"omitempty,gte=0"`
	SpeechTherapyValue       *float64 `json:"speech_therapy_value" validate:"omitempty,gte=0"`
	Phone                    *string  `json:"phone"`
	Email                    *string  `json:"email" validate:"omitempty,email"`
	StartDate                *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}
