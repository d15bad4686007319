package requests

type CreateEvolution struct {
	PatientID      int64   `json:"patient_id" validate:"required,gt=0"`
	ProfessionalID *int64  `json:"professional_id" validate:"omitempty,gt=0"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description    string  `json:"description" validate:"required"`
	Observations   *string `json:"observations"`
}

type UpdateEvolution struct {
	Date         *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description  *string `json:"description" validate:"omitempty,min=1"`
	Observations *string `json:"observations"`
}
