package requests

type CreateCompanion struct {
	Name      string  `json:"name" validate:"required"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	PatientID *int64  `json:"patient_id" validate:"omitempty,gt=0"`
}

type UpdateCompanion struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	PatientID *int64  `json:"patient_id" validate:"omitempty,gt=0"`
}
