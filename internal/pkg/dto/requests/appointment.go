package requests

type CreateAppointment struct {
	PatientID      int64   `json:"patient_id" validate:"required,gt=0"`
	ProfessionalID *int64  `json:"professional_id" validate:"omitempty,gt=0"`
	TherapyTypeID  int64   `json:"therapy_type_id" validate:"required,gt=0"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string  `json:"time" validate:"required"`
	Frequency      *string `json:"frequency" validate:"omitempty,oneof=single weekly biweekly monthly"`
	Status         *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes          *string `json:"notes"`
}

type UpdateAppointment struct {
	PatientID      *int64  `json:"patient_id" validate:"omitempty,gt=0"`
	ProfessionalID *int64  `json:"professional_id" validate:"omitempty,gt=0"`
	TherapyTypeID  *int64  `json:"therapy_type_id" validate:"omitempty,gt=0"`
	Date           *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time           *string `json:"time" validate:"omitempty,min=1"`
	Frequency      *string `json:"frequency" validate:"omitempty,oneof=single weekly biweekly monthly"`
	Status         *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes          *string `json:"notes"`
}
