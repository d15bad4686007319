package requests

type CreatePatient struct {
	Name            string  `json:"name" validate:"required"`
	BirthDate       string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Category        string  `json:"category" validate:"required"`
	Gender          string  `json:"gender" validate:"required,oneof=M F Other"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Address         *string `json:"address"`
	ResponsibleID   *int64  `json:"responsible_id" validate:"omitempty,gt=0"`
	InsurancePlanID *int64  `json:"insurance_plan_id" validate:"omitempty,gt=0"`
}

type UpdatePatient struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	BirthDate       *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Category        *string `json:"category" validate:"omitempty,min=1"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=M F Other"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Address         *string `json:"address"`
	ResponsibleID   *int64  `json:"responsible_id" validate:"omitempty,gt=0"`
	InsurancePlanID *int64  `json:"insurance_plan_id" validate:"omitempty,gt=0"`
}
