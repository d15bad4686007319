package requests

type CreateTherapyType struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Specialty   string  `json:"specialty" validate:"required"`
}

type UpdateTherapyType struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Specialty   *string `json:"specialty" validate:"omitempty,min=1"`
}
