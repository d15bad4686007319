package requests

type CreateUser struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	Type      string  `json:"type" validate:"required,role"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
}

type UpdateUser struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password"`
	Type      *string `json:"type" validate:"omitempty,role"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
}
