package utils

import (
	"clinic-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidRole(role string) bool {
	switch role {
	case constvars.RoleAdmin, constvars.RoleAssistant, constvars.RoleProfessional:
		return true
	}
	return false
}

func validateRole(fl validator.FieldLevel) bool {
	return IsValidRole(fl.Field().String())
}
