package responses

import (
	"clinic-service/internal/app/models"
	"time"
)

// User is the public view of a user; the password hash never leaves storage.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Phone     *string   `json:"phone"`
	Specialty *string   `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUser(user *models.User) *User {
	if user == nil {
		return nil
	}
	return &User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Type:      user.Type,
		Phone:     user.Phone,
		Specialty: user.Specialty,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewUsers(users []models.User) []User {
	result := make([]User, 0, len(users))
	for i := range users {
		result = append(result, *NewUser(&users[i]))
	}
	return result
}
