package models

import "time"

type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Type      string
	Phone     *string
	Specialty *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
