package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	Username   string    `json:"username" db:"username"`       // Unique username derived from email
	Email      *string   `json:"email" db:"email"`             // Unique email, optional
	Phone      *string   `json:"phone" db:"phone"`             // Unique phone, optional
	FirstName  string    `json:"first_name" db:"first_name"`   // First name
	LastName   string    `json:"last_name" db:"last_name"`     // Last name
	Patronymic string    `json:"patronymic" db:"patronymic"`   // Patronymic
	DateJoined time.Time `json:"date_joined" db:"date_joined"` // Creation timestamp
}

func (UserDB) TableName() string {
	return "users"
}
