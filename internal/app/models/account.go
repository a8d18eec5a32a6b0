package models

import "time"

// Account defines the account model based on the 'accounts' table
type Account struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	FullName     string    `json:"fullName" db:"full_name" example:"Ada Lovelace"`
	Email        string    `json:"email" db:"email" example:"ada@example.com"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
