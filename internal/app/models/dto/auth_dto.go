package dto

import (
	"time"

	"github.com/yigit/smartmatch/internal/app/models"
)

// RegisterRequest is the signup payload, accepted as JSON or as a page form post
type RegisterRequest struct {
	FullName string `json:"fullName" form:"fullname" binding:"required,min=2,max=100" example:"Ada Lovelace"`
	Email    string `json:"email" form:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" form:"password" binding:"required,min=8" example:"s3cretpass"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"s3cretpass"`
}

// AccountResponse is the public view of an account
type AccountResponse struct {
	ID        int64     `json:"id" example:"1"`
	FullName  string    `json:"fullName" example:"Ada Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the session handle for API clients
type LoginResponse struct {
	AccountID   int64     `json:"accountId" example:"1"`
	DisplayName string    `json:"displayName" example:"Ada Lovelace"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// NewAccountResponse builds the public account view
func NewAccountResponse(a *models.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
