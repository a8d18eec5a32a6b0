package dto

import (
	"time"

	"github.com/yigit/smartmatch/internal/app/models"
)

// RegisterInternshipRequest asks to register the caller for one internship
type RegisterInternshipRequest struct {
	InternshipID int64 `json:"internshipId" form:"internship_id" example:"3"`
}

// RegistrationResponse confirms or rejects a registration
type RegistrationResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	InternshipTitle string `json:"internshipTitle,omitempty"`
	CompanyName     string `json:"companyName,omitempty"`
}

// RegistrationItem is one entry of the caller's registration list
type RegistrationItem struct {
	ID              int64                     `json:"id"`
	InternshipID    int64                     `json:"internshipId"`
	InternshipTitle string                    `json:"internshipTitle"`
	CompanyName     string                    `json:"companyName"`
	Status          models.RegistrationStatus `json:"status"`
	RegisteredAt    time.Time                 `json:"registeredAt"`
}

// RegistrationListResponse lists the caller's registrations
type RegistrationListResponse struct {
	Success       bool               `json:"success"`
	Count         int                `json:"count"`
	Registrations []RegistrationItem `json:"registrations"`
}

// NewRegistrationListResponse builds the registration list
func NewRegistrationListResponse(regs []*models.Registration) RegistrationListResponse {
	items := make([]RegistrationItem, 0, len(regs))
	for _, r := range regs {
		items = append(items, RegistrationItem{
			ID:              r.ID,
			InternshipID:    r.InternshipID,
			InternshipTitle: r.InternshipTitle,
			CompanyName:     r.CompanyName,
			Status:          r.Status,
			RegisteredAt:    r.CreatedAt,
		})
	}
	return RegistrationListResponse{Success: true, Count: len(items), Registrations: items}
}
