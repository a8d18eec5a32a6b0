package models

import "time"

// Registration defines an account's registration for one internship
type Registration struct {
	ID           int64              `json:"id" db:"id"`
	AccountID    int64              `json:"accountId" db:"account_id"`
	InternshipID int64              `json:"internshipId" db:"internship_id"`
	Status       RegistrationStatus `json:"status" db:"status"`
	CreatedAt    time.Time          `json:"createdAt" db:"created_at"`

	// Joined from internships, no db tag
	InternshipTitle string `json:"internshipTitle,omitempty"`
	CompanyName     string `json:"companyName,omitempty"`
}
