package dto

import (
	"time"

	"github.com/yigit/smartmatch/internal/app/models"
)

// InternshipResponse is the catalog view of an internship
type InternshipResponse struct {
	ID                 int64   `json:"id" example:"3"`
	Title              string  `json:"title" example:"Data Science Intern"`
	Company            string  `json:"company" example:"Acme Analytics"`
	Description        string  `json:"description"`
	Domain             string  `json:"domain" example:"Data Science"`
	MinCGPA            float64 `json:"minCgpa" example:"7.5"`
	RequiredExperience float64 `json:"requiredExperience" example:"0"`
	MinCertifications  int     `json:"minCertifications" example:"1"`
	Location           string  `json:"location" example:"Bengaluru"`
	DurationMonths     int     `json:"durationMonths" example:"6"`
	Stipend            float64 `json:"stipend" example:"15000"`
	Deadline           *string `json:"deadline" example:"2025-06-30"`
}

// formatDate renders an optional date as YYYY-MM-DD
func formatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// NewInternshipResponse builds the catalog view
func NewInternshipResponse(i *models.Internship) InternshipResponse {
	return InternshipResponse{
		ID:                 i.ID,
		Title:              i.Title,
		Company:            i.CompanyName,
		Description:        i.Description,
		Domain:             i.RequiredDomain,
		MinCGPA:            i.MinCGPA,
		RequiredExperience: i.RequiredExperience,
		MinCertifications:  i.MinCertifications,
		Location:           i.Location,
		DurationMonths:     i.DurationMonths,
		Stipend:            i.Stipend,
		Deadline:           formatDate(i.ApplicationDeadline),
	}
}

// InternshipListResponse is the catalog listing
type InternshipListResponse struct {
	Success     bool                 `json:"success"`
	Count       int                  `json:"count"`
	Internships []InternshipResponse `json:"internships"`
	Pagination  *PaginationInfo      `json:"pagination,omitempty"`
}

// NewInternshipListResponse builds the catalog listing
func NewInternshipListResponse(items []*models.Internship) InternshipListResponse {
	out := make([]InternshipResponse, 0, len(items))
	for _, i := range items {
		out = append(out, NewInternshipResponse(i))
	}
	return InternshipListResponse{Success: true, Count: len(out), Internships: out}
}

// InternshipEnvelope wraps a single internship
type InternshipEnvelope struct {
	Success    bool               `json:"success"`
	Internship InternshipResponse `json:"internship"`
}
