package models

import "time"

// Internship defines a catalog entry based on the 'internships' table
type Internship struct {
	ID                  int64      `json:"id" db:"id"`
	Title               string     `json:"title" db:"title"`
	CompanyName         string     `json:"companyName" db:"company_name"`
	Description         string     `json:"description" db:"description"`
	RequiredDomain      string     `json:"requiredDomain" db:"required_domain"`
	MinCGPA             float64    `json:"minCgpa" db:"min_cgpa"`
	RequiredExperience  float64    `json:"requiredExperience" db:"required_experience"`
	MinCertifications   int        `json:"minCertifications" db:"min_certifications"`
	Location            string     `json:"location" db:"location"`
	DurationMonths      int        `json:"durationMonths" db:"duration_months"`
	Stipend             float64    `json:"stipend" db:"stipend"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty" db:"application_deadline"`
	IsActive            bool       `json:"isActive" db:"is_active"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
}
