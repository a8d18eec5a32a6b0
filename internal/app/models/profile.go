package models

import "time"

// ExtractedFields holds the structured data pulled from the latest resume
type ExtractedFields struct {
	Name           *string `json:"name,omitempty" db:"extracted_name"`
	Email          *string `json:"email,omitempty" db:"extracted_email"`
	Phone          *string `json:"phone,omitempty" db:"extracted_phone"`
	Education      *string `json:"education,omitempty" db:"extracted_education"`
	Experience     *string `json:"experience,omitempty" db:"extracted_experience"`
	Projects       *string `json:"projects,omitempty" db:"extracted_projects"`
	Skills         *string `json:"skills,omitempty" db:"extracted_skills"`
	Certifications *string `json:"certifications,omitempty" db:"extracted_certifications"`
}

// Profile defines the application profile based on the 'profiles' table.
// One row per account.
type Profile struct {
	AccountID           int64           `json:"accountId" db:"account_id"`
	College             string          `json:"college" db:"college"`
	Degree              string          `json:"degree" db:"degree"`
	GradYear            string          `json:"gradYear" db:"grad_year"`
	CGPA                *float64        `json:"cgpa" db:"cgpa"`
	LinkedInURL         string          `json:"linkedinUrl" db:"linkedin_url"`
	GitHubURL           string          `json:"githubUrl" db:"github_url"`
	Domain              string          `json:"domain" db:"domain"`
	Skills              string          `json:"skills" db:"skills"`
	CoverLetter         string          `json:"coverLetter" db:"cover_letter"`
	ExperienceYears     *float64        `json:"experienceYears" db:"experience_years"`
	CertificationsCount *int            `json:"certificationsCount" db:"certifications_count"`
	ResumePath          *string         `json:"resumePath" db:"resume_path"`
	Extracted           ExtractedFields `json:"extracted"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time       `json:"updatedAt" db:"updated_at"`
}

// HasResume reports whether a resume reference is stored
func (p *Profile) HasResume() bool {
	return p != nil && p.ResumePath != nil && *p.ResumePath != ""
}
