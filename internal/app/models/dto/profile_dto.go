package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

// ProfileForm is the application form as posted by the browser or an API client (multipart)
type ProfileForm struct {
	College         string `form:"college" binding:"required,max=255"`
	Degree          string `form:"degree" binding:"required,max=255"`
	GradYear        string `form:"grad_year" binding:"required,max=16"`
	CGPA            string `form:"cgpa" binding:"required"`
	LinkedIn        string `form:"linkedin" binding:"max=512"`
	GitHub          string `form:"github" binding:"max=512"`
	Domain          string `form:"domain" binding:"required,max=255"`
	Skills          string `form:"skills"`
	CoverLetter     string `form:"cover_letter"`
	ExperienceYears string `form:"experience_years"`
	Certifications  string `form:"certifications"`
}

// ProfileInput is the typed set of mutable profile fields
type ProfileInput struct {
	College             string
	Degree              string
	GradYear            string
	CGPA                *float64
	LinkedInURL         string
	GitHubURL           string
	Domain              string
	Skills              string
	CoverLetter         string
	ExperienceYears     *float64
	CertificationsCount *int
}

// ToInput trims the form and parses its numeric fields
func (f *ProfileForm) ToInput() (*ProfileInput, error) {
	in := &ProfileInput{
		College:     strings.TrimSpace(f.College),
		Degree:      strings.TrimSpace(f.Degree),
		GradYear:    strings.TrimSpace(f.GradYear),
		LinkedInURL: strings.TrimSpace(f.LinkedIn),
		GitHubURL:   strings.TrimSpace(f.GitHub),
		Domain:      strings.TrimSpace(f.Domain),
		Skills:      strings.TrimSpace(f.Skills),
		CoverLetter: strings.TrimSpace(f.CoverLetter),
	}

	if s := strings.TrimSpace(f.CGPA); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: cgpa must be a number", apperrors.ErrValidationFailed)
		}
		in.CGPA = &v
	}
	if s := strings.TrimSpace(f.ExperienceYears); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: experience years must be a number", apperrors.ErrValidationFailed)
		}
		in.ExperienceYears = &v
	}
	if s := strings.TrimSpace(f.Certifications); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: certifications must be a whole number", apperrors.ErrValidationFailed)
		}
		in.CertificationsCount = &v
	}

	return in, nil
}

// ProfileResponse is the API view of a profile
type ProfileResponse struct {
	AccountID           int64                  `json:"accountId"`
	College             string                 `json:"college"`
	Degree              string                 `json:"degree"`
	GradYear            string                 `json:"gradYear"`
	CGPA                *float64               `json:"cgpa"`
	LinkedInURL         string                 `json:"linkedinUrl"`
	GitHubURL           string                 `json:"githubUrl"`
	Domain              string                 `json:"domain"`
	Skills              string                 `json:"skills"`
	CoverLetter         string                 `json:"coverLetter"`
	ExperienceYears     *float64               `json:"experienceYears"`
	CertificationsCount *int                   `json:"certificationsCount"`
	HasResume           bool                   `json:"hasResume"`
	Extracted           models.ExtractedFields `json:"extracted"`
	UpdatedAt           time.Time              `json:"updatedAt"`
}

// NewProfileResponse builds the API view, nil for nil
func NewProfileResponse(p *models.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		AccountID:           p.AccountID,
		College:             p.College,
		Degree:              p.Degree,
		GradYear:            p.GradYear,
		CGPA:                p.CGPA,
		LinkedInURL:         p.LinkedInURL,
		GitHubURL:           p.GitHubURL,
		Domain:              p.Domain,
		Skills:              p.Skills,
		CoverLetter:         p.CoverLetter,
		ExperienceYears:     p.ExperienceYears,
		CertificationsCount: p.CertificationsCount,
		HasResume:           p.HasResume(),
		Extracted:           p.Extracted,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ProfileEnvelope wraps a possibly absent profile
type ProfileEnvelope struct {
	Success bool             `json:"success"`
	Profile *ProfileResponse `json:"profile"`
}

// SubmissionResponse reports the outcome of a profile submission
type SubmissionResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	MessageType models.MessageType `json:"messageType"`
	Warnings    []string           `json:"warnings,omitempty"`
	Profile     *ProfileResponse   `json:"profile"`
}
