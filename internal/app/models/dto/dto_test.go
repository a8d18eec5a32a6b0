package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

func TestProfileForm_ToInput(t *testing.T) {
	form := &ProfileForm{
		College:         "  IIT Madras ",
		Degree:          "B.Tech",
		GradYear:        "2026",
		CGPA:            "8.25",
		Domain:          "Data Science",
		ExperienceYears: "1.5",
		Certifications:  "3",
	}

	in, err := form.ToInput()
	require.NoError(t, err)
	assert.Equal(t, "IIT Madras", in.College)
	require.NotNil(t, in.CGPA)
	assert.Equal(t, 8.25, *in.CGPA)
	assert.Equal(t, 1.5, *in.ExperienceYears)
	assert.Equal(t, 3, *in.CertificationsCount)
}

func TestProfileForm_ToInputOptionalAndInvalid(t *testing.T) {
	in, err := (&ProfileForm{College: "X"}).ToInput()
	require.NoError(t, err)
	assert.Nil(t, in.CGPA)
	assert.Nil(t, in.ExperienceYears)
	assert.Nil(t, in.CertificationsCount)

	_, err = (&ProfileForm{CGPA: "eight"}).ToInput()
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = (&ProfileForm{Certifications: "2.5"}).ToInput()
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	err := v.Struct(struct {
		Email string `validate:"required,email"`
	}{Email: "nope"})

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "Email", detail.Field)
	fields, ok := detail.Details.([]FieldError)
	require.True(t, ok)
	assert.Equal(t, "Email must be a valid email address", fields[0].Message)

	detail = HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, "Invalid request format", detail.Message)
}

func TestInternshipResponseDeadline(t *testing.T) {
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	resp := NewInternshipListResponse([]*models.Internship{
		{ID: 1, Title: "A", CompanyName: "Acme", ApplicationDeadline: &deadline},
		{ID: 2, Title: "B", CompanyName: "Beta"},
	})

	assert.Equal(t, 2, resp.Count)
	require.NotNil(t, resp.Internships[0].Deadline)
	assert.Equal(t, "2025-06-30", *resp.Internships[0].Deadline)
	assert.Nil(t, resp.Internships[1].Deadline)
	assert.Equal(t, "Acme", resp.Internships[0].Company)
}
