package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/scoring"
)

func TestRecommendationService_PassesPayloadThrough(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.profiles[7] = &models.Profile{
		AccountID:           7,
		Domain:              "Data Science",
		CGPA:                floatPtr(8.5),
		ExperienceYears:     floatPtr(1.5),
		CertificationsCount: intPtr(2),
	}
	payload := json.RawMessage(`{"recommendations":[{"id":3,"score":0.91}],"extra":true}`)
	client := &fakeScoring{payload: payload}
	svc := NewRecommendationService(profiles, client, zerolog.Nop())

	got, err := svc.Recommend(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, string(payload), string(got))

	require.Len(t, client.requests, 1)
	assert.Equal(t, scoring.Request{Domain: "Data Science", CGPA: 8.5, ExperienceYears: 1.5, Certifications: 2}, client.requests[0])
}

func TestRecommendationService_DefaultsOptionalCounts(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.profiles[7] = &models.Profile{AccountID: 7, Domain: "Web Development", CGPA: floatPtr(7)}
	client := &fakeScoring{payload: json.RawMessage(`{"recommendations":[]}`)}
	svc := NewRecommendationService(profiles, client, zerolog.Nop())

	_, err := svc.Recommend(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, client.requests[0].ExperienceYears)
	assert.Zero(t, client.requests[0].Certifications)
}

func TestRecommendationService_ProfilePreconditions(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.profiles[8] = &models.Profile{AccountID: 8, CGPA: floatPtr(8)}
	profiles.profiles[9] = &models.Profile{AccountID: 9, Domain: "AI"}
	client := &fakeScoring{}
	svc := NewRecommendationService(profiles, client, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Recommend(ctx, 7)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)

	_, err = svc.Recommend(ctx, 8)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteProfile)

	_, err = svc.Recommend(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteProfile)

	assert.Empty(t, client.requests, "no call is made for missing or incomplete profiles")
}

func TestRecommendationService_PropagatesScoringErrors(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.profiles[7] = &models.Profile{AccountID: 7, Domain: "AI", CGPA: floatPtr(9)}
	client := &fakeScoring{err: &apperrors.ServiceError{StatusCode: 500, Body: "boom"}}
	svc := NewRecommendationService(profiles, client, zerolog.Nop())

	_, err := svc.Recommend(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrServiceError)
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "boom", svcErr.Body)
}

func TestRecommendationService_Health(t *testing.T) {
	client := &fakeScoring{health: &scoring.Health{Status: "healthy", InternshipsLoaded: 12}}
	svc := NewRecommendationService(newMockProfileRepo(), client, zerolog.Nop())

	h, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, h.InternshipsLoaded)
}
