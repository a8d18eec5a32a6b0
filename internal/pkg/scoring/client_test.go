package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

func TestClient_RecommendPassesBodyThrough(t *testing.T) {
	const payload = `{"recommendations":[{"internship_id":3,"title":"Data Intern","match_score":0.91}],"extra":{"kept":true}}`
	var got map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommend", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", ConnectTimeout: time.Second, RequestTimeout: 2 * time.Second})
	raw, err := client.Recommend(context.Background(), Request{Domain: "Data Science", CGPA: 8.4, ExperienceYears: 1, Certifications: 2})
	require.NoError(t, err)

	assert.JSONEq(t, payload, string(raw))
	assert.Equal(t, "Data Science", got["domain"])
	assert.Equal(t, 8.4, got["cgpa"])
	assert.Equal(t, float64(1), got["experience_years"])
	assert.Equal(t, float64(2), got["certifications"])
}

func TestClient_RecommendNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model not loaded"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Recommend(context.Background(), Request{Domain: "Web", CGPA: 7})

	assert.ErrorIs(t, err, apperrors.ErrServiceError)
	var svcErr *apperrors.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, `{"error":"model not loaded"}`, svcErr.Body)
}

func TestClient_RecommendTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, ConnectTimeout: time.Second, RequestTimeout: 100 * time.Millisecond})
	_, err := client.Recommend(context.Background(), Request{Domain: "Web", CGPA: 7})

	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	assert.NotEmpty(t, apperrors.DetailOf(err, "technicalDetails"))
}

func TestClient_RecommendConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: url, ConnectTimeout: 500 * time.Millisecond, RequestTimeout: time.Second})
	_, err := client.Recommend(context.Background(), Request{Domain: "Web", CGPA: 7})

	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy","internships_loaded":12,"database":"connected"}`))
	}))
	defer srv.Close()

	health, err := NewClient(Config{BaseURL: srv.URL}).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 12, health.InternshipsLoaded)
}
