// Package scoring is the HTTP client for the external internship scoring service.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

const maxResponseBytes = 4 << 20

// Config holds the service location and its timeouts
type Config struct {
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// Request is the profile summary the service ranks against its catalog
type Request struct {
	Domain          string  `json:"domain"`
	CGPA            float64 `json:"cgpa"`
	ExperienceYears float64 `json:"experience_years"`
	Certifications  int     `json:"certifications"`
}

// Health is the service's health report
type Health struct {
	Status            string `json:"status"`
	InternshipsLoaded int    `json:"internships_loaded"`
	Database          string `json:"database,omitempty"`
}

// Client calls the scoring service
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client with a bounded connect phase and a bounded total request time
func NewClient(cfg Config) *Client {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
	}
}

func unavailable(err error) error {
	return apperrors.NewCustomError(apperrors.ErrServiceUnavailable, "Cannot connect to AI recommendation service").
		WithDetails(map[string]interface{}{"technicalDetails": err.Error()})
}

// Recommend posts the summary and returns the response body untouched.
// Transport failures map to ErrServiceUnavailable, non-200 answers to *apperrors.ServiceError.
func (c *Client) Recommend(ctx context.Context, req Request) (json.RawMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scoring request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewReader(payload))
	if err != nil {
		return nil, unavailable(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, unavailable(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return json.RawMessage(body), nil
}

// Health fetches the service health report
func (c *Client) Health(ctx context.Context) (*Health, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, unavailable(err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, unavailable(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var health Health
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, &apperrors.ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return &health, nil
}
