package extractor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

// shellExtractor runs script with the resume path as $1
func shellExtractor(script string, timeout time.Duration) *CommandExtractor {
	return NewCommandExtractor(CommandConfig{
		Command: "sh",
		Args:    []string{"-c", script, "extractor"},
		Timeout: timeout,
	})
}

func TestCommandExtractor_Success(t *testing.T) {
	ex := shellExtractor(`printf '{"name":"Ada","skills":"Go, SQL","email":"%s"}' "$1"`, 5*time.Second)

	res, err := ex.Extract(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, res.Name)
	assert.Equal(t, "Ada", *res.Name)
	assert.Equal(t, "Go, SQL", *res.Skills)
	assert.Equal(t, "ada@example.com", *res.Email)
	assert.Nil(t, res.Phone)
}

func TestCommandExtractor_ReportedError(t *testing.T) {
	ex := shellExtractor(`echo '{"error":"Could not read PDF"}'; exit 1`, 5*time.Second)

	res, err := ex.Extract(context.Background(), "resume.pdf")
	assert.ErrorIs(t, err, apperrors.ErrExtractionFailed)
	assert.Contains(t, err.Error(), "Could not read PDF")
	require.NotNil(t, res)
	assert.Equal(t, "Could not read PDF", res.Error)
}

func TestCommandExtractor_Failures(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"empty output", `exit 0`, "no output"},
		{"crash without output", `echo boom >&2; exit 3`, "no output"},
		{"garbage output", `echo 'Traceback (most recent call last)'`, "invalid extractor output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shellExtractor(tt.script, 5*time.Second).Extract(context.Background(), "resume.pdf")
			assert.ErrorIs(t, err, apperrors.ErrExtractionFailed)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCommandExtractor_Timeout(t *testing.T) {
	ex := shellExtractor(`exec sleep 5`, 100*time.Millisecond)

	start := time.Now()
	_, err := ex.Extract(context.Background(), "resume.pdf")
	assert.ErrorIs(t, err, apperrors.ErrExtractionFailed)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestCommandExtractor_MissingCommand(t *testing.T) {
	ex := NewCommandExtractor(CommandConfig{Command: "definitely-not-a-real-extractor", Timeout: time.Second})

	_, err := ex.Extract(context.Background(), "resume.pdf")
	assert.ErrorIs(t, err, apperrors.ErrExtractionFailed)
}
