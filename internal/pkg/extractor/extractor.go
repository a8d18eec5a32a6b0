// Package extractor runs the external resume-parsing capability.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

// Result is the structured data returned for one resume. Error is set when the
// extractor itself reports a failure.
type Result struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Education      *string `json:"education,omitempty"`
	Experience     *string `json:"experience,omitempty"`
	Projects       *string `json:"projects,omitempty"`
	Skills         *string `json:"skills,omitempty"`
	Certifications *string `json:"certifications,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// Extractor turns a stored resume into structured fields
type Extractor interface {
	Extract(ctx context.Context, path string) (*Result, error)
}

// CommandConfig configures the command-line extractor. The resume path is appended after Args.
type CommandConfig struct {
	Command string
	Args    []string
	WorkDir string
	Timeout time.Duration
}

// CommandExtractor runs an external program that prints one JSON object on stdout
type CommandExtractor struct {
	cfg CommandConfig
}

// NewCommandExtractor creates a command extractor
func NewCommandExtractor(cfg CommandConfig) *CommandExtractor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &CommandExtractor{cfg: cfg}
}

// Extract runs the command for path. Every failure wraps apperrors.ErrExtractionFailed.
func (e *CommandExtractor) Extract(ctx context.Context, path string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	args := make([]string, 0, len(e.cfg.Args)+1)
	args = append(args, e.cfg.Args...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, e.cfg.Command, args...)
	cmd.Dir = e.cfg.WorkDir
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: timed out after %s", apperrors.ErrExtractionFailed, e.cfg.Timeout)
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 {
		if runErr != nil {
			return nil, fmt.Errorf("%w: no output from extractor (%v) %s",
				apperrors.ErrExtractionFailed, runErr, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%w: no output from extractor", apperrors.ErrExtractionFailed)
	}

	var result Result
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("%w: invalid extractor output: %v", apperrors.ErrExtractionFailed, err)
	}

	if result.Error != "" {
		return &result, fmt.Errorf("%w: %s", apperrors.ErrExtractionFailed, result.Error)
	}

	return &result, nil
}
