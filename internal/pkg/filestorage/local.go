package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yigit/smartmatch/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// A relative basePath is resolved against the working directory once, so
// references stay valid for child processes with a different cwd.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory %s: %w", basePath, err)
	}
	basePath = absPath

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// physicalPath maps a reference back into the storage directory. Only the base name is used.
func (ls *LocalStorage) physicalPath(ref string) (string, error) {
	filename := filepath.Base(ref)
	if filename == "" || filename == "." || filename == "/" || filename == ".." {
		return "", fmt.Errorf("invalid file reference: %s", ref)
	}
	return filepath.Join(ls.basePath, filename), nil
}

// Save writes the content to basePath/name and returns that path as the reference
func (ls *LocalStorage) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) (string, error) {
	dstPath, err := ls.physicalPath(name)
	if err != nil {
		return "", err
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err = io.Copy(dst, r); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to close destination file: %w", err)
	}

	logger.Info().Str("saved_as", dstPath).Msg("File saved successfully")
	return dstPath, nil
}

// LocalPath returns the on-disk path, no cleanup is needed
func (ls *LocalStorage) LocalPath(_ context.Context, ref string) (string, func(), error) {
	path, err := ls.physicalPath(ref)
	if err != nil {
		return "", func() {}, err
	}
	if _, err := os.Stat(path); err != nil {
		return "", func() {}, fmt.Errorf("stored file unavailable: %w", err)
	}
	return path, func() {}, nil
}

// Delete removes a file from the storage directory.
// Returns nil if deletion is successful or if the file doesn't exist.
func (ls *LocalStorage) Delete(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	path, err := ls.physicalPath(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", path).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", path).Msg("File deleted successfully")
	return nil
}
