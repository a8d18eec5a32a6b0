package filestorage

import (
	"context"
	"io"
)

// Storage keeps uploaded resumes. A reference returned by Save is what gets persisted on the profile.
type Storage interface {
	// Save writes the content under name and returns its reference
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)

	// LocalPath returns a filesystem path for ref. cleanup must be called when the path is no longer needed.
	LocalPath(ctx context.Context, ref string) (path string, cleanup func(), err error)

	// Delete removes the object behind ref, missing objects are not an error
	Delete(ctx context.Context, ref string) error
}
