package storage

import (
	"context"
	"io"
)

// Storage abstracts where photo files live. Paths are relative; the
// implementation decides the physical layout.
type Storage interface {
	// Save writes content to the given relative path, creating parents.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given relative path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given relative path.
	// Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
}
