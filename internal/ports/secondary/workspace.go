package secondary

import "context"

// Workspace defines the secondary port for reading and writing the target
// project. Paths are relative to the project root.
type Workspace interface {
	// Root returns the absolute project root.
	Root() string

	// Exists reports whether a file exists.
	Exists(ctx context.Context, path string) (bool, error)

	// Write creates or overwrites a file, creating parent directories.
	Write(ctx context.Context, path, content string) error

	// InsertBefore inserts snippet on its own line before the line holding
	// marker, using the marker line's indentation.
	InsertBefore(ctx context.Context, path, marker, snippet string) error

	// Contains reports whether a file holds substr. A missing file holds nothing.
	Contains(ctx context.Context, path, substr string) (bool, error)

	// Glob returns the files matching a pattern, relative to the root.
	Glob(ctx context.Context, pattern string) ([]string, error)
}
