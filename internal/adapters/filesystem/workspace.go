// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/crudgen/internal/ports/secondary"
)

// WorkspaceAdapter implements secondary.Workspace over a project directory.
type WorkspaceAdapter struct {
	root string
}

// NewWorkspaceAdapter creates a new filesystem workspace adapter rooted at
// root. An empty root means the current directory.
func NewWorkspaceAdapter(root string) (*WorkspaceAdapter, error) {
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", abs)
	}

	return &WorkspaceAdapter{root: abs}, nil
}

// Root returns the absolute project root.
func (a *WorkspaceAdapter) Root() string {
	return a.root
}

func (a *WorkspaceAdapter) resolve(path string) string {
	return filepath.Join(a.root, filepath.FromSlash(path))
}

// Exists reports whether a file exists.
func (a *WorkspaceAdapter) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(a.resolve(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return true, nil
}

// Write creates or overwrites a file, creating parent directories.
func (a *WorkspaceAdapter) Write(ctx context.Context, path, content string) error {
	full := a.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// InsertBefore inserts snippet on its own line before the first line holding
// marker. The snippet takes the marker line's indentation.
func (a *WorkspaceAdapter) InsertBefore(ctx context.Context, path, marker, snippet string) error {
	full := a.resolve(path)
	content, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	idx := -1
	for i, line := range lines {
		if strings.Contains(line, marker) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("marker %q not found in %s", marker, path)
	}

	marked := lines[idx]
	indent := marked[:len(marked)-len(strings.TrimLeft(marked, " \t"))]

	var inserted []string
	for _, line := range strings.Split(strings.TrimRight(snippet, "\n"), "\n") {
		inserted = append(inserted, indent+line)
	}

	out := make([]string, 0, len(lines)+len(inserted))
	out = append(out, lines[:idx]...)
	out = append(out, inserted...)
	out = append(out, lines[idx:]...)

	if err := os.WriteFile(full, []byte(strings.Join(out, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Contains reports whether a file holds substr. A missing file holds nothing.
func (a *WorkspaceAdapter) Contains(ctx context.Context, path, substr string) (bool, error) {
	content, err := os.ReadFile(a.resolve(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.Contains(string(content), substr), nil
}

// Glob returns the files matching a pattern, relative to the root.
func (a *WorkspaceAdapter) Glob(ctx context.Context, pattern string) ([]string, error) {
	matches, err := filepath.Glob(a.resolve(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	rel := make([]string, 0, len(matches))
	for _, m := range matches {
		r, err := filepath.Rel(a.root, m)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", m, err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel, nil
}

// Ensure WorkspaceAdapter implements the interface
var _ secondary.Workspace = (*WorkspaceAdapter)(nil)
