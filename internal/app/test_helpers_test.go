package app

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/example/crudgen/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.SchemaRepository = (*mockSchemaRepository)(nil)
	_ secondary.MenuRepository   = (*mockMenuRepository)(nil)
	_ secondary.Workspace        = (*mockWorkspace)(nil)
)

// mockSchemaRepository implements secondary.SchemaRepository for testing.
type mockSchemaRepository struct {
	tables     map[string]bool
	columns    map[string][]string
	applied    []string
	applyErr   error
	hasErr     error
	columnsErr error
}

func newMockSchemaRepository() *mockSchemaRepository {
	return &mockSchemaRepository{
		tables:  make(map[string]bool),
		columns: make(map[string][]string),
	}
}

// ddlColumnRe matches the quoted column name at the start of a DDL line.
var ddlColumnRe = regexp.MustCompile(`(?m)^\t"([^"]+)"`)

func (m *mockSchemaRepository) Columns(ctx context.Context, table string) ([]string, error) {
	if m.columnsErr != nil {
		return nil, m.columnsErr
	}
	return m.columns[table], nil
}

func (m *mockSchemaRepository) HasTable(ctx context.Context, table string) (bool, error) {
	if m.hasErr != nil {
		return false, m.hasErr
	}
	return m.tables[table], nil
}

func (m *mockSchemaRepository) Apply(ctx context.Context, table, ddl string) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	if m.tables[table] {
		return fmt.Errorf("table %s already exists", table)
	}
	m.tables[table] = true
	m.applied = append(m.applied, table)
	for _, match := range ddlColumnRe.FindAllStringSubmatch(ddl, -1) {
		m.columns[table] = append(m.columns[table], match[1])
	}
	return nil
}

// mockMenuRepository implements secondary.MenuRepository for testing.
type mockMenuRepository struct {
	entries   map[string]*secondary.MenuEntryRecord
	inserts   int
	insertErr error
	listErr   error
}

func newMockMenuRepository() *mockMenuRepository {
	return &mockMenuRepository{entries: make(map[string]*secondary.MenuEntryRecord)}
}

func (m *mockMenuRepository) InsertIfAbsent(ctx context.Context, slug, label string) (*secondary.MenuEntryRecord, bool, error) {
	if m.insertErr != nil {
		return nil, false, m.insertErr
	}
	if e, ok := m.entries[slug]; ok {
		return e, false, nil
	}
	m.inserts++
	e := &secondary.MenuEntryRecord{
		ID:       int64(len(m.entries) + 1),
		Slug:     slug,
		Label:    label,
		OrderNo:  len(m.entries) + 1,
		IsActive: true,
	}
	m.entries[slug] = e
	return e, true, nil
}

func (m *mockMenuRepository) GetBySlug(ctx context.Context, slug string) (*secondary.MenuEntryRecord, error) {
	if e, ok := m.entries[slug]; ok {
		return e, nil
	}
	return nil, errors.New("menu entry not found")
}

func (m *mockMenuRepository) List(ctx context.Context, activeOnly bool) ([]*secondary.MenuEntryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.MenuEntryRecord
	for _, e := range m.entries {
		if activeOnly && !e.IsActive {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OrderNo < result[j].OrderNo })
	return result, nil
}

// mockWorkspace implements secondary.Workspace over an in-memory file map.
type mockWorkspace struct {
	files    map[string]string
	writes   int
	writeErr error
}

func newMockWorkspace() *mockWorkspace {
	return &mockWorkspace{files: make(map[string]string)}
}

func (m *mockWorkspace) Root() string {
	return "/project"
}

func (m *mockWorkspace) Exists(ctx context.Context, p string) (bool, error) {
	_, ok := m.files[p]
	return ok, nil
}

func (m *mockWorkspace) Write(ctx context.Context, p, content string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.files[p] = content
	return nil
}

func (m *mockWorkspace) InsertBefore(ctx context.Context, p, marker, snippet string) error {
	content, ok := m.files[p]
	if !ok {
		return fmt.Errorf("%s not found", p)
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.Contains(line, marker) {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines = append(lines[:i], append([]string{indent + snippet}, lines[i:]...)...)
			m.writes++
			m.files[p] = strings.Join(lines, "\n")
			return nil
		}
	}
	return fmt.Errorf("marker %q not found in %s", marker, p)
}

func (m *mockWorkspace) Contains(ctx context.Context, p, substr string) (bool, error) {
	return strings.Contains(m.files[p], substr), nil
}

func (m *mockWorkspace) Glob(ctx context.Context, pattern string) ([]string, error) {
	var matches []string
	for p := range m.files {
		ok, err := path.Match(pattern, p)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, p)
		}
	}
	sort.Strings(matches)
	return matches, nil
}
