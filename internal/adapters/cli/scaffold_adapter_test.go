package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/scaffold"
)

// mockScaffoldService implements primary.ScaffoldService for testing
type mockScaffoldService struct {
	generateFn func(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error)

	// Track calls for verification
	lastReq       primary.GenerateModuleRequest
	planCalls     int
	generateCalls int
}

func (m *mockScaffoldService) GenerateModule(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	m.generateCalls++
	m.lastReq = req
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return sampleResponse(req.DryRun), nil
}

func (m *mockScaffoldService) PlanModule(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	m.planCalls++
	m.lastReq = req
	return sampleResponse(true), nil
}

func sampleResponse(dryRun bool) *primary.GenerateModuleResponse {
	resp := &primary.GenerateModuleResponse{
		Module: "Product",
		Table:  "products",
		Fields: []scaffold.FieldSpec{
			{Identifier: "title", Type: scaffold.TypeText},
			{Identifier: "price", Type: scaffold.TypeInteger},
		},
		Files: []primary.FileChange{
			{Path: "internal/models/product.go", Action: primary.FileCreated},
			{Path: "views/layouts/admin.html", Action: primary.FileSkipped},
			{Path: "internal/routes/admin.go", Action: primary.FileModified},
		},
		AppliedTables: []string{"products"},
		DryRun:        dryRun,
		NextSteps:     []string{"Visit /admin/products"},
	}
	if !dryRun {
		resp.Menu = &primary.MenuEntry{Slug: "products", Label: "Product", OrderNo: 3}
		resp.MenuInserted = true
	}
	return resp
}

func TestScaffoldAdapter_Make(t *testing.T) {
	mock := &mockScaffoldService{}
	var buf bytes.Buffer
	adapter := NewScaffoldAdapter(mock, &buf)

	_, err := adapter.Make(context.Background(), primary.GenerateModuleRequest{Name: "Product"})
	if err != nil {
		t.Fatalf("Make() error = %v", err)
	}

	if mock.generateCalls != 1 || mock.planCalls != 0 {
		t.Errorf("expected GenerateModule to be called once, got generate=%d plan=%d", mock.generateCalls, mock.planCalls)
	}

	out := buf.String()
	for _, want := range []string{
		"Module Product (table products) with fields: title(text), price(integer)",
		"Table products",
		"Created  internal/models/product.go",
		"Exists   views/layouts/admin.html",
		"Modified internal/routes/admin.go",
		"Menu entry products (order 3)",
		"1. Visit /admin/products",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "dry-run") {
		t.Error("real run should not mention dry-run")
	}
}

func TestScaffoldAdapter_Plan(t *testing.T) {
	mock := &mockScaffoldService{}
	var buf bytes.Buffer
	adapter := NewScaffoldAdapter(mock, &buf)

	resp, err := adapter.Plan(context.Background(), primary.GenerateModuleRequest{Name: "Product"})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if mock.planCalls != 1 || mock.generateCalls != 0 {
		t.Errorf("expected PlanModule to be called once, got generate=%d plan=%d", mock.generateCalls, mock.planCalls)
	}
	if !mock.lastReq.DryRun || !resp.DryRun {
		t.Error("expected dry run request and response")
	}
	if !strings.Contains(buf.String(), "dry-run mode") {
		t.Errorf("expected dry-run notice, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Menu entry") {
		t.Error("dry run should not report a menu entry")
	}
}

func TestScaffoldAdapter_MakeError(t *testing.T) {
	mock := &mockScaffoldService{
		generateFn: func(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
			return nil, errors.New("module already exists")
		},
	}
	var buf bytes.Buffer
	adapter := NewScaffoldAdapter(mock, &buf)

	if _, err := adapter.Make(context.Background(), primary.GenerateModuleRequest{Name: "Product"}); err == nil {
		t.Error("expected error, got nil")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got %q", buf.String())
	}
}
