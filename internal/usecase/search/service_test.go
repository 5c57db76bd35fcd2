package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dealey-labs/jfkdex"
	"github.com/dealey-labs/jfkdex/internal/domain"
	"github.com/dealey-labs/jfkdex/internal/domain/record"
	"github.com/dealey-labs/jfkdex/internal/domain/search/filter"
	"github.com/dealey-labs/jfkdex/internal/domain/search/request"
)

// --- Mocks ---

type mockBackend struct {
	result json.RawMessage
	err    error

	lastOp    string
	lastQuery jfkdex.SearchQuery
}

func (m *mockBackend) Text(_ context.Context, q jfkdex.SearchQuery) (json.RawMessage, error) {
	m.lastOp, m.lastQuery = "text", q
	return m.result, m.err
}

func (m *mockBackend) Vector(_ context.Context, q jfkdex.SearchQuery) (json.RawMessage, error) {
	m.lastOp, m.lastQuery = "vector", q
	return m.result, m.err
}

func (m *mockBackend) Metadata(_ context.Context, q jfkdex.SearchQuery) (json.RawMessage, error) {
	m.lastOp, m.lastQuery = "metadata", q
	return m.result, m.err
}

func intPtr(i int) *int { return &i }

func mustFilters(t *testing.T, src string) record.Filters {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	f, err := record.ParseFilters(m, record.SearchFields)
	if err != nil {
		t.Fatalf("parse filters: %v", err)
	}
	return f
}

// --- Text ---

func TestText_RelaysBackendResult(t *testing.T) {
	backend := &mockBackend{result: json.RawMessage(`{"total": 1}`)}
	svc := New(backend)

	req, err := request.NewText("oswald", nil, intPtr(10))
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	res, err := svc.Text(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res) != `{"total": 1}` {
		t.Errorf("result = %s", res)
	}
	if backend.lastOp != "text" {
		t.Errorf("backend op = %q", backend.lastOp)
	}
	if backend.lastQuery.Query != "oswald" {
		t.Errorf("query = %q", backend.lastQuery.Query)
	}
	if backend.lastQuery.Limit != 10 {
		t.Errorf("limit = %d", backend.lastQuery.Limit)
	}
	if backend.lastQuery.Metadata != nil {
		t.Errorf("metadata = %v, want nil", backend.lastQuery.Metadata)
	}
}

func TestText_WrapsBackendFailure(t *testing.T) {
	cause := errors.New("timeout")
	svc := New(&mockBackend{err: cause})

	req, _ := request.NewText("oswald", nil, nil)
	_, err := svc.Text(context.Background(), req)
	if err == nil {
		t.Fatal("expected error")
	}

	var opErr *domain.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *domain.OpError, got %T", err)
	}
	if opErr.Op != "text search" {
		t.Errorf("Op = %q", opErr.Op)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to survive")
	}
}

// Absence must survive the trip to the wire query: no limit means zero
// (omitted), no filters means nil metadata.
func TestText_AbsentFieldsStayAbsent(t *testing.T) {
	backend := &mockBackend{result: json.RawMessage(`{}`)}
	svc := New(backend)

	req, _ := request.NewText("ruby", nil, nil)
	if _, err := svc.Text(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.lastQuery.Limit != 0 {
		t.Errorf("limit = %d, want 0", backend.lastQuery.Limit)
	}
	if backend.lastQuery.Metadata != nil {
		t.Errorf("metadata = %v, want nil", backend.lastQuery.Metadata)
	}
}

func TestText_ForwardsFilters(t *testing.T) {
	backend := &mockBackend{result: json.RawMessage(`{}`)}
	svc := New(backend)

	filters := mustFilters(t, `{"originator": {"operator": "eq", "value": "CIA"}}`)
	req, err := request.NewText("oswald", filters, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if _, err := svc.Text(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent, ok := backend.lastQuery.Metadata.(record.Filters)
	if !ok {
		t.Fatalf("metadata type = %T", backend.lastQuery.Metadata)
	}
	if sent["originator"].Operator() != filter.OpEq {
		t.Errorf("originator op = %q", sent["originator"].Operator())
	}
}

// --- Vector ---

func TestVector_OpIdentity(t *testing.T) {
	cause := errors.New("model cold start")
	svc := New(&mockBackend{err: cause})

	req, _ := request.NewVector("grassy knoll", nil, nil)
	_, err := svc.Vector(context.Background(), req)

	var opErr *domain.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *domain.OpError, got %T", err)
	}
	if opErr.Op != "vector search" {
		t.Errorf("Op = %q", opErr.Op)
	}
}

func TestVector_RelaysBackendResult(t *testing.T) {
	backend := &mockBackend{result: json.RawMessage(`{"results": []}`)}
	svc := New(backend)

	req, _ := request.NewVector("grassy knoll", nil, intPtr(5))
	res, err := svc.Vector(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.lastOp != "vector" {
		t.Errorf("backend op = %q", backend.lastOp)
	}
	if string(res) != `{"results": []}` {
		t.Errorf("result = %s", res)
	}
}

// --- Metadata ---

func TestMetadata_NoQueryText(t *testing.T) {
	backend := &mockBackend{result: json.RawMessage(`{}`)}
	svc := New(backend)

	filters := mustFilters(t, `{"document_date": {"operator": "gte", "value": "1963-01-01"}}`)
	req, err := request.NewMetadata(filters, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if _, err := svc.Metadata(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.lastOp != "metadata" {
		t.Errorf("backend op = %q", backend.lastOp)
	}
	if backend.lastQuery.Query != "" {
		t.Errorf("query = %q, want empty", backend.lastQuery.Query)
	}
	if backend.lastQuery.Metadata == nil {
		t.Error("metadata missing from wire query")
	}
}

func TestMetadata_OpIdentity(t *testing.T) {
	svc := New(&mockBackend{err: errors.New("boom")})

	req, _ := request.NewMetadata(record.Filters{}, nil)
	_, err := svc.Metadata(context.Background(), req)

	var opErr *domain.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *domain.OpError, got %T", err)
	}
	if opErr.Op != "metadata search" {
		t.Errorf("Op = %q", opErr.Op)
	}
}
