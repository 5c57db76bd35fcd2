package request

import (
	"strings"
	"testing"

	"github.com/dealey-labs/jfkdex/internal/domain/record"
)

func intPtr(i int) *int { return &i }

func TestNewText_Valid(t *testing.T) {
	r, err := NewText("oswald mexico city", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "oswald mexico city" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.Filters() != nil {
		t.Errorf("Filters() = %v, want nil", r.Filters())
	}
	if r.Limit() != nil {
		t.Errorf("Limit() = %v, want nil", r.Limit())
	}
}

func TestNewText_EmptyQuery(t *testing.T) {
	_, err := NewText("", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "query is required") {
		t.Errorf("error = %q", err)
	}
}

func TestNewVector_EmptyQuery(t *testing.T) {
	_, err := NewVector("", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "query is required") {
		t.Errorf("error = %q", err)
	}
}

func TestLimitBounds(t *testing.T) {
	tests := []struct {
		name    string
		limit   *int
		wantErr bool
	}{
		{"absent", nil, false},
		{"min", intPtr(1), false},
		{"max", intPtr(100), false},
		{"typical", intPtr(25), false},
		{"zero is out of range", intPtr(0), true},
		{"negative", intPtr(-5), true},
		{"over max", intPtr(101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewText("q", nil, tt.limit)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), "between 1 and 100") {
					t.Errorf("error = %q", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// An accepted limit is carried as sent, never defaulted: absence is the
// backend's signal to apply its own default.
func TestLimit_CarriedNotDefaulted(t *testing.T) {
	r, err := NewVector("q", nil, intPtr(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() == nil || *r.Limit() != 7 {
		t.Errorf("Limit() = %v, want 7", r.Limit())
	}

	r2, err := NewVector("q", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r2.Limit() != nil {
		t.Errorf("Limit() = %v, want nil", r2.Limit())
	}
}

func TestNewMetadata_RequiresFilters(t *testing.T) {
	_, err := NewMetadata(nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "metadata filter is required") {
		t.Errorf("error = %q", err)
	}
}

func TestNewMetadata_EmptyFiltersAccepted(t *testing.T) {
	r, err := NewMetadata(record.Filters{}, intPtr(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Filters().IsEmpty() {
		t.Errorf("Filters() = %v, want empty", r.Filters())
	}
}

func TestNewPages(t *testing.T) {
	r, err := NewPages([]string{"104-10004-10213_page_9", "104-10004-10213_page_10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.IDs()) != 2 {
		t.Errorf("IDs() len = %d", len(r.IDs()))
	}
}

func TestNewPages_NilRejectedEmptyAccepted(t *testing.T) {
	if _, err := NewPages(nil); err == nil {
		t.Fatal("expected error for absent page_ids")
	}

	r, err := NewPages([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.IDs()) != 0 {
		t.Errorf("IDs() = %v", r.IDs())
	}
}
