package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockArchivePinger struct {
	err error
}

func (m *mockArchivePinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockArchivePinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["archive"] != CheckOK {
		t.Errorf("expected archive %q, got %q", CheckOK, r.Checks["archive"])
	}
}

func TestCheck_ArchiveError(t *testing.T) {
	svc := New(&mockArchivePinger{err: errors.New("conn refused")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["archive"] != CheckError {
		t.Errorf("expected archive %q, got %q", CheckError, r.Checks["archive"])
	}
}
