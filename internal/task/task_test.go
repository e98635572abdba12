package task

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	got := New("Buy milk", "", "", "")
	if got.Priority != PriorityMedium {
		t.Errorf("Priority: got %q, want %q", got.Priority, PriorityMedium)
	}
	if got.Category != DefaultCategory {
		t.Errorf("Category: got %q, want %q", got.Category, DefaultCategory)
	}
	if got.Completed {
		t.Error("new task must not be completed")
	}
	created, err := got.CreatedTime()
	if err != nil {
		t.Fatalf("CreatedTime failed: %v", err)
	}
	if d := time.Since(created); d < 0 || d > 2*time.Minute {
		t.Errorf("CreatedAt not close to now: %s (%s ago)", got.CreatedAt, d)
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range []Priority{"", "urgent", "HIGH"} {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestCreatedTimeInvalid(t *testing.T) {
	if _, err := (Task{CreatedAt: "yesterday"}).CreatedTime(); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}
