package uuid

import (
	"strings"
	"testing"
)

func TestNewIsVersion7(t *testing.T) {
	id := New()
	if _, err := Parse(id); err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if id[14] != '7' {
		t.Errorf("expected version nibble 7, got %q in %s", id[14], id)
	}
}

func TestNewIsTimeOrdered(t *testing.T) {
	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		if next == prev {
			t.Fatalf("duplicate id %s", next)
		}
		// The first 48 bits are the millisecond timestamp.
		if next[:13] < prev[:13] {
			t.Fatalf("ids went backwards: %s then %s", prev, next)
		}
		prev = next
	}
}

func TestParse(t *testing.T) {
	upper := strings.ToUpper(New())
	got, err := Parse(upper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != strings.ToLower(upper) {
		t.Errorf("expected canonical lower-case id, got %s", got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for malformed id")
	}
}
