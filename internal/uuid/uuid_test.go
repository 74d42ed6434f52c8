package uuid

import (
	"sort"
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNewCorrelationIDIsVersion7(t *testing.T) {
	id := NewCorrelationID()
	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNewCorrelationIDUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	ids := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		id := NewCorrelationID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate correlation id %s after %d generations", id, i)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if !sort.StringsAreSorted(ids) {
		t.Error("expected correlation ids to sort in generation order")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(NewRequestID()) {
		t.Error("expected request id to be valid")
	}
	if IsValid("not-a-uuid") {
		t.Error("expected garbage to be invalid")
	}
}
