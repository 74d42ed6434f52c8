package services

import (
	"context"
	"errors"
	"testing"

	"staffaudit/internal/models"
	"staffaudit/internal/testutil"
)

type failingAuditStore struct{ err error }

func (f failingAuditStore) EnsureReady(context.Context) error                  { return nil }
func (f failingAuditStore) Upsert(context.Context, *models.AuditLogEntry) error { return f.err }
func (f failingAuditStore) Close() error                                       { return nil }

func TestAuditServiceRecord(t *testing.T) {
	t.Run("writes_one_entry_per_call", func(t *testing.T) {
		store := testutil.NewReadyMemoryStore(t)
		svc := NewAuditService(store)
		employee := &models.Employee{Base: models.Base{ID: 1}, Name: "Ana", Department: "HR", Salary: 5000}

		entry, err := svc.Record(context.Background(), models.AuditActionInsertion, employee)
		testutil.AssertNoError(t, err)

		entries := store.Entries()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].RowKey != entry.RowKey {
			t.Errorf("expected stored row key %s, got %s", entry.RowKey, entries[0].RowKey)
		}
		testutil.AssertAuditEntry(t, entries[0], models.AuditActionInsertion, employee)
	})

	t.Run("correlation_ids_are_unique", func(t *testing.T) {
		store := testutil.NewReadyMemoryStore(t)
		svc := NewAuditService(store)
		employee := &models.Employee{Base: models.Base{ID: 1}, Department: "HR"}

		for i := 0; i < 50; i++ {
			if _, err := svc.Record(context.Background(), models.AuditActionUpdate, employee); err != nil {
				t.Fatalf("record %d: %v", i, err)
			}
		}

		seen := make(map[string]bool)
		for _, e := range store.Entries() {
			if seen[e.RowKey] {
				t.Fatalf("duplicate correlation id %s", e.RowKey)
			}
			seen[e.RowKey] = true
		}
		if len(seen) != 50 {
			t.Errorf("expected 50 entries, got %d", len(seen))
		}
	})

	t.Run("returns_entry_on_store_failure", func(t *testing.T) {
		boom := errors.New("table unavailable")
		svc := NewAuditService(failingAuditStore{err: boom})
		employee := &models.Employee{Base: models.Base{ID: 3}, Department: "Ops"}

		entry, err := svc.Record(context.Background(), models.AuditActionRemoval, employee)
		if !errors.Is(err, boom) {
			t.Fatalf("expected store error, got %v", err)
		}
		if entry == nil || entry.RowKey == "" {
			t.Fatal("expected the unwritten entry to be returned")
		}
	})

	t.Run("rejects_unknown_action", func(t *testing.T) {
		store := testutil.NewReadyMemoryStore(t)
		svc := NewAuditService(store)

		_, err := svc.Record(context.Background(), models.AuditAction("Archive"), &models.Employee{})
		if err == nil {
			t.Fatal("expected error for unknown action")
		}
		if len(store.Entries()) != 0 {
			t.Error("no entry should be written for an invalid action")
		}
	})
}
