package auditlog

import (
	"context"
	"sort"
	"sync"

	"staffaudit/internal/models"
)

// MemoryStore keeps audit entries in process memory, partitioned the same way
// the remote backends are. It backs local development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	table string
	// Structure: [partitionKey][rowKey]entry
	data  map[string]map[string]models.AuditLogEntry
	ready bool
}

// NewMemoryStore creates an empty in-memory table.
func NewMemoryStore(table string) *MemoryStore {
	return &MemoryStore{table: table}
}

// EnsureReady creates the table on first call.
func (m *MemoryStore) EnsureReady(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		m.data = make(map[string]map[string]models.AuditLogEntry)
	}
	m.ready = true
	return nil
}

// Upsert stores a copy of the entry.
func (m *MemoryStore) Upsert(_ context.Context, entry *models.AuditLogEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready {
		return ErrTableNotReady
	}
	if m.data[entry.PartitionKey] == nil {
		m.data[entry.PartitionKey] = make(map[string]models.AuditLogEntry)
	}
	m.data[entry.PartitionKey][entry.RowKey] = *entry
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// Table returns the table name the store was created with.
func (m *MemoryStore) Table() string { return m.table }

// Entries returns every stored entry ordered by row key. The service never
// reads the audit log; this exists for inspection in tests and dev tooling.
func (m *MemoryStore) Entries() []models.AuditLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var list []models.AuditLogEntry
	for _, rows := range m.data {
		for _, e := range rows {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RowKey < list[j].RowKey })
	return list
}

// Partition returns the entries stored under one partition key.
func (m *MemoryStore) Partition(partitionKey string) []models.AuditLogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := m.data[partitionKey]
	list := make([]models.AuditLogEntry, 0, len(rows))
	for _, e := range rows {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RowKey < list[j].RowKey })
	return list
}
