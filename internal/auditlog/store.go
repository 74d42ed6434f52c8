// Package auditlog implements the key-value store that receives one entry per
// employee mutation. Entries are addressed by (partition key, row key) inside
// a named table and are only ever written, never read back by the service.
package auditlog

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"staffaudit/internal/config"
	"staffaudit/internal/models"
)

var (
	// ErrInvalidEntry is returned when an entry lacks the keys needed to store it.
	ErrInvalidEntry = errors.New("audit entry is missing its row key")
	// ErrTableNotReady is returned by backends that track provisioning when
	// Upsert is called before EnsureReady.
	ErrTableNotReady = errors.New("audit table has not been provisioned")
)

// Store is the contract every audit log backend fulfils.
type Store interface {
	// EnsureReady provisions the backing table if it does not exist. It is
	// idempotent and meant to be called once during startup.
	EnsureReady(ctx context.Context) error
	// Upsert writes the entry, replacing any entity with the same keys.
	Upsert(ctx context.Context, entry *models.AuditLogEntry) error
	// Close releases client resources.
	Close() error
}

// New builds the backend selected by cfg and wraps it with tracing. A nil
// TracerProvider disables tracing.
func New(cfg config.AuditConfig, tp trace.TracerProvider) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Backend {
	case config.AuditBackendAzureTable:
		store, err = NewAzureTableStore(cfg.ConnectionString, cfg.TableName)
	case config.AuditBackendRedis:
		store, err = NewRedisStore(cfg.ConnectionString, cfg.TableName, WithKeyPrefix(cfg.KeyPrefix))
	case config.AuditBackendMemory:
		store = NewMemoryStore(cfg.TableName)
	default:
		return nil, fmt.Errorf("unsupported audit backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return WithTracing(store, cfg.Backend, cfg.TableName, tp), nil
}

func validateEntry(entry *models.AuditLogEntry) error {
	if entry == nil || entry.RowKey == "" {
		return ErrInvalidEntry
	}
	return nil
}
