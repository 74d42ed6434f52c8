package services

import (
	"context"
	"time"

	"staffaudit/internal/auditlog"
	"staffaudit/internal/models"
	"staffaudit/internal/uuid"
)

// auditService turns employee mutations into audit log entries.
type auditService struct {
	store auditlog.Store
	newID func() string
	now   func() time.Time
}

// NewAuditService creates a new AuditServicer writing to store. The store is
// expected to be provisioned already.
func NewAuditService(store auditlog.Store) AuditServicer {
	return &auditService{
		store: store,
		newID: uuid.NewCorrelationID,
		now:   time.Now,
	}
}

// Record snapshots the employee, tags it with a fresh correlation id and
// upserts it. The entry is returned even when the write fails so callers can
// report which row key was lost.
func (s *auditService) Record(ctx context.Context, action models.AuditAction, employee *models.Employee) (*models.AuditLogEntry, error) {
	entry, err := models.NewAuditLogEntry(employee, action, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Upsert(ctx, entry); err != nil {
		return entry, err
	}
	return entry, nil
}
