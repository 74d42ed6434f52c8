package services

import (
	"context"

	"staffaudit/internal/models"
)

// EmployeeServicer is the Record Store: keyed access to employee rows.
type EmployeeServicer interface {
	GetEmployeeByID(ctx context.Context, id uint) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	// UpdateEmployee persists an employee whose fields the caller has already merged.
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, employee *models.Employee) error
}

// AuditServicer records employee mutations in the audit log store.
type AuditServicer interface {
	Record(ctx context.Context, action models.AuditAction, employee *models.Employee) (*models.AuditLogEntry, error)
}
