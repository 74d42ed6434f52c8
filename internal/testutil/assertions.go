package testutil

import (
	"errors"
	"testing"

	apperrors "staffaudit/internal/errors"
	"staffaudit/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAuditEntry checks that entry snapshots employee for the given action.
func AssertAuditEntry(t *testing.T, entry models.AuditLogEntry, action models.AuditAction, employee *models.Employee) {
	t.Helper()

	if entry.Action != action {
		t.Errorf("expected action %s, got %s", action, entry.Action)
	}
	if entry.PartitionKey != employee.Department {
		t.Errorf("expected partition key %q, got %q", employee.Department, entry.PartitionKey)
	}
	if entry.RowKey == "" {
		t.Error("expected a correlation id as row key")
	}
	if entry.EmployeeID != employee.ID {
		t.Errorf("expected employee id %d, got %d", employee.ID, entry.EmployeeID)
	}
	got := models.EmployeeFields{
		Name:              entry.Name,
		Address:           entry.Address,
		Extension:         entry.Extension,
		ProfessionalEmail: entry.ProfessionalEmail,
		Department:        entry.Department,
		Salary:            entry.Salary,
	}
	if got != employee.Fields() {
		t.Errorf("audit snapshot %+v does not match employee %+v", got, employee.Fields())
	}
}
