package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"staffaudit/internal/auditlog"
	"staffaudit/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestEmployee creates an employee in the given department.
func CreateTestEmployee(t *testing.T, db *gorm.DB, department string) *models.Employee {
	t.Helper()

	n := nextID()
	employee := &models.Employee{
		Name:              fmt.Sprintf("Employee %d", n),
		Address:           fmt.Sprintf("Street %d", n),
		Extension:         fmt.Sprintf("%04d", n),
		ProfessionalEmail: fmt.Sprintf("employee%d@staff.test", n),
		Department:        department,
		Salary:            5000,
	}
	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("failed to create test employee: %v", err)
	}
	return employee
}

// NewReadyMemoryStore returns a provisioned in-memory audit store.
func NewReadyMemoryStore(t *testing.T) *auditlog.MemoryStore {
	t.Helper()

	store := auditlog.NewMemoryStore("EmployeeLog")
	if err := store.EnsureReady(context.Background()); err != nil {
		t.Fatalf("failed to provision audit store: %v", err)
	}
	return store
}
