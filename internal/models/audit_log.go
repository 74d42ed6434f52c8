package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AuditAction is the kind of mutation an audit entry records.
type AuditAction string

const (
	AuditActionInsertion AuditAction = "Insertion"
	AuditActionUpdate    AuditAction = "Update"
	AuditActionRemoval   AuditAction = "Removal"
)

// Valid reports whether a is one of the known actions.
func (a AuditAction) Valid() bool {
	switch a {
	case AuditActionInsertion, AuditActionUpdate, AuditActionRemoval:
		return true
	}
	return false
}

// AuditLogEntry is a denormalized snapshot of an Employee at the moment of a
// mutation. It lives in the key-value audit store, keyed by PartitionKey
// (the department) and RowKey (a correlation id unique to the mutation).
type AuditLogEntry struct {
	PartitionKey string      `json:"PartitionKey"`
	RowKey       string      `json:"RowKey"`
	Action       AuditAction `json:"Action"`
	Timestamp    time.Time   `json:"Timestamp"`

	EmployeeID        uint   `json:"EmployeeId"`
	Name              string `json:"Name"`
	Address           string `json:"Address"`
	Extension         string `json:"Extension"`
	ProfessionalEmail string `json:"ProfessionalEmail"`
	Department        string `json:"Department"`
	Salary            int64  `json:"Salary"`

	// Snapshot is the employee serialized as the API returns it.
	Snapshot string `json:"Snapshot"`
}

// NewAuditLogEntry builds the entry for a mutation of e. The partition key is
// the employee's department as of the snapshot.
func NewAuditLogEntry(e *Employee, action AuditAction, correlationID string, at time.Time) (*AuditLogEntry, error) {
	if e == nil {
		return nil, fmt.Errorf("audit entry requires an employee")
	}
	if !action.Valid() {
		return nil, fmt.Errorf("unknown audit action %q", action)
	}
	if correlationID == "" {
		return nil, fmt.Errorf("audit entry requires a correlation id")
	}

	snapshot, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize employee snapshot: %w", err)
	}

	return &AuditLogEntry{
		PartitionKey:      e.Department,
		RowKey:            correlationID,
		Action:            action,
		Timestamp:         at.UTC(),
		EmployeeID:        e.ID,
		Name:              e.Name,
		Address:           e.Address,
		Extension:         e.Extension,
		ProfessionalEmail: e.ProfessionalEmail,
		Department:        e.Department,
		Salary:            e.Salary,
		Snapshot:          string(snapshot),
	}, nil
}
