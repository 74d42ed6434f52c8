package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"staffaudit/internal/models"
)

// AzureTableStore writes audit entries to an Azure Table Storage table (or
// any service speaking the same protocol, such as Azurite).
type AzureTableStore struct {
	client *aztables.Client
	table  string
}

// NewAzureTableStore creates a client for table from a storage account
// connection string. No network call is made until EnsureReady.
func NewAzureTableStore(connectionString, table string) (*AzureTableStore, error) {
	if table == "" {
		return nil, fmt.Errorf("audit table name is required")
	}
	svc, err := aztables.NewServiceClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid table storage connection string: %w", err)
	}
	return &AzureTableStore{client: svc.NewClient(table), table: table}, nil
}

// EnsureReady creates the table, treating "already exists" as success.
func (s *AzureTableStore) EnsureReady(ctx context.Context) error {
	_, err := s.client.CreateTable(ctx, nil)
	if err == nil || isTableAlreadyExists(err) {
		return nil
	}
	return fmt.Errorf("failed to create audit table %q: %w", s.table, err)
}

// Upsert inserts or replaces the entity with the entry's keys.
func (s *AzureTableStore) Upsert(ctx context.Context, entry *models.AuditLogEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	raw, err := json.Marshal(toEDMEntity(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal audit entity: %w", err)
	}

	_, err = s.client.UpsertEntity(ctx, raw, &aztables.UpsertEntityOptions{
		UpdateMode: aztables.UpdateModeReplace,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert audit entity: %w", err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no long-lived resources.
func (s *AzureTableStore) Close() error { return nil }

// toEDMEntity maps an entry onto table properties. Timestamp is reserved by
// the service, so the entry time is stored as LoggedAt; 64-bit integers need
// explicit EDM typing to avoid being stored as Int32 or Double.
func toEDMEntity(entry *models.AuditLogEntry) aztables.EDMEntity {
	return aztables.EDMEntity{
		Entity: aztables.Entity{
			PartitionKey: entry.PartitionKey,
			RowKey:       entry.RowKey,
		},
		Properties: map[string]any{
			"Action":            string(entry.Action),
			"LoggedAt":          aztables.EDMDateTime(entry.Timestamp),
			"EmployeeId":        aztables.EDMInt64(entry.EmployeeID),
			"Name":              entry.Name,
			"Address":           entry.Address,
			"Extension":         entry.Extension,
			"ProfessionalEmail": entry.ProfessionalEmail,
			"Department":        entry.Department,
			"Salary":            aztables.EDMInt64(entry.Salary),
			"Snapshot":          entry.Snapshot,
		},
	}
}

func isTableAlreadyExists(err error) bool {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return false
	}
	return respErr.ErrorCode == string(aztables.TableAlreadyExists) || respErr.StatusCode == http.StatusConflict
}
