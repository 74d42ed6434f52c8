package auditlog

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffaudit/internal/models"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	prefix := "staffaudit-test-" + uuid.NewString()

	s, err := NewRedisStore(addr, "EmployeeLog", WithKeyPrefix(prefix))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.EnsureReady(ctx); err != nil {
		t.Skipf("redis unavailable at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		keys, _ := s.client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			_ = s.client.Del(ctx, keys...).Err()
		}
		_ = s.Close()
	})
	return s
}

func TestNewRedisStore_Validation(t *testing.T) {
	_, err := NewRedisStore("redis://localhost:6379", "")
	assert.Error(t, err, "empty table name")

	_, err = NewRedisStore("", "EmployeeLog")
	assert.Error(t, err, "empty connection string")

	_, err = NewRedisStore("redis://localhost:6379/not-a-db", "EmployeeLog")
	assert.Error(t, err, "malformed URL")

	s, err := NewRedisStore("localhost:6379", "EmployeeLog", WithKeyPrefix("  rh  "))
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "rh:EmployeeLog:p:HR", s.partitionKey("HR"))
	assert.Equal(t, "rh:EmployeeLog:partitions", s.partitionsKey())
	assert.Equal(t, "rh:tables", s.tablesKey())
}

func TestRedisStore_EnsureReadyAndUpsert(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	// Provisioning twice is harmless.
	require.NoError(t, s.EnsureReady(ctx))
	isMember, err := s.client.SIsMember(ctx, s.tablesKey(), "EmployeeLog").Result()
	require.NoError(t, err)
	assert.True(t, isMember)

	entry := newEntry(t, "HR", uuid.NewString(), models.AuditActionInsertion)
	require.NoError(t, s.Upsert(ctx, entry))

	raw, err := s.client.HGet(ctx, s.partitionKey("HR"), entry.RowKey).Result()
	require.NoError(t, err)

	var stored models.AuditLogEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, entry.RowKey, stored.RowKey)
	assert.Equal(t, models.AuditActionInsertion, stored.Action)
	assert.Equal(t, int64(5000), stored.Salary)

	partitions, err := s.client.SMembers(ctx, s.partitionsKey()).Result()
	require.NoError(t, err)
	assert.Contains(t, partitions, "HR")
}
