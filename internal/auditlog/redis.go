package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"staffaudit/internal/models"
)

const defaultKeyPrefix = "staffaudit"

// RedisStore maps the partition/row model onto Redis hashes: one hash per
// (table, partition key), one field per row key holding the JSON entity.
type RedisStore struct {
	client *goredis.Client
	table  string
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix namespaces every key written by the store.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if p := strings.TrimSpace(prefix); p != "" {
			s.prefix = p
		}
	}
}

// WithRedisClient injects an existing client instead of dialing one.
func WithRedisClient(client *goredis.Client) RedisOption {
	return func(s *RedisStore) {
		if client != nil {
			s.client = client
		}
	}
}

// NewRedisStore creates a store from a redis:// URL or a bare host:port.
func NewRedisStore(connectionString, table string, opts ...RedisOption) (*RedisStore, error) {
	if strings.TrimSpace(table) == "" {
		return nil, fmt.Errorf("audit table name is required")
	}

	s := &RedisStore{table: table, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		if strings.TrimSpace(connectionString) == "" {
			return nil, fmt.Errorf("redis connection string is required")
		}
		var redisOpts *goredis.Options
		if strings.Contains(connectionString, "://") {
			parsed, err := goredis.ParseURL(connectionString)
			if err != nil {
				return nil, fmt.Errorf("invalid redis connection string: %w", err)
			}
			redisOpts = parsed
		} else {
			redisOpts = &goredis.Options{Addr: connectionString}
		}
		s.client = goredis.NewClient(redisOpts)
	}
	return s, nil
}

// EnsureReady verifies connectivity and registers the table.
func (s *RedisStore) EnsureReady(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	if err := s.client.SAdd(ctx, s.tablesKey(), s.table).Err(); err != nil {
		return fmt.Errorf("failed to register audit table %q: %w", s.table, err)
	}
	return nil
}

// Upsert writes the entity and indexes its partition.
func (s *RedisStore) Upsert(ctx context.Context, entry *models.AuditLogEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.partitionKey(entry.PartitionKey), entry.RowKey, string(raw))
	pipe.SAdd(ctx, s.partitionsKey(), entry.PartitionKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert audit entry in redis: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) tablesKey() string {
	return s.prefix + ":tables"
}

func (s *RedisStore) partitionsKey() string {
	return fmt.Sprintf("%s:%s:partitions", s.prefix, s.table)
}

func (s *RedisStore) partitionKey(partition string) string {
	return fmt.Sprintf("%s:%s:p:%s", s.prefix, s.table, partition)
}
