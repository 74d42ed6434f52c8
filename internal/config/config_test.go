package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "AUDIT_BACKEND", "AUDIT_TABLE_NAME", "PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.DB.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.DB.Driver)
	}
	if cfg.Audit.Backend != AuditBackendMemory {
		t.Errorf("expected memory audit backend, got %s", cfg.Audit.Backend)
	}
	if cfg.Audit.TableName != "EmployeeLog" {
		t.Errorf("expected EmployeeLog table, got %s", cfg.Audit.TableName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/staff.db")
	t.Setenv("AUDIT_BACKEND", "redis")
	t.Setenv("AUDIT_CONNECTION_STRING", "redis://localhost:6379/0")
	t.Setenv("AUDIT_TABLE_NAME", "StaffLog")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.DB.Driver)
	}
	if cfg.DB.Path != "/tmp/staff.db" {
		t.Errorf("expected db path /tmp/staff.db, got %s", cfg.DB.Path)
	}
	if cfg.Audit.ConnectionString != "redis://localhost:6379/0" {
		t.Errorf("unexpected connection string %s", cfg.Audit.ConnectionString)
	}
	if cfg.Audit.TableName != "StaffLog" {
		t.Errorf("expected StaffLog table, got %s", cfg.Audit.TableName)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		DB:    DBConfig{Driver: DriverPostgres},
		Audit: AuditConfig{Backend: AuditBackendMemory, TableName: "EmployeeLog"},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.DB.Driver = "mysql" }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Audit.Backend = "cosmos" }, wantErr: true},
		{name: "azure without connection string", mutate: func(c *Config) { c.Audit.Backend = AuditBackendAzureTable }, wantErr: true},
		{name: "redis with connection string", mutate: func(c *Config) {
			c.Audit.Backend = AuditBackendRedis
			c.Audit.ConnectionString = "redis://localhost:6379"
		}},
		{name: "empty table name", mutate: func(c *Config) { c.Audit.TableName = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
