package database

import (
	"net/url"
	"strings"
	"testing"

	"staffaudit/internal/config"
)

func TestDSN(t *testing.T) {
	pg := config.DBConfig{
		Driver: config.DriverPostgres, Host: "db", Port: "5432",
		User: "rh", Password: "secret", Name: "rh", SSLMode: "disable", Schema: "staff",
	}
	dsn := DSN(pg)
	for _, part := range []string{"host=db", "port=5432", "user=rh", "dbname=rh", "sslmode=disable", "search_path=staff"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("expected DSN to contain %q, got %q", part, dsn)
		}
	}

	lite := config.DBConfig{Driver: config.DriverSQLite, Path: "/tmp/staff.db"}
	if got := DSN(lite); got != "/tmp/staff.db" {
		t.Errorf("expected sqlite path, got %q", got)
	}
}

func TestMigrationURL(t *testing.T) {
	pg := config.DBConfig{
		Driver: config.DriverPostgres, Host: "db", Port: "5432",
		User: "rh", Password: "p@ss", Name: "rh", SSLMode: "require", Schema: "staff",
	}
	u, err := url.Parse(MigrationURL(pg))
	if err != nil {
		t.Fatalf("invalid migration URL: %v", err)
	}
	if u.Scheme != "postgres" || u.Host != "db:5432" || u.Path != "/rh" {
		t.Errorf("unexpected URL %s", u)
	}
	if pw, _ := u.User.Password(); pw != "p@ss" {
		t.Errorf("expected password to round-trip, got %q", pw)
	}
	if u.Query().Get("search_path") != "staff" || u.Query().Get("sslmode") != "require" {
		t.Errorf("unexpected query %s", u.RawQuery)
	}

	lite := config.DBConfig{Driver: config.DriverSQLite, Path: "staff.db"}
	if got := MigrationURL(lite); got != "sqlite3://staff.db" {
		t.Errorf("expected sqlite3 URL, got %q", got)
	}
}
