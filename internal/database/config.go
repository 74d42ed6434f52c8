package database

import (
	"fmt"
	"net/url"

	"staffaudit/internal/config"
)

// DSN returns the driver-specific connection string used by GORM.
func DSN(c config.DBConfig) string {
	if c.Driver == config.DriverSQLite {
		return c.Path
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	if c.Schema != "" {
		dsn += " search_path=" + c.Schema
	}
	return dsn
}

// MigrationURL returns the golang-migrate database URL for the configuration.
func MigrationURL(c config.DBConfig) string {
	if c.Driver == config.DriverSQLite {
		return "sqlite3://" + c.Path
	}

	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	if c.Schema != "" {
		q.Set("search_path", c.Schema)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}
