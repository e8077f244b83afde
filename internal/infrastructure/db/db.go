// Package db provides the GORM-backed persistence layer. The database is
// selected by the DATABASE_URL scheme: mysql:// in deployment (the platform
// injects it), postgres:// where teams bring their own instance, and a local
// SQLite file when nothing is configured.
package db

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Pool settings for MySQL, matching the original service's engine tuning
// (pool of 10 with 20 overflow, 300s connection recycle, 60s I/O timeouts).
const (
	mysqlMaxIdleConns    = 10
	mysqlMaxOpenConns    = 30
	mysqlConnMaxLifetime = 300 * time.Second
	mysqlIOTimeout       = 60 * time.Second
)

// Connect opens the database named by databaseURL and configures pooling.
func Connect(databaseURL string) (*gorm.DB, error) {
	dialector, isMySQL, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isMySQL {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxIdleConns(mysqlMaxIdleConns)
		sqlDB.SetMaxOpenConns(mysqlMaxOpenConns)
		sqlDB.SetConnMaxLifetime(mysqlConnMaxLifetime)
	}

	return gdb, nil
}

// Migrate creates or updates the schema. The caller decides whether a
// failure is fatal; the original service logged and kept serving.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&UserModel{},
		&ProjectModel{},
		&TeamMemberModel{},
		&TaskModel{},
		&IdempotencyModel{},
	)
}

func dialectorFor(databaseURL string) (gorm.Dialector, bool, error) {
	switch {
	case strings.HasPrefix(databaseURL, "mysql://"):
		dsn, err := mysqlDSN(databaseURL)
		if err != nil {
			return nil, false, err
		}
		return mysql.Open(dsn), true, nil

	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), false, nil

	case strings.HasPrefix(databaseURL, "sqlite://"):
		return sqlite.Open(sqlitePath(databaseURL)), false, nil

	default:
		return nil, false, fmt.Errorf("unsupported DATABASE_URL scheme in %q", redact(databaseURL))
	}
}

// mysqlDSN converts a mysql:// URL into the DSN form the driver expects.
func mysqlDSN(databaseURL string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("malformed DATABASE_URL: %w", err)
	}
	if u.Host == "" || strings.TrimPrefix(u.Path, "/") == "" {
		return "", fmt.Errorf("malformed DATABASE_URL: missing host or database name")
	}

	cfg := mysqldrv.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	cfg.ParseTime = true
	cfg.Timeout = mysqlIOTimeout
	cfg.ReadTimeout = mysqlIOTimeout
	cfg.WriteTimeout = mysqlIOTimeout

	return cfg.FormatDSN(), nil
}

func sqlitePath(databaseURL string) string {
	path := strings.TrimPrefix(databaseURL, "sqlite://")
	// Tolerate the sqlite:///./file.db form.
	path = strings.TrimPrefix(path, "/./")
	if path == "" {
		path = "workflowpro.db"
	}
	return path
}

// redact strips credentials before a URL lands in an error message.
func redact(databaseURL string) string {
	if u, err := url.Parse(databaseURL); err == nil && u.User != nil {
		u.User = url.User("***")
		return u.String()
	}
	return databaseURL
}
