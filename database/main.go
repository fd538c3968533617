package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cindyhont/jobly-backend/config"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var DB *sqlx.DB

// Setup connects to Postgres and makes sure the tables exist.
func Setup(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err = EnsureSchema(ctx, db); err != nil {
		panic(err)
	}

	DB = db
}

// EnsureSchema creates any missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		handle VARCHAR(25) PRIMARY KEY CHECK (handle = lower(handle)),
		name TEXT UNIQUE NOT NULL,
		num_employees INTEGER CHECK (num_employees >= 0),
		description TEXT NOT NULL,
		logo_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		salary INTEGER CHECK (salary >= 0),
		equity NUMERIC CHECK (equity <= 1.0),
		company_handle VARCHAR(25) NOT NULL
			REFERENCES companies ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS jobs_company_handle ON jobs (company_handle)`,
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(25) PRIMARY KEY,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL CHECK (position('@' IN email) > 1),
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		username VARCHAR(25)
			REFERENCES users ON DELETE CASCADE,
		job_id INTEGER
			REFERENCES jobs ON DELETE CASCADE,
		PRIMARY KEY (username, job_id)
	)`,
}

// IsUniqueViolation reports whether err comes from a unique or primary key
// constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

// ViolatedConstraint returns the name of the constraint a Postgres error reports,
// or "" for anything else.
func ViolatedConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// Null turns a nil pointer into SQL NULL and anything else into the value it points to.
func Null[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
