// Package testutil provides an in-process database loaded with a small fixture
// for data-access and HTTP tests.
package testutil

import (
	"context"
	"testing"

	"github.com/cindyhont/jobly-backend/config"
	"github.com/cindyhont/jobly-backend/database"
	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/usermgmt"
	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// SecretKey signs the tokens handed out by Token.
const SecretKey = "test-secret"

// The DuckDB schema mirrors the Postgres one minus foreign keys and the unique
// company name, which DuckDB enforces differently on UPDATE.
var schema = []string{
	`CREATE SEQUENCE jobs_id_seq START 1`,
	`CREATE TABLE companies (
		handle VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		num_employees INTEGER CHECK (num_employees >= 0),
		description VARCHAR NOT NULL,
		logo_url VARCHAR
	)`,
	`CREATE TABLE jobs (
		id INTEGER PRIMARY KEY DEFAULT nextval('jobs_id_seq'),
		title VARCHAR NOT NULL,
		salary INTEGER CHECK (salary >= 0),
		equity DOUBLE CHECK (equity <= 1.0),
		company_handle VARCHAR NOT NULL
	)`,
	`CREATE TABLE users (
		username VARCHAR PRIMARY KEY,
		password VARCHAR NOT NULL,
		first_name VARCHAR NOT NULL,
		last_name VARCHAR NOT NULL,
		email VARCHAR NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE applications (
		username VARCHAR NOT NULL,
		job_id INTEGER NOT NULL,
		PRIMARY KEY (username, job_id)
	)`,
}

// Fixture is the seeded state of a test database.
type Fixture struct {
	DB *sqlx.DB
	// JobIDs maps the fixture job titles to their generated ids.
	JobIDs map[string]int
}

// NewDB opens an empty in-memory database with the application tables.
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("duckdb", "")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range schema {
		_, err = db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return db
}

// Setup opens a seeded database, installs it as database.DB and configures
// usermgmt for fast hashing. Both are restored when the test ends.
//
// Companies: c1 (1 employee), c2 (2), c3 (3).
// Jobs: j1 (10, equity 0.1, c1), j2 (20, 0.2, c1), j3 (30, no equity, c2),
// senior dev (40, equity 0, c3).
// Users: u1 (password1), admin (password2, admin). u1 applied to j1.
func Setup(t testing.TB) *Fixture {
	t.Helper()

	usermgmt.Setup(&config.Config{SecretKey: SecretKey, BcryptWorkFactor: bcrypt.MinCost})

	f := &Fixture{DB: NewDB(t), JobIDs: map[string]int{}}
	f.seed(t)

	previous := database.DB
	database.DB = f.DB
	t.Cleanup(func() { database.DB = previous })

	return f
}

func (f *Fixture) seed(t testing.TB) {
	ctx := context.Background()

	for i, handle := range []string{"c1", "c2", "c3"} {
		_, err := f.DB.ExecContext(ctx,
			`INSERT INTO companies (handle, name, num_employees, description, logo_url) VALUES ($1, $2, $3, $4, $5)`,
			handle, "C"+handle[1:], i+1, "Desc"+handle[1:], "http://"+handle+".img")
		require.NoError(t, err)
	}

	jobs := []struct {
		title   string
		salary  int
		equity  interface{}
		company string
	}{
		{"j1", 10, 0.1, "c1"},
		{"j2", 20, 0.2, "c1"},
		{"j3", 30, nil, "c2"},
		{"senior dev", 40, 0.0, "c3"},
	}
	for _, j := range jobs {
		var id int
		err := f.DB.QueryRowxContext(ctx,
			`INSERT INTO jobs (title, salary, equity, company_handle) VALUES ($1, $2, $3, $4) RETURNING id`,
			j.title, j.salary, j.equity, j.company).Scan(&id)
		require.NoError(t, err)
		f.JobIDs[j.title] = id
	}

	users := []struct {
		model.User
		password string
	}{
		{model.User{Username: "u1", FirstName: "U1F", LastName: "U1L", Email: "user1@user.com"}, "password1"},
		{model.User{Username: "admin", FirstName: "AdF", LastName: "AdL", Email: "admin@user.com", IsAdmin: true}, "password2"},
	}
	for _, u := range users {
		hash, err := usermgmt.GeneratePassword(u.password)
		require.NoError(t, err)
		_, err = f.DB.ExecContext(ctx,
			`INSERT INTO users (username, password, first_name, last_name, email, is_admin) VALUES ($1, $2, $3, $4, $5, $6)`,
			u.Username, hash, u.FirstName, u.LastName, u.Email, u.IsAdmin)
		require.NoError(t, err)
	}

	_, err := f.DB.ExecContext(ctx, `INSERT INTO applications (username, job_id) VALUES ($1, $2)`, "u1", f.JobIDs["j1"])
	require.NoError(t, err)
}

// Token returns a bearer token for username.
func (f *Fixture) Token(t testing.TB, username string, isAdmin bool) string {
	t.Helper()
	token, err := usermgmt.CreateToken(&model.User{Username: username, IsAdmin: isAdmin})
	require.NoError(t, err)
	return token
}
