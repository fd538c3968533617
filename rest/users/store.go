package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/database"
	"github.com/cindyhont/jobly-backend/log"
	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
	"github.com/cindyhont/jobly-backend/usermgmt"
)

const userColumns = `username, first_name, last_name, email, is_admin`

var updateColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

func notFound(username string) error {
	return apperror.Newf(apperror.NotFound, "no user: %s", username)
}

// Authenticate returns the user when password is theirs.
func Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := database.DB.GetContext(ctx, &user, `SELECT password, `+userColumns+` FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewUnauthorized("invalid username/password")
	}
	if err != nil {
		return nil, err
	}

	match, err := usermgmt.ComparePassword(password, user.Password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, apperror.NewUnauthorized("invalid username/password")
	}

	user.Password = ""
	return &user, nil
}

func Register(ctx context.Context, u *model.NewUser) (*model.User, error) {
	duplicate := apperror.Newf(apperror.InvalidInput, "duplicate username: %s", u.Username)

	var exists bool
	err := database.DB.QueryRowxContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, u.Username).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicate
	}

	hash, err := usermgmt.GeneratePassword(u.Password)
	if err != nil {
		return nil, err
	}

	var user model.User
	err = database.DB.GetContext(ctx, &user, `
		INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		u.Username,
		hash,
		u.FirstName,
		u.LastName,
		u.Email,
		u.IsAdmin,
	)
	if database.IsUniqueViolation(err) {
		return nil, duplicate
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll lists users ordered by username.
func FindAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := database.DB.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns a user with the ids of the jobs they applied to.
func Get(ctx context.Context, username string) (*model.UserDetail, error) {
	var user model.User
	err := database.DB.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(username)
	}
	if err != nil {
		return nil, err
	}

	applications := make([]int, 0)
	err = database.DB.SelectContext(ctx, &applications, `SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`, username)
	if err != nil {
		return nil, err
	}

	return &model.UserDetail{User: user, Applications: applications}, nil
}

// Update changes only the fields present in data, hashing a new password
// before it is stored. Keys must already be checked against the allowed
// update fields.
func Update(ctx context.Context, username string, data sqlhelpers.Payload) (*model.User, error) {
	if password, ok := data.Get("password"); ok {
		plain, _ := password.(string)
		hash, err := usermgmt.GeneratePassword(plain)
		if err != nil {
			return nil, err
		}
		data = append(sqlhelpers.Payload(nil), data...)
		data.Set("password", hash)
	}

	set, err := sqlhelpers.PartialUpdate(data, updateColumns)
	if err != nil {
		return nil, err
	}
	log.Debug("users update: %s", set.Clause)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING %s`, set.Clause, set.Next(), userColumns)
	var user model.User
	err = database.DB.GetContext(ctx, &user, query, append(set.Values, username)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(username)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func Remove(ctx context.Context, username string) error {
	var deleted string
	err := database.DB.QueryRowxContext(ctx, `DELETE FROM users WHERE username = $1 RETURNING username`, username).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(username)
	}
	return err
}

// ApplyToJob records that username applied to job jobID.
func ApplyToJob(ctx context.Context, username string, jobID int) error {
	var jobExists, userExists, applied bool
	err := database.DB.QueryRowxContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM jobs WHERE id = $1),
			EXISTS (SELECT 1 FROM users WHERE username = $2),
			EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND username = $2)
	`, jobID, username).Scan(&jobExists, &userExists, &applied)
	if err != nil {
		return err
	}
	switch {
	case !jobExists:
		return apperror.Newf(apperror.NotFound, "no job: %d", jobID)
	case !userExists:
		return notFound(username)
	case applied:
		return apperror.Newf(apperror.InvalidInput, "already applied to job: %d", jobID)
	}

	_, err = database.DB.ExecContext(ctx, `INSERT INTO applications (username, job_id) VALUES ($1, $2)`, username, jobID)
	if database.IsUniqueViolation(err) {
		return apperror.Newf(apperror.InvalidInput, "already applied to job: %d", jobID)
	}
	return err
}
