package jobs

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
)

const jobColumns = `id, title, salary, equity, company_handle`

func notFound(id int) error {
	return apperror.Newf(apperror.NotFound, "no job: %d", id)
}

func Create(ctx context.Context, j *model.NewJob) (*model.Job, error) {
	var exists bool
	err := database.DB.QueryRowxContext(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE handle = $1)`, j.CompanyHandle).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.Newf(apperror.NotFound, "no company: %s", j.CompanyHandle)
	}

	var job model.Job
	err = database.DB.GetContext(ctx, &job, `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING `+jobColumns,
		j.Title,
		database.Null(j.Salary),
		database.Null(j.Equity),
		j.CompanyHandle,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAll lists jobs matching filters with their company names, ordered by title.
func FindAll(ctx context.Context, filters map[string]interface{}) ([]model.Job, error) {
	where, err := BuildFilter(filters)
	if err != nil {
		return nil, err
	}
	log.Struct("jobs filter", where)

	jobs := make([]model.Job, 0)
	query := fmt.Sprintf(`
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, COALESCE(c.name, '') AS company_name
		FROM jobs j
		LEFT JOIN companies c ON c.handle = j.company_handle
		%s
		ORDER BY j.title, j.id
	`, where.Where())
	if err = database.DB.SelectContext(ctx, &jobs, query, where.Values...); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get returns a job with the company that posted it.
func Get(ctx context.Context, id int) (*model.JobDetail, error) {
	var job model.Job
	err := database.DB.GetContext(ctx, &job, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}

	detail := &model.JobDetail{Job: job}
	var company model.Company
	err = database.DB.GetContext(ctx, &company, `
		SELECT handle, name, num_employees, description, logo_url
		FROM companies
		WHERE handle = $1
	`, job.CompanyHandle)
	switch {
	case err == nil:
		detail.Company = &company
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}
	return detail, nil
}

// Update changes only the fields present in data. Keys must already be
// checked against the allowed update fields, which are all column names.
func Update(ctx context.Context, id int, data sqlhelpers.Payload) (*model.Job, error) {
	set, err := sqlhelpers.PartialUpdate(data, nil)
	if err != nil {
		return nil, err
	}
	log.Struct("jobs update", set)

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`, set.Clause, set.Next(), jobColumns)
	var job model.Job
	err = database.DB.GetContext(ctx, &job, query, append(set.Values, id)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func Remove(ctx context.Context, id int) error {
	var deleted int
	err := database.DB.QueryRowxContext(ctx, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(id)
	}
	return err
}
