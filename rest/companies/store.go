package companies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cindyhont/jobly-backend/apperror"
	"github.com/cindyhont/jobly-backend/database"
	"github.com/cindyhont/jobly-backend/log"
	"github.com/cindyhont/jobly-backend/model"
	"github.com/cindyhont/jobly-backend/sqlhelpers"
)

const companyColumns = `handle, name, num_employees, description, logo_url`

// updateColumns maps API field names to columns where they differ.
var updateColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

func duplicate(handle string) error {
	return apperror.Newf(apperror.InvalidInput, "duplicate company: %s", handle)
}

func duplicateName(name interface{}) error {
	return apperror.Newf(apperror.InvalidInput, "duplicate company name: %v", name)
}

// nameTaken reports whether a company other than handle already uses name.
func nameTaken(ctx context.Context, name interface{}, handle string) (bool, error) {
	var taken bool
	err := database.DB.QueryRowxContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE name = $1 AND handle <> $2)`,
		name, handle,
	).Scan(&taken)
	return taken, err
}

func notFound(handle string) error {
	return apperror.Newf(apperror.NotFound, "no company: %s", handle)
}

func Create(ctx context.Context, c *model.NewCompany) (*model.Company, error) {
	var exists bool
	err := database.DB.QueryRowxContext(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE handle = $1)`, c.Handle).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicate(c.Handle)
	}
	taken, err := nameTaken(ctx, c.Name, c.Handle)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicateName(c.Name)
	}

	var company model.Company
	err = database.DB.GetContext(ctx, &company, `
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+companyColumns,
		c.Handle,
		c.Name,
		database.Null(c.NumEmployees),
		c.Description,
		database.Null(c.LogoURL),
	)
	if database.IsUniqueViolation(err) {
		if strings.Contains(database.ViolatedConstraint(err), "name") {
			return nil, duplicateName(c.Name)
		}
		return nil, duplicate(c.Handle)
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// FindAll lists companies matching filters, ordered by name.
func FindAll(ctx context.Context, filters map[string]interface{}) ([]model.Company, error) {
	where, err := BuildFilter(filters)
	if err != nil {
		return nil, err
	}
	log.Struct("companies filter", where)

	companies := make([]model.Company, 0)
	query := fmt.Sprintf(`SELECT %s FROM companies %s ORDER BY name`, companyColumns, where.Where())
	if err = database.DB.SelectContext(ctx, &companies, query, where.Values...); err != nil {
		return nil, err
	}
	return companies, nil
}

// Get returns a company with its jobs.
func Get(ctx context.Context, handle string) (*model.CompanyDetail, error) {
	var company model.Company
	err := database.DB.GetContext(ctx, &company, `SELECT `+companyColumns+` FROM companies WHERE handle = $1`, handle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(handle)
	}
	if err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0)
	err = database.DB.SelectContext(ctx, &jobs, `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE company_handle = $1
		ORDER BY id
	`, handle)
	if err != nil {
		return nil, err
	}

	return &model.CompanyDetail{Company: company, Jobs: jobs}, nil
}

// Update changes only the fields present in data. Keys must already be
// checked against the allowed update fields.
func Update(ctx context.Context, handle string, data sqlhelpers.Payload) (*model.Company, error) {
	set, err := sqlhelpers.PartialUpdate(data, updateColumns)
	if err != nil {
		return nil, err
	}
	log.Struct("companies update", set)

	if name, ok := data.Get("name"); ok {
		taken, err := nameTaken(ctx, name, handle)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, duplicateName(name)
		}
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`, set.Clause, set.Next(), companyColumns)
	var company model.Company
	err = database.DB.GetContext(ctx, &company, query, append(set.Values, handle)...)
	if database.IsUniqueViolation(err) {
		// name is the only unique column an update can touch
		name, _ := data.Get("name")
		return nil, duplicateName(name)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(handle)
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func Remove(ctx context.Context, handle string) error {
	var deleted string
	err := database.DB.QueryRowxContext(ctx, `DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(handle)
	}
	return err
}
