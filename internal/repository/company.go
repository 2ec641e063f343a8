package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/justsurfingit/jobly/internal/dtos"
	"github.com/justsurfingit/jobly/internal/models"
	"github.com/justsurfingit/jobly/internal/sqlbuilder"
)

// companyColumns maps the API's camelCase field names onto companies
// columns. Fields spelled the same on both sides are omitted.
var companyColumns = sqlbuilder.ColumnMap{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// companyFilterRules is the closed set of recognized company search
// filters, in the order their predicates appear in generated SQL.
var companyFilterRules = []sqlbuilder.FilterRule{
	{Key: "name", Template: `"name" ILIKE ?`, Transform: sqlbuilder.ContainsPattern},
	{Key: "minEmployees", Template: `"num_employees" >= ?`},
	{Key: "maxEmployees", Template: `"num_employees" <= ?`},
}

const companyFields = `handle, name, description, num_employees, logo_url`

type CompanyRepository struct {
	DB *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

// Create inserts a new company and returns it.
func (r *CompanyRepository) Create(ctx context.Context, req *dtos.CompanyCreateRequest) (*models.Company, error) {
	row := r.DB.QueryRowContext(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url) VALUES ($1, $2, $3, $4, $5) RETURNING `+companyFields,
		req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL)

	company, err := scanCompany(row)
	if err != nil {
		if isSQLState(err, uniqueViolation) {
			return nil, fmt.Errorf("company %s: %w", req.Handle, ErrDuplicate)
		}
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// FindAll lists companies matching the optional search filters, ordered by
// name. No filters means all companies.
func (r *CompanyRepository) FindAll(ctx context.Context, filter *dtos.CompanyFilter) ([]models.Company, error) {
	criteria := sqlbuilder.Criteria{}
	if filter != nil {
		if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees > *filter.MaxEmployees {
			return nil, ErrEmployeeRange
		}
		if filter.Name != nil {
			criteria["name"] = sqlbuilder.Text(*filter.Name)
		}
		if filter.MinEmployees != nil {
			criteria["minEmployees"] = sqlbuilder.Int(*filter.MinEmployees)
		}
		if filter.MaxEmployees != nil {
			criteria["maxEmployees"] = sqlbuilder.Int(*filter.MaxEmployees)
		}
	}

	query := `SELECT ` + companyFields + ` FROM companies`
	where := sqlbuilder.FilterClause(criteria, companyFilterRules)
	if !where.Empty() {
		query += ` WHERE ` + where.Clause
	}
	query += ` ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Get fetches one company by handle, including its jobs.
func (r *CompanyRepository) Get(ctx context.Context, handle string) (*models.Company, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+companyFields+` FROM companies WHERE handle = $1`, handle)
	company, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("company %s: %w", handle, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, title, salary, equity, company_handle FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
	if err != nil {
		return nil, fmt.Errorf("get company jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	company.Jobs = &jobs
	return company, rows.Err()
}

// Update applies a partial update and returns the updated company.
// Returns sqlbuilder.ErrNoUpdateData when the request changes nothing.
func (r *CompanyRepository) Update(ctx context.Context, handle string, req *dtos.CompanyUpdateRequest) (*models.Company, error) {
	updates := sqlbuilder.NewUpdateSet()
	if req.Name != nil {
		updates.Set("name", sqlbuilder.Text(*req.Name))
	}
	if req.Description != nil {
		updates.Set("description", sqlbuilder.Text(*req.Description))
	}
	if req.NumEmployees != nil {
		updates.Set("numEmployees", sqlbuilder.Int(*req.NumEmployees))
	}
	if req.LogoURL != nil {
		updates.Set("logoUrl", sqlbuilder.Text(*req.LogoURL))
	}

	set, err := sqlbuilder.UpdateClause(updates, companyColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`,
		set.Clause, len(set.Values)+1, companyFields)
	row := r.DB.QueryRowContext(ctx, query, append(set.Args(), handle)...)

	company, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("company %s: %w", handle, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

// Remove deletes a company and, via the schema's cascade, its jobs.
func (r *CompanyRepository) Remove(ctx context.Context, handle string) error {
	var deleted string
	err := r.DB.QueryRowContext(ctx, `DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("company %s: %w", handle, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("remove company: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*models.Company, error) {
	var c models.Company
	if err := row.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
		return nil, err
	}
	return &c, nil
}
