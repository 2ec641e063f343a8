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

// jobColumns is empty: every mutable job field already matches its column
// name.
var jobColumns = sqlbuilder.ColumnMap{}

// jobFilterRules is the closed set of recognized job search filters, in
// the order their predicates appear in generated SQL. hasEquity compares
// against the literal 0; the flag's own value is never bound.
var jobFilterRules = []sqlbuilder.FilterRule{
	{Key: "title", Template: `"title" ILIKE ?`, Transform: sqlbuilder.ContainsPattern},
	{Key: "minSalary", Template: `"salary" >= ?`},
	{Key: "hasEquity", Template: `"equity" > ?`, Transform: sqlbuilder.BindLiteral(sqlbuilder.Int(0))},
}

const jobFields = `id, title, salary, equity, company_handle`

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// Create inserts a new job and returns it. The company must exist.
func (r *JobRepository) Create(ctx context.Context, req *dtos.JobCreateRequest) (*models.Job, error) {
	row := r.DB.QueryRowContext(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle) VALUES ($1, $2, $3, $4) RETURNING `+jobFields,
		req.Title, req.Salary, req.Equity, req.CompanyHandle)

	job, err := scanJob(row)
	if err != nil {
		if isSQLState(err, foreignKeyViolation) {
			return nil, fmt.Errorf("company %s: %w", req.CompanyHandle, ErrNotFound)
		}
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// FindAll lists jobs matching the optional search filters, ordered by id.
// hasEquity=false is not a filter; only the true flag narrows the result.
func (r *JobRepository) FindAll(ctx context.Context, filter *dtos.JobFilter) ([]models.Job, error) {
	criteria := sqlbuilder.Criteria{}
	if filter != nil {
		if filter.Title != nil {
			criteria["title"] = sqlbuilder.Text(*filter.Title)
		}
		if filter.MinSalary != nil {
			criteria["minSalary"] = sqlbuilder.Int(*filter.MinSalary)
		}
		if filter.HasEquity != nil && *filter.HasEquity {
			criteria["hasEquity"] = sqlbuilder.Bool(true)
		}
	}

	query := `SELECT ` + jobFields + ` FROM jobs`
	where := sqlbuilder.FilterClause(criteria, jobFilterRules)
	if !where.Empty() {
		query += ` WHERE ` + where.Clause
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
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
	return jobs, rows.Err()
}

// Get fetches one job by id, including its company.
func (r *JobRepository) Get(ctx context.Context, id int64) (*models.Job, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+jobFields+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	crow := r.DB.QueryRowContext(ctx,
		`SELECT `+companyFields+` FROM companies WHERE handle = $1`, job.CompanyHandle)
	company, err := scanCompany(crow)
	if err != nil {
		return nil, fmt.Errorf("get job company: %w", err)
	}
	job.Company = company
	return job, nil
}

// Update applies a partial update and returns the updated job.
// Returns sqlbuilder.ErrNoUpdateData when the request changes nothing.
func (r *JobRepository) Update(ctx context.Context, id int64, req *dtos.JobUpdateRequest) (*models.Job, error) {
	updates := sqlbuilder.NewUpdateSet()
	if req.Title != nil {
		updates.Set("title", sqlbuilder.Text(*req.Title))
	}
	if req.Salary != nil {
		updates.Set("salary", sqlbuilder.Int(*req.Salary))
	}
	if req.Equity != nil {
		updates.Set("equity", sqlbuilder.Real(*req.Equity))
	}

	set, err := sqlbuilder.UpdateClause(updates, jobColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		set.Clause, len(set.Values)+1, jobFields)
	row := r.DB.QueryRowContext(ctx, query, append(set.Args(), id)...)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Remove deletes a job.
func (r *JobRepository) Remove(ctx context.Context, id int64) error {
	var deleted int64
	err := r.DB.QueryRowContext(ctx, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("job %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("remove job: %w", err)
	}
	return nil
}

func scanJob(row rowScanner) (*models.Job, error) {
	var j models.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
		return nil, err
	}
	return &j, nil
}
