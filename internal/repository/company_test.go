package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobly/internal/dtos"
	"github.com/justsurfingit/jobly/internal/sqlbuilder"
)

func ptr[T any](v T) *T { return &v }

func newCompanyRepo(t *testing.T) (*CompanyRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCompanyRepository(db), mock
}

func TestCompanyCreate(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO companies (handle, name, description, num_employees, logo_url) VALUES ($1, $2, $3, $4, $5) RETURNING handle, name, description, num_employees, logo_url`)).
		WithArgs("acme", "Acme Corp", "Makes widgets", int64(100), nil).
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("acme", "Acme Corp", "Makes widgets", int64(100), nil))

	company, err := repo.Create(context.Background(), &dtos.CompanyCreateRequest{
		Handle:       "acme",
		Name:         "Acme Corp",
		Description:  "Makes widgets",
		NumEmployees: ptr(int64(100)),
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", company.Handle)
	require.NotNil(t, company.NumEmployees)
	assert.EqualValues(t, 100, *company.NumEmployees)
	assert.Nil(t, company.LogoURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyCreateDuplicate(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(`INSERT INTO companies`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	_, err := repo.Create(context.Background(), &dtos.CompanyCreateRequest{
		Handle: "acme", Name: "Acme Corp", Description: "Makes widgets",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "acme")
}

func TestCompanyFindAllNoFilters(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT handle, name, description, num_employees, logo_url FROM companies ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("acme", "Acme Corp", "Makes widgets", int64(100), "http://acme.img/logo.png").
			AddRow("globex", "Globex", "Monorails", nil, nil))

	companies, err := repo.FindAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "acme", companies[0].Handle)
	assert.Nil(t, companies[1].NumEmployees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyFindAllWithFilters(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT handle, name, description, num_employees, logo_url FROM companies WHERE "name" ILIKE $1 AND "num_employees" >= $2 AND "num_employees" <= $3 ORDER BY name`)).
		WithArgs("%net%", int64(10), int64(50)).
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("netflx", "NetFlix", "Streaming", int64(30), nil))

	companies, err := repo.FindAll(context.Background(), &dtos.CompanyFilter{
		Name:         ptr("net"),
		MinEmployees: ptr(int64(10)),
		MaxEmployees: ptr(int64(50)),
	})
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "netflx", companies[0].Handle)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyFindAllRejectsInvertedRange(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	_, err := repo.FindAll(context.Background(), &dtos.CompanyFilter{
		MinEmployees: ptr(int64(50)),
		MaxEmployees: ptr(int64(10)),
	})
	assert.ErrorIs(t, err, ErrEmployeeRange)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyGet(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT handle, name, description, num_employees, logo_url FROM companies WHERE handle = $1`)).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("acme", "Acme Corp", "Makes widgets", int64(100), nil))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, salary, equity, company_handle FROM jobs WHERE company_handle = $1 ORDER BY id`)).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "salary", "equity", "company_handle"}).
			AddRow(int64(1), "Engineer", int64(90000), 0.05, "acme").
			AddRow(int64(2), "Designer", nil, nil, "acme"))

	company, err := repo.Get(context.Background(), "acme")
	require.NoError(t, err)
	require.NotNil(t, company.Jobs)
	jobs := *company.Jobs
	require.Len(t, jobs, 2)
	assert.Equal(t, "Engineer", jobs[0].Title)
	assert.Nil(t, jobs[1].Salary)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyGetWithoutJobs(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT handle, name, description, num_employees, logo_url FROM companies WHERE handle = $1`)).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("acme", "Acme Corp", "Makes widgets", int64(100), nil))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, salary, equity, company_handle FROM jobs WHERE company_handle = $1 ORDER BY id`)).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "salary", "equity", "company_handle"}))

	company, err := repo.Get(context.Background(), "acme")
	require.NoError(t, err)
	require.NotNil(t, company.Jobs)
	assert.Empty(t, *company.Jobs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyGetNotFound(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT handle, name, description, num_employees, logo_url FROM companies WHERE handle = $1`)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}))

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyUpdate(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE companies SET "name"=$1, "num_employees"=$2 WHERE handle = $3 RETURNING handle, name, description, num_employees, logo_url`)).
		WithArgs("New Acme", int64(200), "acme").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("acme", "New Acme", "Makes widgets", int64(200), nil))

	company, err := repo.Update(context.Background(), "acme", &dtos.CompanyUpdateRequest{
		Name:         ptr("New Acme"),
		NumEmployees: ptr(int64(200)),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Acme", company.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyUpdateNoData(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	_, err := repo.Update(context.Background(), "acme", &dtos.CompanyUpdateRequest{})
	assert.ErrorIs(t, err, sqlbuilder.ErrNoUpdateData)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyUpdateNotFound(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE companies SET "name"=$1 WHERE handle = $2 RETURNING handle, name, description, num_employees, logo_url`)).
		WithArgs("New Acme", "nope").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}))

	_, err := repo.Update(context.Background(), "nope", &dtos.CompanyUpdateRequest{Name: ptr("New Acme")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyRemove(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`DELETE FROM companies WHERE handle = $1 RETURNING handle`)).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"handle"}).AddRow("acme"))

	require.NoError(t, repo.Remove(context.Background(), "acme"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRemoveNotFound(t *testing.T) {
	repo, mock := newCompanyRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`DELETE FROM companies WHERE handle = $1 RETURNING handle`)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"handle"}))

	assert.ErrorIs(t, repo.Remove(context.Background(), "nope"), ErrNotFound)
}
