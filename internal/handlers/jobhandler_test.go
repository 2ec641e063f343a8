package handlers

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "salary", "equity", "company_handle"})
}

func TestListJobs(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, salary, equity, company_handle FROM jobs ORDER BY id`)).
		WillReturnRows(jobRows().
			AddRow(int64(1), "Engineer", int64(90000), 0.05, "acme"))

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"jobs"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobsHasEquityFilter(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, salary, equity, company_handle FROM jobs WHERE "equity" > $1 ORDER BY id`)).
		WithArgs(int64(0)).
		WillReturnRows(jobRows().
			AddRow(int64(1), "Engineer", int64(90000), 0.05, "acme"))

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs?hasEquity=true", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListJobsRejectsUnknownFilter(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs?salary=100", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown filter: salary")
}

// Values the filter types cannot hold must fail at binding.
func TestListJobsRejectsMalformedFilterValues(t *testing.T) {
	r, _, _ := newTestAPI(t)

	for _, query := range []string{"minSalary=1.5", "minSalary=abc", "hasEquity=banana"} {
		w := doJSON(t, r, http.MethodGet, "/api/v1/jobs?"+query, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Contains(t, w.Body.String(), "Invalid request format", query)
	}
}

func TestGetJobNestsCompany(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, salary, equity, company_handle FROM jobs WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(jobRows().
			AddRow(int64(1), "Engineer", int64(90000), 0.05, "acme"))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT handle, name, description, num_employees, logo_url FROM companies WHERE handle = $1`)).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("acme", "Acme Corp", "Makes widgets", int64(100), nil))

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"company":{`)
	assert.Contains(t, w.Body.String(), `"name":"Acme Corp"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJobRejectsBadID(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/banana", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid job id")
}

func TestCreateJob(t *testing.T) {
	r, mock, tokens := newTestAPI(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO jobs (title, salary, equity, company_handle) VALUES ($1, $2, $3, $4) RETURNING id, title, salary, equity, company_handle`)).
		WithArgs("Engineer", int64(90000), 0.05, "acme").
		WillReturnRows(jobRows().
			AddRow(int64(7), "Engineer", int64(90000), 0.05, "acme"))

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", adminToken(t, tokens),
		map[string]any{"title": "Engineer", "salary": 90000, "equity": 0.05, "companyHandle": "acme"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJobGuards(t *testing.T) {
	r, _, tokens := newTestAPI(t)
	body := map[string]any{"title": "Engineer", "companyHandle": "acme"}

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/jobs", userToken(t, tokens, "ada"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateJobRejectsEquityOutOfRange(t *testing.T) {
	r, _, tokens := newTestAPI(t)

	for _, equity := range []float64{1.5, -0.1} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", adminToken(t, tokens),
			map[string]any{"title": "Engineer", "equity": equity, "companyHandle": "acme"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Equity")
	}
}

func TestUpdateJob(t *testing.T) {
	r, mock, tokens := newTestAPI(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE jobs SET "salary"=$1 WHERE id = $2 RETURNING id, title, salary, equity, company_handle`)).
		WithArgs(int64(120000), int64(1)).
		WillReturnRows(jobRows().
			AddRow(int64(1), "Engineer", int64(120000), 0.05, "acme"))

	w := doJSON(t, r, http.MethodPatch, "/api/v1/jobs/1", adminToken(t, tokens),
		map[string]any{"salary": 120000})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"salary":120000`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteJob(t *testing.T) {
	r, mock, tokens := newTestAPI(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`DELETE FROM jobs WHERE id = $1 RETURNING id`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	w := doJSON(t, r, http.MethodDelete, "/api/v1/jobs/1", adminToken(t, tokens), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":1}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
