package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/justsurfingit/jobly/internal/dtos"
	"github.com/justsurfingit/jobly/internal/models"
	"github.com/justsurfingit/jobly/internal/sqlbuilder"
)

// userColumns maps the API's camelCase field names onto users columns.
var userColumns = sqlbuilder.ColumnMap{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// userFields deliberately excludes password; hashes never leave this
// package except through Authenticate's internal check.
const userFields = `username, first_name, last_name, email, is_admin`

type UserRepository struct {
	DB         *sql.DB
	BcryptCost int
}

func NewUserRepository(db *sql.DB, bcryptCost int) *UserRepository {
	return &UserRepository{DB: db, BcryptCost: bcryptCost}
}

// Register hashes the password and inserts a new user. The isAdmin flag is
// a code-level decision: self sign-up always passes false, only the
// admin-only create endpoint may pass true.
func (r *UserRepository) Register(ctx context.Context, req *dtos.RegisterRequest, isAdmin bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), r.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	row := r.DB.QueryRowContext(ctx,
		`INSERT INTO users (username, password, first_name, last_name, email, is_admin) VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+userFields,
		req.Username, string(hash), req.FirstName, req.LastName, req.Email, isAdmin)

	user, err := scanUser(row)
	if err != nil {
		if isSQLState(err, uniqueViolation) {
			return nil, fmt.Errorf("username %s: %w", req.Username, ErrDuplicate)
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords both come back as ErrBadCredentials.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT username, password, first_name, last_name, email, is_admin FROM users WHERE username = $1`, username)

	var u models.User
	err := row.Scan(&u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	u.Password = ""
	return &u, nil
}

// FindAll lists every user ordered by username.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+userFields+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Get fetches one user by username, including the ids of jobs applied to.
func (r *UserRepository) Get(ctx context.Context, username string) (*models.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userFields+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`, username)
	if err != nil {
		return nil, fmt.Errorf("get user applications: %w", err)
	}
	defer rows.Close()

	apps := []int64{}
	for rows.Next() {
		var jobID int64
		if err := rows.Scan(&jobID); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, jobID)
	}
	user.Applications = &apps
	return user, rows.Err()
}

// Update applies a partial update and returns the updated user. A new
// password is hashed before it is stored.
// Returns sqlbuilder.ErrNoUpdateData when the request changes nothing.
func (r *UserRepository) Update(ctx context.Context, username string, req *dtos.UserUpdateRequest) (*models.User, error) {
	updates := sqlbuilder.NewUpdateSet()
	if req.FirstName != nil {
		updates.Set("firstName", sqlbuilder.Text(*req.FirstName))
	}
	if req.LastName != nil {
		updates.Set("lastName", sqlbuilder.Text(*req.LastName))
	}
	if req.Email != nil {
		updates.Set("email", sqlbuilder.Text(*req.Email))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), r.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates.Set("password", sqlbuilder.Text(string(hash)))
	}

	set, err := sqlbuilder.UpdateClause(updates, userColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING %s`,
		set.Clause, len(set.Values)+1, userFields)
	row := r.DB.QueryRowContext(ctx, query, append(set.Args(), username)...)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Remove deletes a user and, via the schema's cascade, their applications.
func (r *UserRepository) Remove(ctx context.Context, username string) error {
	var deleted string
	err := r.DB.QueryRowContext(ctx, `DELETE FROM users WHERE username = $1 RETURNING username`, username).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}

// ApplyToJob records that a user applied to a job. A missing user or job
// surfaces as ErrNotFound, a repeated application as ErrDuplicate.
func (r *UserRepository) ApplyToJob(ctx context.Context, username string, jobID int64) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO applications (username, job_id) VALUES ($1, $2)`, username, jobID)
	if err != nil {
		if isSQLState(err, foreignKeyViolation) {
			return fmt.Errorf("user %s or job %d: %w", username, jobID, ErrNotFound)
		}
		if isSQLState(err, uniqueViolation) {
			return fmt.Errorf("application to job %d: %w", jobID, ErrDuplicate)
		}
		return fmt.Errorf("apply to job: %w", err)
	}
	return nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin); err != nil {
		return nil, err
	}
	return &u, nil
}
