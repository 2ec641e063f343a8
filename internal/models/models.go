package models

type Company struct {
	Handle       string  `gorm:"primaryKey;size:25" json:"handle"`
	Name         string  `gorm:"uniqueIndex;not null" json:"name"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	NumEmployees *int64  `gorm:"column:num_employees;check:num_employees >= 0" json:"numEmployees"`
	LogoURL      *string `gorm:"column:logo_url" json:"logoUrl"`

	// Nil on list reads, which omits the key. Single-company reads always
	// set it, so a company with zero jobs still marshals "jobs":[].
	Jobs *[]Job `gorm:"-" json:"jobs,omitempty"`
}

type Job struct {
	ID            int64    `gorm:"primaryKey" json:"id"`
	Title         string   `gorm:"not null" json:"title"`
	Salary        *int64   `gorm:"check:salary >= 0" json:"salary"`
	Equity        *float64 `gorm:"type:numeric;check:equity >= 0 AND equity <= 1.0" json:"equity"`
	CompanyHandle string   `gorm:"column:company_handle;size:25;not null;index" json:"companyHandle"`

	// Association: filled by single-job reads only. The constraint cascades
	// job deletion when the owning company goes.
	Company *Company `gorm:"foreignKey:CompanyHandle;references:Handle;constraint:OnDelete:CASCADE" json:"company,omitempty"`
}

type User struct {
	Username  string `gorm:"primaryKey;size:25" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"column:first_name;not null" json:"firstName"`
	LastName  string `gorm:"column:last_name;not null" json:"lastName"`
	Email     string `gorm:"not null" json:"email"`
	IsAdmin   bool   `gorm:"column:is_admin;not null;default:false" json:"isAdmin"`

	// Applications holds the IDs of jobs the user applied to; not a column.
	// Nil except on single-user reads, which always set it, so a user with
	// zero applications still marshals "applications":[].
	Applications *[]int64 `gorm:"-" json:"applications,omitempty"`
}

type Application struct {
	Username string `gorm:"primaryKey;size:25" json:"username"`
	JobID    int64  `gorm:"primaryKey;column:job_id" json:"jobId"`

	User User `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
	Job  Job  `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
