package dtos

type JobCreateRequest struct {
	Title         string `json:"title" binding:"required"`
	CompanyHandle string `json:"companyHandle" binding:"required"`

	// Optional Fields
	Salary *int64   `json:"salary" binding:"omitempty,gte=0"`
	Equity *float64 `json:"equity" binding:"omitempty,gte=0,lte=1"`
}

// JobUpdateRequest carries a partial update; nil fields stay untouched.
// The job's id and owning company are immutable.
type JobUpdateRequest struct {
	Title  *string  `json:"title" binding:"omitempty,min=1"`
	Salary *int64   `json:"salary" binding:"omitempty,gte=0"`
	Equity *float64 `json:"equity" binding:"omitempty,gte=0,lte=1"`
}

// JobFilter holds the supported query-string filters for listing jobs.
type JobFilter struct {
	Title     *string `form:"title"`
	MinSalary *int64  `form:"minSalary" binding:"omitempty,gte=0"`
	HasEquity *bool   `form:"hasEquity"`
}
