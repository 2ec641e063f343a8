package dtos

type CompanyCreateRequest struct {
	Handle      string `json:"handle" binding:"required,min=1,max=25,lowercase"`
	Name        string `json:"name" binding:"required,min=1"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	NumEmployees *int64  `json:"numEmployees" binding:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" binding:"omitempty,url"`
}

// CompanyUpdateRequest carries a partial update; nil fields stay untouched.
// The handle is immutable.
type CompanyUpdateRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int64  `json:"numEmployees" binding:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" binding:"omitempty,url"`
}

// CompanyFilter holds the supported query-string filters for listing
// companies.
type CompanyFilter struct {
	Name         *string `form:"name"`
	MinEmployees *int64  `form:"minEmployees" binding:"omitempty,gte=0"`
	MaxEmployees *int64  `form:"maxEmployees" binding:"omitempty,gte=0"`
}
