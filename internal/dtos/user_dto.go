package dtos

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=25"`
	Password  string `json:"password" binding:"required,min=5,max=20"`
	FirstName string `json:"firstName" binding:"required,max=30"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
}

// UserCreateRequest is the admin-only variant of registration. Unlike
// RegisterRequest it may grant the admin flag.
type UserCreateRequest struct {
	RegisterRequest
	IsAdmin bool `json:"isAdmin"`
}

// UserUpdateRequest carries a partial update; nil fields stay untouched.
// The username is immutable and the admin flag cannot be changed here.
type UserUpdateRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=30"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=30"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=5,max=20"`
}
