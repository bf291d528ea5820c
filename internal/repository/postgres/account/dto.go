package account

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit        *int
	Offset       *int
	Page         *int
	Search       *string
	Role         *string
	DepartmentID *int
	Archived     *bool
}

type SignInRequest struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Password   string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type RegisterRequest struct {
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password" form:"password"`
	FirstName  *string `json:"first_name" form:"first_name"`
	LastName   *string `json:"last_name" form:"last_name"`
	Email      *string `json:"email" form:"email"`
	Phone      *string `json:"phone" form:"phone"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" form:"token"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" form:"email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" form:"token"`
	Password string `json:"password" form:"password"`
}

type GetListResponse struct {
	ID           int     `json:"id"`
	EmployeeID   *string `json:"employee_id"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Role         *string `json:"role"`
	DepartmentID *int    `json:"department_id"`
	Department   *string `json:"department"`
	Verified     *bool   `json:"verified"`
	Archived     *bool   `json:"archived"`
}

type GetDetailByIdResponse struct {
	ID           int     `json:"id"`
	EmployeeID   *string `json:"employee_id"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Role         *string `json:"role"`
	DepartmentID *int    `json:"department_id"`
	Department   *string `json:"department"`
	ProfileImage *string `json:"profile_image"`
	Verified     *bool   `json:"verified"`
	Archived     *bool   `json:"archived"`
}

type CreateRequest struct {
	EmployeeID   *string `json:"employee_id" form:"employee_id"`
	Password     *string `json:"password" form:"password"`
	Role         *string `json:"role" form:"role"`
	FirstName    *string `json:"first_name" form:"first_name"`
	LastName     *string `json:"last_name" form:"last_name"`
	DepartmentID *int    `json:"department_id" form:"department_id"`
	Phone        *string `json:"phone" form:"phone"`
	Email        *string `json:"email" form:"email"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:accounts"`

	ID           int       `json:"id" bun:"-"`
	EmployeeID   *string   `json:"employee_id" bun:"employee_id"`
	Password     *string   `json:"-" bun:"password"`
	Role         *string   `json:"role" bun:"role"`
	FirstName    *string   `json:"first_name" bun:"first_name"`
	LastName     *string   `json:"last_name" bun:"last_name"`
	DepartmentID *int      `json:"department_id" bun:"department_id"`
	Phone        *string   `json:"phone" bun:"phone"`
	Email        *string   `json:"email" bun:"email"`
	Verified     bool      `json:"verified" bun:"verified"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

type RegisterResponse struct {
	bun.BaseModel `bun:"table:accounts"`

	ID         int       `json:"id" bun:"-"`
	EmployeeID *string   `json:"employee_id" bun:"employee_id"`
	Password   *string   `json:"-" bun:"password"`
	Role       *string   `json:"role" bun:"role"`
	FirstName  *string   `json:"first_name" bun:"first_name"`
	LastName   *string   `json:"last_name" bun:"last_name"`
	Phone      *string   `json:"phone" bun:"phone"`
	Email      *string   `json:"email" bun:"email"`
	Verified   bool      `json:"verified" bun:"verified"`
	CreatedAt  time.Time `json:"-" bun:"created_at"`
}

type UpdateRequest struct {
	ID           int     `json:"id" form:"id"`
	EmployeeID   *string `json:"employee_id" form:"employee_id"`
	Password     *string `json:"password" form:"password"`
	Role         *string `json:"role" form:"role"`
	FirstName    *string `json:"first_name" form:"first_name"`
	LastName     *string `json:"last_name" form:"last_name"`
	DepartmentID *int    `json:"department_id" form:"department_id"`
	Phone        *string `json:"phone" form:"phone"`
	Email        *string `json:"email" form:"email"`
	ProfileImage *string `json:"profile_image" form:"profile_image"`
}
