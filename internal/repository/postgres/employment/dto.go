package employment

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit          *int
	Offset         *int
	Page           *int
	Search         *string
	DepartmentID   *int
	EmploymentType *string
}

type GetListResponse struct {
	ID             int      `json:"id"`
	AccountID      *int     `json:"account_id"`
	EmployeeID     *string  `json:"employee_id"`
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	Position       *string  `json:"position"`
	Rank           *string  `json:"rank"`
	DepartmentID   *int     `json:"department_id"`
	Department     *string  `json:"department"`
	EmploymentType *string  `json:"employment_type"`
	HourlyRate     *float64 `json:"hourly_rate"`
	Status         *string  `json:"status"`
}

type GetByAccountIdResponse struct {
	ID             int      `json:"id"`
	AccountID      *int     `json:"account_id"`
	Position       *string  `json:"position"`
	Rank           *string  `json:"rank"`
	DepartmentID   *int     `json:"department_id"`
	Department     *string  `json:"department"`
	EmploymentType *string  `json:"employment_type"`
	HourlyRate     *float64 `json:"hourly_rate"`
	BankName       *string  `json:"bank_name"`
	BankAccount    *string  `json:"bank_account"`
	Status         *string  `json:"status"`
}

type UpsertRequest struct {
	AccountID      int      `json:"account_id" form:"account_id"`
	Position       *string  `json:"position" form:"position"`
	Rank           *string  `json:"rank" form:"rank"`
	DepartmentID   *int     `json:"department_id" form:"department_id"`
	EmploymentType *string  `json:"employment_type" form:"employment_type"`
	HourlyRate     *float64 `json:"hourly_rate" form:"hourly_rate"`
	BankName       *string  `json:"bank_name" form:"bank_name"`
	BankAccount    *string  `json:"bank_account" form:"bank_account"`
	Status         *string  `json:"status" form:"status"`
}

type UpsertResponse struct {
	bun.BaseModel `bun:"table:employments"`

	ID             int       `json:"id" bun:"-"`
	AccountID      int       `json:"account_id" bun:"account_id"`
	Position       *string   `json:"position" bun:"position"`
	Rank           *string   `json:"rank" bun:"rank"`
	DepartmentID   *int      `json:"department_id" bun:"department_id"`
	EmploymentType *string   `json:"employment_type" bun:"employment_type"`
	HourlyRate     *float64  `json:"hourly_rate" bun:"hourly_rate"`
	BankName       *string   `json:"bank_name" bun:"bank_name"`
	BankAccount    *string   `json:"bank_account" bun:"bank_account"`
	Status         *string   `json:"status" bun:"status"`
	CreatedAt      time.Time `json:"-" bun:"created_at"`
	CreatedBy      int       `json:"-" bun:"created_by"`
}
