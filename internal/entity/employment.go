package entity

import (
	"github.com/uptrace/bun"
)

type Employment struct {
	bun.BaseModel `bun:"table:employments"`

	BasicEntity
	AccountID      *int     `json:"account_id" bun:"account_id"`
	Position       *string  `json:"position" bun:"position"`
	Rank           *string  `json:"rank" bun:"rank"`
	DepartmentID   *int     `json:"department_id" bun:"department_id"`
	EmploymentType *string  `json:"employment_type" bun:"employment_type"`
	HourlyRate     *float64 `json:"hourly_rate" bun:"hourly_rate"`
	BankName       *string  `json:"bank_name" bun:"bank_name"`
	BankAccount    *string  `json:"bank_account" bun:"bank_account"`
	Status         *string  `json:"status" bun:"status"`
}
