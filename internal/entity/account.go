package entity

import (
	"github.com/uptrace/bun"
)

type Account struct {
	bun.BaseModel `bun:"table:accounts"`

	BasicEntity
	EmployeeID   *string `json:"employee_id" bun:"employee_id"`
	FirstName    *string `json:"first_name" bun:"first_name"`
	LastName     *string `json:"last_name" bun:"last_name"`
	Email        *string `json:"email" bun:"email"`
	Phone        *string `json:"phone" bun:"phone"`
	DepartmentID *int    `json:"department_id" bun:"department_id"`
	Password     *string `json:"-" bun:"password"`
	Role         *string `json:"role" bun:"role"`
	ProfileImage *string `json:"profile_image" bun:"profile_image"`
	Verified     *bool   `json:"verified" bun:"verified"`
	Archived     *bool   `json:"archived" bun:"archived"`
}
