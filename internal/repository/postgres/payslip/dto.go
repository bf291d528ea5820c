package payslip

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit     *int
	Offset    *int
	Page      *int
	AccountID *int
	Month     *string
}

type GetListResponse struct {
	ID          int     `json:"id"`
	AccountID   int     `json:"account_id"`
	EmployeeID  *string `json:"employee_id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	HoursWorked float64 `json:"hours_worked"`
	GrossPay    float64 `json:"gross_pay"`
	Deductions  float64 `json:"deductions"`
	NetPay      float64 `json:"net_pay"`
}

type CreateRequest struct {
	AccountID   *int     `json:"account_id" form:"account_id"`
	PeriodStart *string  `json:"period_start" form:"period_start"`
	PeriodEnd   *string  `json:"period_end" form:"period_end"`
	HoursWorked *float64 `json:"hours_worked" form:"hours_worked"`
	GrossPay    *float64 `json:"gross_pay" form:"gross_pay"`
	Deductions  *float64 `json:"deductions" form:"deductions"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:payslips"`

	ID          int       `json:"id" bun:"id,pk,autoincrement"`
	AccountID   int       `json:"account_id" bun:"account_id"`
	PeriodStart string    `json:"period_start" bun:"period_start"`
	PeriodEnd   string    `json:"period_end" bun:"period_end"`
	HoursWorked float64   `json:"hours_worked" bun:"hours_worked"`
	GrossPay    float64   `json:"gross_pay" bun:"gross_pay"`
	Deductions  float64   `json:"deductions" bun:"deductions"`
	NetPay      float64   `json:"net_pay" bun:"net_pay"`
	CreatedAt   time.Time `json:"-" bun:"created_at"`
	CreatedBy   int       `json:"-" bun:"created_by"`
}
