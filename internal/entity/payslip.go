package entity

import (
	"github.com/uptrace/bun"
)

type Payslip struct {
	bun.BaseModel `bun:"table:payslips"`

	BasicEntity
	AccountID   *int     `json:"account_id" bun:"account_id"`
	PeriodStart *string  `json:"period_start" bun:"period_start"`
	PeriodEnd   *string  `json:"period_end" bun:"period_end"`
	HoursWorked *float64 `json:"hours_worked" bun:"hours_worked"`
	GrossPay    *float64 `json:"gross_pay" bun:"gross_pay"`
	Deductions  *float64 `json:"deductions" bun:"deductions"`
	NetPay      *float64 `json:"net_pay" bun:"net_pay"`
}
