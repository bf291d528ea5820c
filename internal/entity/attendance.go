package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Attendance struct {
	bun.BaseModel `bun:"table:attendances"`

	BasicEntity
	AccountID     *int       `json:"account_id" bun:"account_id"`
	WorkDay       *string    `json:"work_day" bun:"work_day"`
	TimeIn        *time.Time `json:"time_in" bun:"time_in"`
	TimeOut       *time.Time `json:"time_out" bun:"time_out"`
	TotalHours    *string    `json:"total_hours" bun:"total_hours"`
	Shift         *string    `json:"shift" bun:"shift"`
	Status        *string    `json:"status" bun:"status"`
	TimeInImage   *string    `json:"time_in_image" bun:"time_in_image"`
	TimeOutImage  *string    `json:"time_out_image" bun:"time_out_image"`
	ForgotTimeOut *bool      `json:"forgot_time_out" bun:"forgot_time_out"`
}
