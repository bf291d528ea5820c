package actionlog

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit     *int
	Offset    *int
	Page      *int
	Status    *string
	AccountID *int
}

type GetListResponse struct {
	ID               int        `json:"id"`
	AttendanceID     int        `json:"attendance_id"`
	AccountID        int        `json:"account_id"`
	EmployeeID       *string    `json:"employee_id"`
	FirstName        *string    `json:"first_name"`
	LastName         *string    `json:"last_name"`
	WorkDay          *string    `json:"work_day"`
	RequestedTimeIn  *time.Time `json:"requested_time_in"`
	RequestedTimeOut *time.Time `json:"requested_time_out"`
	Reason           *string    `json:"reason"`
	Status           string     `json:"status"`
	DecidedBy        *int       `json:"decided_by"`
	DecidedAt        *time.Time `json:"decided_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

type CreateRequest struct {
	AttendanceID     *int    `json:"attendance_id" form:"attendance_id"`
	RequestedTimeIn  *string `json:"requested_time_in" form:"requested_time_in"`
	RequestedTimeOut *string `json:"requested_time_out" form:"requested_time_out"`
	Reason           *string `json:"reason" form:"reason"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:action_logs"`

	ID               int        `json:"id" bun:"id,pk,autoincrement"`
	AttendanceID     int        `json:"attendance_id" bun:"attendance_id"`
	AccountID        int        `json:"account_id" bun:"account_id"`
	RequestedTimeIn  *time.Time `json:"requested_time_in" bun:"requested_time_in"`
	RequestedTimeOut *time.Time `json:"requested_time_out" bun:"requested_time_out"`
	Reason           *string    `json:"reason" bun:"reason"`
	Status           string     `json:"status" bun:"status"`
	CreatedAt        time.Time  `json:"-" bun:"created_at"`
	CreatedBy        int        `json:"-" bun:"created_by"`
}
