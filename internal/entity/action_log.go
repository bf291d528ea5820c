package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type ActionLog struct {
	bun.BaseModel `bun:"table:action_logs"`

	BasicEntity
	AttendanceID     *int       `json:"attendance_id" bun:"attendance_id"`
	AccountID        *int       `json:"account_id" bun:"account_id"`
	RequestedTimeIn  *time.Time `json:"requested_time_in" bun:"requested_time_in"`
	RequestedTimeOut *time.Time `json:"requested_time_out" bun:"requested_time_out"`
	Reason           *string    `json:"reason" bun:"reason"`
	Status           *string    `json:"status" bun:"status"`
	DecidedBy        *int       `json:"decided_by" bun:"decided_by"`
	DecidedAt        *time.Time `json:"decided_at" bun:"decided_at"`
}
