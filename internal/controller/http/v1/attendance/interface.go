package attendance

import (
	"context"
	"time"

	"workforce/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (attendance.GetDetailByIdResponse, error)
	GetLatestByAccountId(ctx context.Context, accountID int) (attendance.LatestResponse, error)
	TimeIn(ctx context.Context, request attendance.TimeInRequest) (attendance.TimeInResponse, error)
	TimeOut(ctx context.Context, request attendance.TimeOutRequest) (attendance.TimeOutResponse, error)
	UpdateAll(ctx context.Context, request attendance.UpdateRequest) error
	UpdateColumns(ctx context.Context, request attendance.UpdateRequest) error
	Delete(ctx context.Context, id int) error
	GetStatistics(ctx context.Context) (attendance.StatisticsResponse, error)
}

// Status is the cached per-account attendance state.
type Status interface {
	CooldownRemaining(ctx context.Context, accountID int) (time.Duration, error)
	MarkAction(ctx context.Context, accountID int, at time.Time) error
	SetToggle(ctx context.Context, accountID int, status string) error
	Toggle(ctx context.Context, accountID int) (string, error)
	Window() time.Duration
}
