package calendar

import (
	"context"

	"workforce/backend/internal/repository/postgres/calendar"
)

type Calendar interface {
	GetList(ctx context.Context, filter calendar.Filter) ([]calendar.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (calendar.GetListResponse, error)
	Create(ctx context.Context, request calendar.CreateRequest) (calendar.CreateResponse, error)
	UpdateColumns(ctx context.Context, request calendar.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
