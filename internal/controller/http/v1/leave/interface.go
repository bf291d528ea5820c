package leave

import (
	"context"

	"workforce/backend/internal/repository/postgres/leave"
)

type Leave interface {
	GetList(ctx context.Context, filter leave.Filter) ([]leave.GetListResponse, int, error)
	Create(ctx context.Context, request leave.CreateRequest) (leave.CreateResponse, error)
	UpdateColumns(ctx context.Context, request leave.UpdateRequest) error
	Approve(ctx context.Context, id int) error
	Reject(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}
