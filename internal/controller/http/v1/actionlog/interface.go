package actionlog

import (
	"context"

	"workforce/backend/internal/repository/postgres/actionlog"
)

type ActionLog interface {
	GetList(ctx context.Context, filter actionlog.Filter) ([]actionlog.GetListResponse, int, error)
	Create(ctx context.Context, request actionlog.CreateRequest) (actionlog.CreateResponse, error)
	Approve(ctx context.Context, id int) error
	Reject(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}
