package account

import (
	"context"

	"workforce/backend/internal/repository/postgres/account"
	"workforce/backend/internal/service"
)

type Account interface {
	GetList(ctx context.Context, filter account.Filter) ([]account.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (account.GetDetailByIdResponse, error)
	Create(ctx context.Context, request account.CreateRequest) (account.CreateResponse, error)
	UpdateColumns(ctx context.Context, request account.UpdateRequest) error
	UpdateProfileImage(ctx context.Context, id int, path string) error
	Archive(ctx context.Context, id int) error
	Unarchive(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	GetWorkforce(ctx context.Context) ([]service.WorkforceRow, error)
	GetBadgeList(ctx context.Context) ([]service.BadgeEmployee, error)
}
