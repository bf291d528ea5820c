package employment

import (
	"context"

	"workforce/backend/internal/repository/postgres/employment"
)

type Employment interface {
	GetList(ctx context.Context, filter employment.Filter) ([]employment.GetListResponse, int, error)
	GetByAccountId(ctx context.Context, accountID int) (employment.GetByAccountIdResponse, error)
	Upsert(ctx context.Context, request employment.UpsertRequest) (employment.UpsertResponse, error)
	Delete(ctx context.Context, id int) error
}
