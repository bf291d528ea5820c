package auth

import (
	"context"

	"workforce/backend/internal/entity"
	"workforce/backend/internal/repository/postgres/account"
)

type Account interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.Account, error)
	GetByEmail(ctx context.Context, email string) (entity.Account, error)
	GetById(ctx context.Context, id int) (entity.Account, error)
	Register(ctx context.Context, request account.RegisterRequest) (account.RegisterResponse, error)
	SetVerified(ctx context.Context, id int) error
	UpdatePassword(ctx context.Context, id int, hashedPassword string) error
}
