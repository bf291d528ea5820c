package company

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetInfo(ctx context.Context) (GetInfoResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetInfoResponse{}, err
	}

	var response GetInfoResponse

	err = r.QueryRowContext(ctx, `
		SELECT company_name, logo, workday_start::text, workday_end::text, late_after::text
		FROM company_info WHERE id = 1
	`).Scan(
		&response.CompanyName,
		&response.Logo,
		&response.WorkdayStart,
		&response.WorkdayEnd,
		&response.LateAfter,
	)
	if err != nil {
		return GetInfoResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("company_info").Where("id = 1")

	if request.CompanyName != nil {
		q.Set("company_name = ?", *request.CompanyName)
	}
	if request.Logo != nil {
		q.Set("logo = ?", *request.Logo)
	}
	if request.WorkdayStart != nil {
		if _, err := time.Parse("15:04:05", *request.WorkdayStart); err != nil {
			return web.NewRequestError(errors.Wrap(err, "workday_start parse"), http.StatusBadRequest)
		}
		q.Set("workday_start = ?", *request.WorkdayStart)
	}
	if request.WorkdayEnd != nil {
		if _, err := time.Parse("15:04:05", *request.WorkdayEnd); err != nil {
			return web.NewRequestError(errors.Wrap(err, "workday_end parse"), http.StatusBadRequest)
		}
		q.Set("workday_end = ?", *request.WorkdayEnd)
	}
	if request.LateAfter != nil {
		if _, err := time.Parse("15:04:05", *request.LateAfter); err != nil {
			return web.NewRequestError(errors.Wrap(err, "late_after parse"), http.StatusBadRequest)
		}
		q.Set("late_after = ?", *request.LateAfter)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating company info"), http.StatusBadRequest)
	}

	return nil
}
