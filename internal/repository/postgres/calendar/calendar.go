package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/pkg/pagination"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetList returns events, optionally narrowed to a month (YYYY-MM). Any
// signed-in account may read the calendar.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			c.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND c.title ilike '%s'`, "%"+search+"%")
	}
	if filter.Month != nil {
		monthStart, err := time.Parse("2006-01", *filter.Month)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "month parse"), http.StatusBadRequest)
		}
		monthEnd := monthStart.AddDate(0, 1, -1)
		whereQuery += fmt.Sprintf(` AND c.start_date <= '%s' AND c.end_date >= '%s'`,
			monthEnd.Format("2006-01-02"), monthStart.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY c.start_date asc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := pagination.Offset(*filter.Page, *filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.title,
			c.start_date::text,
			c.end_date::text,
			c.color
		FROM calendars c
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting calendar events"), http.StatusBadRequest)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Title,
			&detail.StartDate,
			&detail.EndDate,
			&detail.Color); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning calendar list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(c.id)
		FROM calendars c
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning calendar count"), http.StatusBadRequest)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetListResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetListResponse{}, err
	}

	var detail GetListResponse

	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, title, start_date::text, end_date::text, color FROM calendars WHERE deleted_at IS NULL AND id = %d`, id),
	).Scan(
		&detail.ID,
		&detail.Title,
		&detail.StartDate,
		&detail.EndDate,
		&detail.Color,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetListResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetListResponse{}, web.NewRequestError(errors.Wrap(err, "selecting calendar event"), http.StatusBadRequest)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Title", "StartDate", "EndDate"); err != nil {
		return CreateResponse{}, err
	}

	start, end, err := parseRange(*request.StartDate, *request.EndDate)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	var response CreateResponse
	response.Title = *request.Title
	response.StartDate = start
	response.EndDate = end
	response.Color = request.Color
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating calendar event"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("calendars").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Title != nil {
		q.Set("title = ?", *request.Title)
	}
	if request.StartDate != nil || request.EndDate != nil {
		var currentStart, currentEnd string
		err = r.QueryRowContext(ctx,
			fmt.Sprintf(`SELECT start_date::text, end_date::text FROM calendars WHERE id = %d AND deleted_at IS NULL`, request.ID),
		).Scan(&currentStart, &currentEnd)
		if errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting calendar event"), http.StatusBadRequest)
		}

		if request.StartDate != nil {
			currentStart = *request.StartDate
		}
		if request.EndDate != nil {
			currentEnd = *request.EndDate
		}

		start, end, err := parseRange(currentStart, currentEnd)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
		q.Set("start_date = ?", start)
		q.Set("end_date = ?", end)
	}
	if request.Color != nil {
		q.Set("color = ?", *request.Color)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating calendar event"), http.StatusBadRequest)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading affected rows"), http.StatusBadRequest)
	}
	if affected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "calendars", id)
}

func parseRange(startValue, endValue string) (string, string, error) {
	start, err := time.Parse("2006-01-02", startValue)
	if err != nil {
		return "", "", errors.Wrap(err, "start_date parse")
	}
	end, err := time.Parse("2006-01-02", endValue)
	if err != nil {
		return "", "", errors.Wrap(err, "end_date parse")
	}
	if end.Before(start) {
		return "", "", errors.New("end date before start date")
	}
	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}
