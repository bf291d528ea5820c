package actionlog

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
	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/pagination"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"
	"workforce/backend/internal/service"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	// Employees only see their own requests.
	if claims.Role == auth.RoleEmployee {
		filter.AccountID = &claims.UserId
	}

	whereQuery := `
		WHERE
			l.deleted_at IS NULL
		`

	if filter.AccountID != nil {
		whereQuery += fmt.Sprintf(` AND l.account_id = %d`, *filter.AccountID)
	}
	if filter.Status != nil {
		status := strings.ToUpper(strings.Replace(*filter.Status, "'", "", -1))
		if status != StatusPending && status != StatusApproved && status != StatusRejected {
			return nil, 0, web.NewRequestError(errors.New("incorrect status filter"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND l.status = '%s'`, status)
	}

	orderQuery := "ORDER BY l.created_at desc"

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
			l.id,
			l.attendance_id,
			l.account_id,
			a.employee_id,
			a.first_name,
			a.last_name,
			t.work_day::text,
			l.requested_time_in,
			l.requested_time_out,
			l.reason,
			l.status,
			l.decided_by,
			l.decided_at,
			l.created_at
		FROM action_logs l
		LEFT JOIN accounts a ON a.id = l.account_id
		LEFT JOIN attendances t ON t.id = l.attendance_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting action logs"), http.StatusBadRequest)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.AttendanceID,
			&detail.AccountID,
			&detail.EmployeeID,
			&detail.FirstName,
			&detail.LastName,
			&detail.WorkDay,
			&detail.RequestedTimeIn,
			&detail.RequestedTimeOut,
			&detail.Reason,
			&detail.Status,
			&detail.DecidedBy,
			&detail.DecidedAt,
			&detail.CreatedAt); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning action log list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(l.id)
		FROM action_logs l
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning action log count"), http.StatusBadRequest)
	}

	return list, count, nil
}

// Create files a shift amendment request against one of the caller's own
// attendance rows.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "AttendanceID", "Reason"); err != nil {
		return CreateResponse{}, err
	}
	if request.RequestedTimeIn == nil && request.RequestedTimeOut == nil {
		return CreateResponse{}, web.NewRequestError(errors.New("requested_time_in or requested_time_out is required"), http.StatusBadRequest)
	}

	owner := 0
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT coalesce((SELECT account_id FROM attendances WHERE id = %d AND deleted_at IS NULL), 0)`, *request.AttendanceID),
	).Scan(&owner)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "attendance lookup"), http.StatusInternalServerError)
	}
	if owner == 0 {
		return CreateResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if claims.Role == auth.RoleEmployee && owner != claims.UserId {
		return CreateResponse{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	pendingID := 0
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT coalesce((SELECT id FROM action_logs WHERE attendance_id = %d AND status = 'PENDING' AND deleted_at IS NULL), 0)`, *request.AttendanceID),
	).Scan(&pendingID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "pending request check"), http.StatusInternalServerError)
	}
	if pendingID != 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("there is already a pending request for this attendance"), http.StatusBadRequest)
	}

	var response CreateResponse
	response.AttendanceID = *request.AttendanceID
	response.AccountID = owner
	response.Reason = request.Reason
	response.Status = StatusPending

	if request.RequestedTimeIn != nil {
		parsed, err := parseTimestamp(*request.RequestedTimeIn)
		if err != nil {
			return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		response.RequestedTimeIn = &parsed
	}
	if request.RequestedTimeOut != nil {
		parsed, err := parseTimestamp(*request.RequestedTimeOut)
		if err != nil {
			return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		response.RequestedTimeOut = &parsed
	}

	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating action log"), http.StatusBadRequest)
	}

	return response, nil
}

// Approve applies the requested times to the attendance row and marks it
// APPROVED. Only PENDING requests can be decided.
func (r Repository) Approve(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return err
	}

	log, err := r.pendingById(ctx, id)
	if err != nil {
		return err
	}

	attendance := new(entity.Attendance)
	err = r.NewSelect().Model(attendance).Where("id = ? AND deleted_at IS NULL", log.AttendanceID).Scan(ctx)
	if err != nil {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	timeIn := attendance.TimeIn
	timeOut := attendance.TimeOut

	now := time.Now()

	q := r.NewUpdate().Table("attendances").Where("deleted_at IS NULL AND id = ?", log.AttendanceID)
	if log.RequestedTimeIn != nil {
		timeIn = log.RequestedTimeIn
		q.Set("time_in = ?", *log.RequestedTimeIn)
	}
	if log.RequestedTimeOut != nil {
		timeOut = log.RequestedTimeOut
		q.Set("time_out = ?", *log.RequestedTimeOut)
	}
	q.Set("total_hours = ?", service.CalculateTotalHours(timeIn, timeOut))
	q.Set("status = ?", "APPROVED")
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "applying amendment"), http.StatusBadRequest)
	}

	return r.decide(ctx, id, StatusApproved, claims.UserId)
}

func (r Repository) Reject(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return err
	}

	if _, err = r.pendingById(ctx, id); err != nil {
		return err
	}

	return r.decide(ctx, id, StatusRejected, claims.UserId)
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "action_logs", id)
}

func (r Repository) pendingById(ctx context.Context, id int) (entity.ActionLog, error) {
	var log entity.ActionLog

	err := r.NewSelect().Model(&log).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		return entity.ActionLog{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if log.Status == nil || *log.Status != StatusPending {
		return entity.ActionLog{}, web.NewRequestError(errors.New("request is already decided"), http.StatusBadRequest)
	}

	return log, nil
}

func (r Repository) decide(ctx context.Context, id int, status string, decidedBy int) error {
	q := r.NewUpdate().Table("action_logs").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("status = ?", status)
	q.Set("decided_by = ?", decidedBy)
	q.Set("decided_at = ?", time.Now())
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", decidedBy)

	if _, err := q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "deciding action log"), http.StatusBadRequest)
	}

	return nil
}

func parseTimestamp(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unparsable timestamp: %s", value)
}
