package attendance

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

// Attendance approval statuses. Plain tokens, approval itself goes through
// the action log workflow.
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

func (r Repository) GetById(ctx context.Context, id int) (entity.Attendance, error) {
	var detail entity.Attendance

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return detail, nil
}

// TimeIn opens a new attendance cycle for the caller. The cooldown guard
// runs in the controller before this is reached.
func (r Repository) TimeIn(ctx context.Context, request TimeInRequest) (TimeInResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return TimeInResponse{}, err
	}

	now := time.Now()
	workDay := now.Format("2006-01-02")

	openID := 0
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT coalesce((SELECT id FROM attendances WHERE account_id = %d AND work_day = '%s' AND time_out IS NULL AND deleted_at IS NULL), 0)`,
			claims.UserId, workDay),
	).Scan(&openID)
	if err != nil {
		return TimeInResponse{}, web.NewRequestError(errors.Wrap(err, "open cycle check"), http.StatusInternalServerError)
	}
	if openID != 0 {
		return TimeInResponse{}, web.NewRequestError(errors.New("already timed in, time out first"), http.StatusBadRequest)
	}

	var response TimeInResponse
	response.AccountID = claims.UserId
	response.WorkDay = workDay
	response.TimeIn = now
	response.Shift = service.ShiftLabel(now)
	response.Status = StatusPending
	if request.ImagePath != "" {
		response.TimeInImage = &request.ImagePath
	}
	response.CreatedAt = now
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return TimeInResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
	}

	return response, nil
}

// TimeOut closes the caller's open cycle and fixes the total.
func (r Repository) TimeOut(ctx context.Context, request TimeOutRequest) (TimeOutResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return TimeOutResponse{}, err
	}

	var (
		id      int
		workDay string
		timeIn  time.Time
	)
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, work_day::text, time_in FROM attendances WHERE account_id = %d AND time_out IS NULL AND deleted_at IS NULL ORDER BY time_in DESC LIMIT 1`,
			claims.UserId),
	).Scan(&id, &workDay, &timeIn)
	if errors.Is(err, sql.ErrNoRows) {
		return TimeOutResponse{}, web.NewRequestError(errors.New("no open attendance cycle"), http.StatusBadRequest)
	}
	if err != nil {
		return TimeOutResponse{}, web.NewRequestError(errors.Wrap(err, "selecting open cycle"), http.StatusBadRequest)
	}

	now := time.Now()
	totalHours := service.CalculateTotalHours(&timeIn, &now)

	q := r.NewUpdate().Table("attendances").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("time_out = ?", now)
	q.Set("total_hours = ?", totalHours)
	if request.ImagePath != "" {
		q.Set("time_out_image = ?", request.ImagePath)
	}
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return TimeOutResponse{}, web.NewRequestError(errors.Wrap(err, "closing attendance"), http.StatusBadRequest)
	}

	return TimeOutResponse{
		ID:         id,
		AccountID:  claims.UserId,
		WorkDay:    workDay,
		TimeOut:    now,
		TotalHours: totalHours,
	}, nil
}

// GetLatestByAccountId returns the newest cycle for an account. The Toggle
// field is filled by the controller after consulting the cache.
func (r Repository) GetLatestByAccountId(ctx context.Context, accountID int) (LatestResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return LatestResponse{}, err
	}

	if claims.Role == auth.RoleEmployee && claims.UserId != accountID {
		return LatestResponse{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	query := fmt.Sprintf(`
		SELECT
			t.id,
			t.work_day::text,
			t.time_in,
			t.time_out,
			t.total_hours,
			t.shift,
			t.status
		FROM attendances t
		WHERE t.deleted_at IS NULL AND t.account_id = %d
		ORDER BY t.time_in DESC
		LIMIT 1
	`, accountID)

	response := LatestResponse{AccountID: accountID}

	var id int
	err = r.QueryRowContext(ctx, query).Scan(
		&id,
		&response.WorkDay,
		&response.TimeIn,
		&response.TimeOut,
		&response.TotalHours,
		&response.Shift,
		&response.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// No cycle yet, still a valid answer.
		return response, nil
	}
	response.ID = &id
	if err != nil {
		return LatestResponse{}, web.NewRequestError(errors.Wrap(err, "selecting latest attendance"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	// Employees only see their own history.
	if claims.Role == auth.RoleEmployee {
		filter.AccountID = &claims.UserId
	}

	whereQuery := `
		WHERE
			t.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(a.employee_id ilike '%s' OR a.first_name ilike '%s' OR a.last_name ilike '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if filter.DepartmentID != nil {
		whereQuery += fmt.Sprintf(` AND a.department_id = %d`, *filter.DepartmentID)
	}
	if filter.AccountID != nil {
		whereQuery += fmt.Sprintf(` AND t.account_id = %d`, *filter.AccountID)
	}
	if filter.Status != nil {
		status := strings.ToUpper(strings.Replace(*filter.Status, "'", "", -1))
		if status != StatusPending && status != StatusApproved && status != StatusRejected {
			return nil, 0, web.NewRequestError(errors.New("incorrect status filter"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND t.status = '%s'`, status)
	}
	if filter.Date != nil {
		parsed, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND t.work_day = '%s'`, parsed.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY t.time_in desc"

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
			t.id,
			t.account_id,
			a.employee_id,
			a.first_name,
			a.last_name,
			d.name,
			t.work_day::text,
			t.time_in,
			t.time_out,
			t.total_hours,
			t.shift,
			t.status
		FROM attendances t
		LEFT JOIN accounts a ON a.id = t.account_id
		LEFT JOIN departments d ON d.id = a.department_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendances"), http.StatusBadRequest)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.AccountID,
			&detail.EmployeeID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Department,
			&detail.WorkDay,
			&detail.TimeIn,
			&detail.TimeOut,
			&detail.TotalHours,
			&detail.Shift,
			&detail.Status); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(t.id)
		FROM attendances t
		LEFT JOIN accounts a ON a.id = t.account_id
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance count"), http.StatusBadRequest)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			t.id,
			t.account_id,
			a.employee_id,
			a.first_name,
			a.last_name,
			d.name,
			t.work_day::text,
			t.time_in,
			t.time_out,
			t.total_hours,
			t.shift,
			t.status,
			t.time_in_image,
			t.time_out_image
		FROM attendances t
		LEFT JOIN accounts a ON a.id = t.account_id
		LEFT JOIN departments d ON d.id = a.department_id
		WHERE t.deleted_at IS NULL AND t.id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.AccountID,
		&detail.EmployeeID,
		&detail.FirstName,
		&detail.LastName,
		&detail.Department,
		&detail.WorkDay,
		&detail.TimeIn,
		&detail.TimeOut,
		&detail.TotalHours,
		&detail.Shift,
		&detail.Status,
		&detail.TimeInImage,
		&detail.TimeOutImage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting attendance detail"), http.StatusBadRequest)
	}

	return detail, nil
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

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	current, err := r.GetById(ctx, request.ID)
	if err != nil {
		return err
	}

	timeIn := current.TimeIn
	timeOut := current.TimeOut

	q := r.NewUpdate().Table("attendances").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.WorkDay != nil {
		parsed, err := time.Parse("2006-01-02", *request.WorkDay)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "work_day parse"), http.StatusBadRequest)
		}
		q.Set("work_day = ?", parsed.Format("2006-01-02"))
	}
	if request.TimeIn != nil {
		parsed, err := parseTimestamp(*request.TimeIn)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
		timeIn = &parsed
		q.Set("time_in = ?", parsed)
	}
	if request.TimeOut != nil {
		parsed, err := parseTimestamp(*request.TimeOut)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
		timeOut = &parsed
		q.Set("time_out = ?", parsed)
	}
	if request.TimeIn != nil || request.TimeOut != nil {
		q.Set("total_hours = ?", service.CalculateTotalHours(timeIn, timeOut))
	}
	if request.Status != nil {
		status := strings.ToUpper(*request.Status)
		if status != StatusPending && status != StatusApproved && status != StatusRejected {
			return web.NewRequestError(errors.New("incorrect status. status should be PENDING, APPROVED or REJECTED"), http.StatusBadRequest)
		}
		q.Set("status = ?", status)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusBadRequest)
	}

	return nil
}

// UpdateAll replaces the editable columns wholesale. All fields required.
func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID", "WorkDay", "TimeIn", "TimeOut", "Status"); err != nil {
		return err
	}

	return r.UpdateColumns(ctx, request)
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "attendances", id)
}

// GetStatistics summarizes today's attendance against the workday schedule
// in company_info.
func (r Repository) GetStatistics(ctx context.Context) (StatisticsResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return StatisticsResponse{}, err
	}

	today := time.Now().Format("2006-01-02")

	query := fmt.Sprintf(`
		SELECT
			(SELECT count(id) FROM accounts WHERE deleted_at IS NULL AND archived = false) AS total_employee,
			count(t.id) AS present,
			(SELECT count(id) FROM accounts WHERE deleted_at IS NULL AND archived = false) - count(t.id) AS absent,
			count(t.id) FILTER (WHERE t.time_in::time > coalesce((SELECT late_after FROM company_info WHERE id = 1), '09:20:00')) AS late_arrival,
			(SELECT count(id) FROM leaves WHERE deleted_at IS NULL AND status = 'APPROVED' AND start_date <= '%s' AND end_date >= '%s') AS on_leave
		FROM attendances t
		WHERE t.deleted_at IS NULL AND t.work_day = '%s'
	`, today, today, today)

	var response StatisticsResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&response.TotalEmployee,
		&response.Present,
		&response.Absent,
		&response.LateArrival,
		&response.OnLeave,
	)
	if err != nil {
		return StatisticsResponse{}, web.NewRequestError(errors.Wrap(err, "selecting attendance statistics"), http.StatusBadRequest)
	}

	return response, nil
}

// CloseForgotten flags and closes cycles left open after the given cutoff.
// The day-close job calls this with yesterday's end of day.
func (r Repository) CloseForgotten(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := r.ExecContext(ctx, `
		UPDATE attendances
		SET time_out = time_in, total_hours = '0.00', forgot_time_out = true, updated_at = now()
		WHERE deleted_at IS NULL AND time_out IS NULL AND time_in < ?
	`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "closing forgotten attendances")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "reading affected rows")
	}

	return int(affected), nil
}
