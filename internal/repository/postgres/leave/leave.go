package leave

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

var leaveTypes = []string{"VACATION", "SICK", "EMERGENCY", "UNPAID"}

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func validLeaveType(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, t := range leaveTypes {
		if normalized == t {
			return normalized, nil
		}
	}
	return "", errors.Errorf("incorrect leave type. type should be one of %s", strings.Join(leaveTypes, ", "))
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

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
	if filter.Type != nil {
		leaveType, err := validLeaveType(*filter.Type)
		if err != nil {
			return nil, 0, web.NewRequestError(err, http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND l.type = '%s'`, leaveType)
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
			l.account_id,
			a.employee_id,
			a.first_name,
			a.last_name,
			l.type,
			l.units,
			l.start_date::text,
			l.end_date::text,
			l.reason,
			l.status,
			l.decided_by,
			l.decided_at,
			l.created_at
		FROM leaves l
		LEFT JOIN accounts a ON a.id = l.account_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting leaves"), http.StatusBadRequest)
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
			&detail.Type,
			&detail.Units,
			&detail.StartDate,
			&detail.EndDate,
			&detail.Reason,
			&detail.Status,
			&detail.DecidedBy,
			&detail.DecidedAt,
			&detail.CreatedAt); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning leave list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(l.id)
		FROM leaves l
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning leave count"), http.StatusBadRequest)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Type", "StartDate", "EndDate", "Reason"); err != nil {
		return CreateResponse{}, err
	}

	leaveType, err := validLeaveType(*request.Type)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	start, err := time.Parse("2006-01-02", *request.StartDate)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "start_date parse"), http.StatusBadRequest)
	}
	end, err := time.Parse("2006-01-02", *request.EndDate)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "end_date parse"), http.StatusBadRequest)
	}

	startHalf := request.StartHalf != nil && *request.StartHalf
	endHalf := request.EndHalf != nil && *request.EndHalf

	units, err := service.LeaveUnits(start, end, startHalf, endHalf)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	overlapID := 0
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT coalesce((SELECT id FROM leaves WHERE account_id = %d AND deleted_at IS NULL AND status != 'REJECTED' AND start_date <= '%s' AND end_date >= '%s' LIMIT 1), 0)`,
			claims.UserId, end.Format("2006-01-02"), start.Format("2006-01-02")),
	).Scan(&overlapID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "overlap check"), http.StatusInternalServerError)
	}
	if overlapID != 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("leave period overlaps an existing request"), http.StatusBadRequest)
	}

	var response CreateResponse
	response.AccountID = claims.UserId
	response.Type = leaveType
	response.Units = units
	response.StartDate = start.Format("2006-01-02")
	response.EndDate = end.Format("2006-01-02")
	response.Reason = request.Reason
	response.Status = StatusPending
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating leave"), http.StatusBadRequest)
	}

	return response, nil
}

// UpdateColumns lets the owner adjust a request while it is still PENDING.
func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	current, err := r.pendingById(ctx, request.ID)
	if err != nil {
		return err
	}
	if claims.Role == auth.RoleEmployee && current.AccountID != nil && *current.AccountID != claims.UserId {
		return web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	start := time.Time{}
	end := time.Time{}
	if current.StartDate != nil {
		start, _ = time.Parse("2006-01-02", *current.StartDate)
	}
	if current.EndDate != nil {
		end, _ = time.Parse("2006-01-02", *current.EndDate)
	}

	q := r.NewUpdate().Table("leaves").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Type != nil {
		leaveType, err := validLeaveType(*request.Type)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
		q.Set("type = ?", leaveType)
	}
	if request.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *request.StartDate)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "start_date parse"), http.StatusBadRequest)
		}
		start = parsed
		q.Set("start_date = ?", parsed.Format("2006-01-02"))
	}
	if request.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *request.EndDate)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "end_date parse"), http.StatusBadRequest)
		}
		end = parsed
		q.Set("end_date = ?", parsed.Format("2006-01-02"))
	}
	if request.Reason != nil {
		q.Set("reason = ?", *request.Reason)
	}

	startHalf := request.StartHalf != nil && *request.StartHalf
	endHalf := request.EndHalf != nil && *request.EndHalf

	units, err := service.LeaveUnits(start, end, startHalf, endHalf)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	q.Set("units = ?", units)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating leave"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Approve(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return err
	}

	if _, err = r.pendingById(ctx, id); err != nil {
		return err
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
	return r.DeleteRow(ctx, "leaves", id)
}

func (r Repository) pendingById(ctx context.Context, id int) (entity.Leave, error) {
	var leave entity.Leave

	err := r.NewSelect().Model(&leave).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		return entity.Leave{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if leave.Status == nil || *leave.Status != StatusPending {
		return entity.Leave{}, web.NewRequestError(errors.New("request is already decided"), http.StatusBadRequest)
	}

	return leave, nil
}

func (r Repository) decide(ctx context.Context, id int, status string, decidedBy int) error {
	q := r.NewUpdate().Table("leaves").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("status = ?", status)
	q.Set("decided_by = ?", decidedBy)
	q.Set("decided_at = ?", time.Now())
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", decidedBy)

	if _, err := q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "deciding leave"), http.StatusBadRequest)
	}

	return nil
}
