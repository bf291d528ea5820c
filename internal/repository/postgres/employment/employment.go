package employment

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
	"workforce/backend/internal/service"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			e.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND
		(a.employee_id ilike '%s' OR a.first_name ilike '%s' OR a.last_name ilike '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if filter.DepartmentID != nil {
		whereQuery += fmt.Sprintf(` AND e.department_id = %d`, *filter.DepartmentID)
	}
	if filter.EmploymentType != nil {
		employmentType, err := service.ClassifyEmploymentType(*filter.EmploymentType)
		if err != nil {
			return nil, 0, web.NewRequestError(err, http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND e.employment_type = '%s'`, employmentType)
	}

	orderQuery := "ORDER BY e.created_at desc"

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
			e.id,
			e.account_id,
			a.employee_id,
			a.first_name,
			a.last_name,
			e.position,
			e.rank,
			e.department_id,
			d.name,
			e.employment_type,
			e.hourly_rate,
			e.status
		FROM employments e
		LEFT JOIN accounts a ON a.id = e.account_id
		LEFT JOIN departments d ON d.id = e.department_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting employments"), http.StatusBadRequest)
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
			&detail.Position,
			&detail.Rank,
			&detail.DepartmentID,
			&detail.Department,
			&detail.EmploymentType,
			&detail.HourlyRate,
			&detail.Status); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employment list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(e.id)
		FROM employments e
		LEFT JOIN accounts a ON a.id = e.account_id
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employment count"), http.StatusBadRequest)
	}

	return list, count, nil
}

func (r Repository) GetByAccountId(ctx context.Context, accountID int) (GetByAccountIdResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetByAccountIdResponse{}, err
	}

	// Employees may only read their own employment record.
	if claims.Role == auth.RoleEmployee && claims.UserId != accountID {
		return GetByAccountIdResponse{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	query := fmt.Sprintf(`
		SELECT
			e.id,
			e.account_id,
			e.position,
			e.rank,
			e.department_id,
			d.name,
			e.employment_type,
			e.hourly_rate,
			e.bank_name,
			e.bank_account,
			e.status
		FROM employments e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.deleted_at IS NULL AND e.account_id = %d
	`, accountID)

	var detail GetByAccountIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.AccountID,
		&detail.Position,
		&detail.Rank,
		&detail.DepartmentID,
		&detail.Department,
		&detail.EmploymentType,
		&detail.HourlyRate,
		&detail.BankName,
		&detail.BankAccount,
		&detail.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetByAccountIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetByAccountIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting employment"), http.StatusBadRequest)
	}

	return detail, nil
}

// Upsert creates the employment record for an account or updates the
// existing one; there is at most one live record per account.
func (r Repository) Upsert(ctx context.Context, request UpsertRequest) (UpsertResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return UpsertResponse{}, err
	}

	if err := r.ValidateStruct(&request, "AccountID"); err != nil {
		return UpsertResponse{}, err
	}

	if request.EmploymentType != nil {
		employmentType, err := service.ClassifyEmploymentType(*request.EmploymentType)
		if err != nil {
			return UpsertResponse{}, web.NewRequestError(err, http.StatusBadRequest)
		}
		request.EmploymentType = &employmentType
	}

	existingID := 0
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT coalesce((SELECT id FROM employments WHERE account_id = %d AND deleted_at IS NULL), 0)`, request.AccountID),
	).Scan(&existingID)
	if err != nil {
		return UpsertResponse{}, web.NewRequestError(errors.Wrap(err, "employment existence check"), http.StatusInternalServerError)
	}

	if existingID == 0 {
		var response UpsertResponse
		response.AccountID = request.AccountID
		response.Position = request.Position
		response.Rank = request.Rank
		response.DepartmentID = request.DepartmentID
		response.EmploymentType = request.EmploymentType
		response.HourlyRate = request.HourlyRate
		response.BankName = request.BankName
		response.BankAccount = request.BankAccount
		response.Status = request.Status
		response.CreatedAt = time.Now()
		response.CreatedBy = claims.UserId

		_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
		if err != nil {
			return UpsertResponse{}, web.NewRequestError(errors.Wrap(err, "creating employment"), http.StatusBadRequest)
		}

		return response, nil
	}

	q := r.NewUpdate().Table("employments").Where("deleted_at IS NULL AND id = ?", existingID)

	if request.Position != nil {
		q.Set("position = ?", request.Position)
	}
	if request.Rank != nil {
		q.Set("rank = ?", request.Rank)
	}
	if request.DepartmentID != nil {
		q.Set("department_id = ?", request.DepartmentID)
	}
	if request.EmploymentType != nil {
		q.Set("employment_type = ?", request.EmploymentType)
	}
	if request.HourlyRate != nil {
		q.Set("hourly_rate = ?", request.HourlyRate)
	}
	if request.BankName != nil {
		q.Set("bank_name = ?", request.BankName)
	}
	if request.BankAccount != nil {
		q.Set("bank_account = ?", request.BankAccount)
	}
	if request.Status != nil {
		q.Set("status = ?", request.Status)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return UpsertResponse{}, web.NewRequestError(errors.Wrap(err, "updating employment"), http.StatusBadRequest)
	}

	updated, err := r.GetByAccountId(ctx, request.AccountID)
	if err != nil {
		return UpsertResponse{}, err
	}

	return UpsertResponse{
		ID:             updated.ID,
		AccountID:      request.AccountID,
		Position:       updated.Position,
		Rank:           updated.Rank,
		DepartmentID:   updated.DepartmentID,
		EmploymentType: updated.EmploymentType,
		HourlyRate:     updated.HourlyRate,
		BankName:       updated.BankName,
		BankAccount:    updated.BankAccount,
		Status:         updated.Status,
	}, nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "employments", id)
}
