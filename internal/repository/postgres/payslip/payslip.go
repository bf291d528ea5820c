package payslip

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/http"
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
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	// Employees only see their own payslips.
	if claims.Role == auth.RoleEmployee {
		filter.AccountID = &claims.UserId
	}

	whereQuery := `
		WHERE
			p.deleted_at IS NULL
		`

	if filter.AccountID != nil {
		whereQuery += fmt.Sprintf(` AND p.account_id = %d`, *filter.AccountID)
	}
	if filter.Month != nil {
		monthStart, err := time.Parse("2006-01", *filter.Month)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "month parse"), http.StatusBadRequest)
		}
		monthEnd := monthStart.AddDate(0, 1, -1)
		whereQuery += fmt.Sprintf(` AND p.period_start <= '%s' AND p.period_end >= '%s'`,
			monthEnd.Format("2006-01-02"), monthStart.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY p.period_end desc"

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
			p.id,
			p.account_id,
			a.employee_id,
			a.first_name,
			a.last_name,
			p.period_start::text,
			p.period_end::text,
			p.hours_worked,
			p.gross_pay,
			p.deductions,
			p.net_pay
		FROM payslips p
		LEFT JOIN accounts a ON a.id = p.account_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting payslips"), http.StatusBadRequest)
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
			&detail.PeriodStart,
			&detail.PeriodEnd,
			&detail.HoursWorked,
			&detail.GrossPay,
			&detail.Deductions,
			&detail.NetPay); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning payslip list"), http.StatusBadRequest)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(p.id)
		FROM payslips p
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning payslip count"), http.StatusBadRequest)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "AccountID", "PeriodStart", "PeriodEnd", "HoursWorked", "GrossPay"); err != nil {
		return CreateResponse{}, err
	}

	start, err := time.Parse("2006-01-02", *request.PeriodStart)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "period_start parse"), http.StatusBadRequest)
	}
	end, err := time.Parse("2006-01-02", *request.PeriodEnd)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "period_end parse"), http.StatusBadRequest)
	}
	if end.Before(start) {
		return CreateResponse{}, web.NewRequestError(errors.New("period end before period start"), http.StatusBadRequest)
	}

	deductions := 0.0
	if request.Deductions != nil {
		deductions = *request.Deductions
	}
	if *request.GrossPay < 0 || deductions < 0 || *request.HoursWorked < 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("amounts must not be negative"), http.StatusBadRequest)
	}

	netPay := *request.GrossPay - deductions
	if netPay < 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("deductions exceed gross pay"), http.StatusBadRequest)
	}
	netPay = math.Round(netPay*100) / 100

	accountID := 0
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT coalesce((SELECT id FROM accounts WHERE id = %d AND deleted_at IS NULL), 0)`, *request.AccountID),
	).Scan(&accountID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "account lookup"), http.StatusInternalServerError)
	}
	if accountID == 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("account not found"), http.StatusNotFound)
	}

	duplicateID := 0
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT coalesce((SELECT id FROM payslips WHERE account_id = %d AND deleted_at IS NULL AND period_start <= '%s' AND period_end >= '%s' LIMIT 1), 0)`,
			accountID, end.Format("2006-01-02"), start.Format("2006-01-02")),
	).Scan(&duplicateID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "period overlap check"), http.StatusInternalServerError)
	}
	if duplicateID != 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("payslip period overlaps an existing payslip"), http.StatusBadRequest)
	}

	var response CreateResponse
	response.AccountID = accountID
	response.PeriodStart = start.Format("2006-01-02")
	response.PeriodEnd = end.Format("2006-01-02")
	response.HoursWorked = *request.HoursWorked
	response.GrossPay = *request.GrossPay
	response.Deductions = deductions
	response.NetPay = netPay
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating payslip"), http.StatusBadRequest)
	}

	return response, nil
}

// GetDocument loads everything the rendered pdf shows. Employees may only
// fetch their own payslips.
func (r Repository) GetDocument(ctx context.Context, id int) (service.PayslipDocument, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return service.PayslipDocument{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.account_id,
			coalesce((SELECT company_name FROM company_info WHERE id = 1), ''),
			coalesce(a.employee_id, ''),
			coalesce(a.first_name, '') || ' ' || coalesce(a.last_name, ''),
			coalesce(d.name, ''),
			p.period_start::text,
			p.period_end::text,
			p.hours_worked,
			p.gross_pay,
			p.deductions,
			p.net_pay
		FROM payslips p
		LEFT JOIN accounts a ON a.id = p.account_id
		LEFT JOIN departments d ON d.id = a.department_id
		WHERE p.deleted_at IS NULL AND p.id = %d
	`, id)

	var (
		doc       service.PayslipDocument
		accountID int
	)

	err = r.QueryRowContext(ctx, query).Scan(
		&doc.ID,
		&accountID,
		&doc.CompanyName,
		&doc.EmployeeID,
		&doc.FullName,
		&doc.Department,
		&doc.PeriodStart,
		&doc.PeriodEnd,
		&doc.HoursWorked,
		&doc.GrossPay,
		&doc.Deductions,
		&doc.NetPay,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return service.PayslipDocument{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return service.PayslipDocument{}, web.NewRequestError(errors.Wrap(err, "selecting payslip document"), http.StatusBadRequest)
	}

	if claims.Role == auth.RoleEmployee && accountID != claims.UserId {
		return service.PayslipDocument{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	return doc, nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "payslips", id)
}
