package account

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/entity"
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

func (r Repository) GetByEmployeeID(ctx context.Context, employeeID string) (entity.Account, error) {
	var detail entity.Account

	err := r.NewSelect().Model(&detail).Where("employee_id = ? AND deleted_at IS NULL", employeeID).Scan(ctx)
	if err != nil {
		return entity.Account{}, &web.Error{
			Err:    errors.New("account not found!"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

func (r Repository) GetByEmail(ctx context.Context, email string) (entity.Account, error) {
	var detail entity.Account

	err := r.NewSelect().Model(&detail).Where("email = ? AND deleted_at IS NULL", email).Scan(ctx)
	if err != nil {
		return entity.Account{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return detail, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Account, error) {
	var detail entity.Account

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if err != nil {
		return entity.Account{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			a.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(a.employee_id ilike '%s' OR a.first_name ilike '%s' OR a.last_name ilike '%s' OR a.email ilike '%s')`,
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if filter.Role != nil {
		role := strings.ToUpper(strings.Replace(*filter.Role, "'", "", -1))
		whereQuery += fmt.Sprintf(` AND a.role = '%s'`, role)
	}
	if filter.DepartmentID != nil {
		whereQuery += fmt.Sprintf(` AND a.department_id = %d`, *filter.DepartmentID)
	}
	if filter.Archived != nil {
		whereQuery += fmt.Sprintf(` AND a.archived = %t`, *filter.Archived)
	} else {
		whereQuery += ` AND a.archived = false`
	}

	orderQuery := "ORDER BY a.created_at desc"

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
			a.id,
			a.employee_id,
			a.first_name,
			a.last_name,
			a.email,
			a.phone,
			a.role,
			a.department_id,
			d.name,
			a.verified,
			a.archived
		FROM accounts a
		LEFT JOIN departments d ON d.id = a.department_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting accounts"), http.StatusBadRequest)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FirstName,
			&detail.LastName,
			&detail.Email,
			&detail.Phone,
			&detail.Role,
			&detail.DepartmentID,
			&detail.Department,
			&detail.Verified,
			&detail.Archived); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning account list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM accounts a
			%s
	`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting account count"), http.StatusBadRequest)
	}

	count := 0

	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning account count"), http.StatusBadRequest)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	// Employees may only read their own record.
	if claims.Role == auth.RoleEmployee && claims.UserId != id {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.employee_id,
			a.first_name,
			a.last_name,
			a.email,
			a.phone,
			a.role,
			a.department_id,
			d.name,
			a.profile_image,
			a.verified,
			a.archived
		FROM accounts a
		LEFT JOIN departments d ON d.id = a.department_id
		WHERE a.deleted_at IS NULL AND a.id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.EmployeeID,
		&detail.FirstName,
		&detail.LastName,
		&detail.Email,
		&detail.Phone,
		&detail.Role,
		&detail.DepartmentID,
		&detail.Department,
		&detail.ProfileImage,
		&detail.Verified,
		&detail.Archived,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusBadRequest)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting account detail"), http.StatusBadRequest)
	}

	return detail, nil
}

func (r Repository) employeeIDTaken(ctx context.Context, employeeID string, excludeID int) (bool, error) {
	taken := true
	query := fmt.Sprintf(
		`SELECT CASE WHEN (SELECT id FROM accounts WHERE employee_id = '%s' AND deleted_at IS NULL AND id != %d) IS NOT NULL THEN true ELSE false END`,
		strings.Replace(employeeID, "'", "''", -1), excludeID,
	)
	if err := r.QueryRowContext(ctx, query).Scan(&taken); err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "employee_id check"), http.StatusInternalServerError)
	}
	return taken, nil
}

func validRole(role string) (string, error) {
	normalized := strings.ToUpper(role)
	if normalized != auth.RoleEmployee && normalized != auth.RoleManager && normalized != auth.RoleAdmin {
		return "", web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE, MANAGER or ADMIN"), http.StatusBadRequest)
	}
	return normalized, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "Password", "Role", "FirstName"); err != nil {
		return CreateResponse{}, err
	}

	taken, err := r.employeeIDTaken(ctx, *request.EmployeeID, 0)
	if err != nil {
		return CreateResponse{}, err
	}
	if taken {
		return CreateResponse{}, web.NewRequestError(errors.New("employee_id is used"), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)

	role, err := validRole(*request.Role)
	if err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse
	response.Role = &role
	response.EmployeeID = request.EmployeeID
	response.Password = &hashedPassword
	response.FirstName = request.FirstName
	response.LastName = request.LastName
	response.DepartmentID = request.DepartmentID
	response.Phone = request.Phone
	response.Email = request.Email
	response.Verified = true
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating account"), http.StatusBadRequest)
	}

	response.Password = nil

	return response, nil
}

// Register creates a self-signed-up employee account. There are no claims
// yet, the account starts unverified.
func (r Repository) Register(ctx context.Context, request RegisterRequest) (RegisterResponse, error) {
	if err := r.ValidateStruct(&request, "EmployeeID", "Password", "FirstName", "Email"); err != nil {
		return RegisterResponse{}, err
	}

	taken, err := r.employeeIDTaken(ctx, *request.EmployeeID, 0)
	if err != nil {
		return RegisterResponse{}, err
	}
	if taken {
		return RegisterResponse{}, web.NewRequestError(errors.New("employee_id is used"), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)
	role := auth.RoleEmployee

	var response RegisterResponse
	response.EmployeeID = request.EmployeeID
	response.Password = &hashedPassword
	response.Role = &role
	response.FirstName = request.FirstName
	response.LastName = request.LastName
	response.Phone = request.Phone
	response.Email = request.Email
	response.Verified = false
	response.CreatedAt = time.Now()

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return RegisterResponse{}, web.NewRequestError(errors.Wrap(err, "registering account"), http.StatusBadRequest)
	}

	response.Password = nil

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("accounts").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.EmployeeID != nil {
		taken, err := r.employeeIDTaken(ctx, *request.EmployeeID, request.ID)
		if err != nil {
			return err
		}
		if taken {
			return web.NewRequestError(errors.New("employee_id is used"), http.StatusBadRequest)
		}
		q.Set("employee_id = ?", request.EmployeeID)
	}

	if request.Role != nil {
		role, err := validRole(*request.Role)
		if err != nil {
			return err
		}
		q.Set("role = ?", role)
	}

	if request.FirstName != nil {
		q.Set("first_name = ?", request.FirstName)
	}
	if request.LastName != nil {
		q.Set("last_name = ?", request.LastName)
	}
	if request.DepartmentID != nil {
		q.Set("department_id = ?", request.DepartmentID)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.ProfileImage != nil {
		q.Set("profile_image = ?", request.ProfileImage)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating account"), http.StatusBadRequest)
	}

	return nil
}

// UpdateProfileImage lets any authenticated account change its own picture.
func (r Repository) UpdateProfileImage(ctx context.Context, id int, path string) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if claims.Role == auth.RoleEmployee && claims.UserId != id {
		return web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	q := r.NewUpdate().Table("accounts").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("profile_image = ?", path)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating profile image"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) setArchived(ctx context.Context, id int, archived bool) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("accounts").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("archived = ?", archived)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating archive state"), http.StatusBadRequest)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading affected rows"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) Archive(ctx context.Context, id int) error {
	return r.setArchived(ctx, id, true)
}

func (r Repository) Unarchive(ctx context.Context, id int) error {
	return r.setArchived(ctx, id, false)
}

// SetVerified marks an account's email as confirmed. Called from the mailed
// verification link, so there are no claims.
func (r Repository) SetVerified(ctx context.Context, id int) error {
	q := r.NewUpdate().Table("accounts").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("verified = ?", true)
	q.Set("updated_at = ?", time.Now())

	if _, err := q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "verifying account"), http.StatusBadRequest)
	}

	return nil
}

// UpdatePassword stores a new bcrypt hash. Called from the reset flow, so
// there are no claims.
func (r Repository) UpdatePassword(ctx context.Context, id int, hashedPassword string) error {
	q := r.NewUpdate().Table("accounts").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("password = ?", hashedPassword)
	q.Set("updated_at = ?", time.Now())

	if _, err := q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating password"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "accounts", id)
}

// GetWorkforce returns the directory rows for the excel export.
func (r Repository) GetWorkforce(ctx context.Context) ([]service.WorkforceRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			a.employee_id,
			coalesce(a.first_name, ''),
			coalesce(a.last_name, ''),
			coalesce(a.email, ''),
			coalesce(a.phone, ''),
			coalesce(a.role::text, ''),
			coalesce(d.name, ''),
			coalesce(e.position, ''),
			coalesce(e.employment_type, ''),
			coalesce(e.status, '')
		FROM accounts a
		LEFT JOIN departments d ON d.id = a.department_id
		LEFT JOIN employments e ON e.account_id = a.id AND e.deleted_at IS NULL
		WHERE a.deleted_at IS NULL AND a.archived = false
		ORDER BY a.employee_id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting workforce"), http.StatusBadRequest)
	}

	var list []service.WorkforceRow
	for rows.Next() {
		var row service.WorkforceRow
		if err = rows.Scan(
			&row.EmployeeID,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.Phone,
			&row.Role,
			&row.DepartmentName,
			&row.Position,
			&row.EmploymentType,
			&row.Status); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning workforce row"), http.StatusBadRequest)
		}
		list = append(list, row)
	}

	return list, nil
}

// GetBadgeList returns what the printed badge sheet needs.
func (r Repository) GetBadgeList(ctx context.Context) ([]service.BadgeEmployee, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			a.employee_id,
			trim(coalesce(a.first_name, '') || ' ' || coalesce(a.last_name, '')),
			coalesce(d.name, '')
		FROM accounts a
		LEFT JOIN departments d ON d.id = a.department_id
		WHERE a.deleted_at IS NULL AND a.archived = false
		ORDER BY a.employee_id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting badge list"), http.StatusBadRequest)
	}

	var list []service.BadgeEmployee
	for rows.Next() {
		var row service.BadgeEmployee
		if err = rows.Scan(&row.EmployeeID, &row.FullName, &row.Department); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning badge row"), http.StatusBadRequest)
		}
		list = append(list, row)
	}

	return list, nil
}
