package account

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/account"
	"workforce/backend/internal/service"
)

type Controller struct {
	account Account
}

func NewController(account Account) *Controller {
	return &Controller{account}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter account.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if role, ok := c.GetQueryFunc(reflect.String, "role").(*string); ok {
		filter.Role = role
	}
	if departmentId, ok := c.GetQueryFunc(reflect.Int, "department_id").(*int); ok {
		filter.DepartmentID = departmentId
	}
	if archived, ok := c.GetQueryFunc(reflect.Bool, "archived").(*bool); ok {
		filter.Archived = archived
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.account.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.account.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request account.CreateRequest

	if err := c.BindFunc(&request, "EmployeeID", "Password", "Role", "FirstName", "LastName", "Email"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.account.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request account.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.account.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// UploadProfileImage accepts a multipart avatar and stores it under the
// media root.
func (uc Controller) UploadProfileImage(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	path, err := service.Upload(file, "avatars")
	if err != nil {
		return c.RespondError(err)
	}

	if err := uc.account.UpdateProfileImage(c.Ctx, id, path); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   map[string]string{"profile_image": path},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Archive(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.account.Archive(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Unarchive(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.account.Unarchive(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.account.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// ExportExcel writes the workforce roster to an xlsx file and serves it.
func (uc Controller) ExportExcel(c *web.Context) error {
	rows, err := uc.account.GetWorkforce(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	fileName := fmt.Sprintf("workforce-%s.xlsx", time.Now().Format("2006-01-02"))
	path, err := service.WorkforceToExcel(rows, fileName)
	if err != nil {
		return c.RespondError(err)
	}

	c.FileAttachment(path, fileName)
	return nil
}

// ExportTemplate serves an empty roster sheet for bulk imports.
func (uc Controller) ExportTemplate(c *web.Context) error {
	path, err := service.WorkforceTemplate()
	if err != nil {
		return c.RespondError(err)
	}

	c.FileAttachment(path, "workforce-template.xlsx")
	return nil
}

// Badge generates a qr-code badge for one employee.
func (uc Controller) Badge(c *web.Context) error {
	id := c.GetParam(reflect.String, "employee_id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	path, err := service.GenerateBadge(id)
	if err != nil {
		return c.RespondError(err)
	}

	c.FileAttachment(path, fmt.Sprintf("badge-%s.png", id))
	return nil
}

// BadgeSheet renders a printable pdf of badges for the whole roster.
func (uc Controller) BadgeSheet(c *web.Context) error {
	employees, err := uc.account.GetBadgeList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	path, err := service.GenerateBadgeSheet(employees)
	if err != nil {
		return c.RespondError(err)
	}

	c.FileAttachment(path, "badges.pdf")
	return nil
}
