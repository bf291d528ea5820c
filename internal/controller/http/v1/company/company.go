package company

import (
	"net/http"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/company"
	"workforce/backend/internal/service"
)

type Controller struct {
	company Company
}

func NewController(company Company) *Controller {
	return &Controller{company}
}

func (uc Controller) GetInfo(c *web.Context) error {
	response, err := uc.company.GetInfo(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	var request company.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if file, err := c.FormFile("logo"); err == nil {
		path, err := service.Upload(file, "company")
		if err != nil {
			return c.RespondError(err)
		}
		request.Logo = &path
	}

	if err := uc.company.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
