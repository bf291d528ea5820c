package payslip

import (
	"fmt"
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/payslip"
	"workforce/backend/internal/service"
)

type Controller struct {
	payslip Payslip
}

func NewController(payslip Payslip) *Controller {
	return &Controller{payslip}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter payslip.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if accountId, ok := c.GetQueryFunc(reflect.Int, "account_id").(*int); ok {
		filter.AccountID = accountId
	}
	if month, ok := c.GetQueryFunc(reflect.String, "month").(*string); ok {
		filter.Month = month
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.payslip.GetList(c.Ctx, filter)
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

// GetByEmployee lists one account's payslips.
func (uc Controller) GetByEmployee(c *web.Context) error {
	accountID := c.GetParam(reflect.Int, "account_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var filter payslip.Filter
	filter.AccountID = &accountID

	list, count, err := uc.payslip.GetList(c.Ctx, filter)
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

func (uc Controller) Create(c *web.Context) error {
	var request payslip.CreateRequest

	if err := c.BindFunc(&request, "AccountID", "PeriodStart", "PeriodEnd", "HoursWorked", "GrossPay"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.payslip.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

// DownloadPdf renders the payslip as a pdf and serves it as an attachment.
func (uc Controller) DownloadPdf(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	doc, err := uc.payslip.GetDocument(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	path, err := service.GeneratePayslipPDF(doc)
	if err != nil {
		return c.RespondError(err)
	}

	c.FileAttachment(path, fmt.Sprintf("payslip-%d.pdf", id))
	return nil
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.payslip.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
