package payslip

import (
	"context"

	"workforce/backend/internal/repository/postgres/payslip"
	"workforce/backend/internal/service"
)

type Payslip interface {
	GetList(ctx context.Context, filter payslip.Filter) ([]payslip.GetListResponse, int, error)
	Create(ctx context.Context, request payslip.CreateRequest) (payslip.CreateResponse, error)
	GetDocument(ctx context.Context, id int) (service.PayslipDocument, error)
	Delete(ctx context.Context, id int) error
}
