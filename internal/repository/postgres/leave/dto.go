package leave

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit     *int
	Offset    *int
	Page      *int
	Status    *string
	Type      *string
	AccountID *int
}

type GetListResponse struct {
	ID         int        `json:"id"`
	AccountID  int        `json:"account_id"`
	EmployeeID *string    `json:"employee_id"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Type       string     `json:"type"`
	Units      float64    `json:"units"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Reason     *string    `json:"reason"`
	Status     string     `json:"status"`
	DecidedBy  *int       `json:"decided_by"`
	DecidedAt  *time.Time `json:"decided_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CreateRequest struct {
	Type      *string `json:"type" form:"type"`
	StartDate *string `json:"start_date" form:"start_date"`
	EndDate   *string `json:"end_date" form:"end_date"`
	StartHalf *bool   `json:"start_half" form:"start_half"`
	EndHalf   *bool   `json:"end_half" form:"end_half"`
	Reason    *string `json:"reason" form:"reason"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:leaves"`

	ID        int       `json:"id" bun:"id,pk,autoincrement"`
	AccountID int       `json:"account_id" bun:"account_id"`
	Type      string    `json:"type" bun:"type"`
	Units     float64   `json:"units" bun:"units"`
	StartDate string    `json:"start_date" bun:"start_date"`
	EndDate   string    `json:"end_date" bun:"end_date"`
	Reason    *string   `json:"reason" bun:"reason"`
	Status    string    `json:"status" bun:"status"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID        int     `json:"id" form:"id"`
	Type      *string `json:"type" form:"type"`
	StartDate *string `json:"start_date" form:"start_date"`
	EndDate   *string `json:"end_date" form:"end_date"`
	StartHalf *bool   `json:"start_half" form:"start_half"`
	EndHalf   *bool   `json:"end_half" form:"end_half"`
	Reason    *string `json:"reason" form:"reason"`
}
