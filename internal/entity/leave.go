package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Leave struct {
	bun.BaseModel `bun:"table:leaves"`

	BasicEntity
	AccountID *int       `json:"account_id" bun:"account_id"`
	Type      *string    `json:"type" bun:"type"`
	Units     *float64   `json:"units" bun:"units"`
	StartDate *string    `json:"start_date" bun:"start_date"`
	EndDate   *string    `json:"end_date" bun:"end_date"`
	Reason    *string    `json:"reason" bun:"reason"`
	Status    *string    `json:"status" bun:"status"`
	DecidedBy *int       `json:"decided_by" bun:"decided_by"`
	DecidedAt *time.Time `json:"decided_at" bun:"decided_at"`
}
