package entity

import (
	"github.com/uptrace/bun"
)

type CompanyInfo struct {
	bun.BaseModel `bun:"table:company_info"`

	BasicEntity
	CompanyName  *string `json:"company_name" bun:"company_name"`
	Logo         *string `json:"logo" bun:"logo"`
	WorkdayStart *string `json:"workday_start" bun:"workday_start"`
	WorkdayEnd   *string `json:"workday_end" bun:"workday_end"`
	LateAfter    *string `json:"late_after" bun:"late_after"`
}
