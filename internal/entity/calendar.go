package entity

import (
	"github.com/uptrace/bun"
)

type Calendar struct {
	bun.BaseModel `bun:"table:calendars"`

	BasicEntity
	Title     *string `json:"title" bun:"title"`
	StartDate *string `json:"start_date" bun:"start_date"`
	EndDate   *string `json:"end_date" bun:"end_date"`
	Color     *string `json:"color" bun:"color"`
}
