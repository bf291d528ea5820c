package calendar

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Month  *string
	Search *string
}

type GetListResponse struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Color     *string `json:"color"`
}

type CreateRequest struct {
	Title     *string `json:"title" form:"title"`
	StartDate *string `json:"start_date" form:"start_date"`
	EndDate   *string `json:"end_date" form:"end_date"`
	Color     *string `json:"color" form:"color"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:calendars"`

	ID        int       `json:"id" bun:"id,pk,autoincrement"`
	Title     string    `json:"title" bun:"title"`
	StartDate string    `json:"start_date" bun:"start_date"`
	EndDate   string    `json:"end_date" bun:"end_date"`
	Color     *string   `json:"color" bun:"color"`
	CreatedAt time.Time `json:"-" bun:"created_at"`
	CreatedBy int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID        int     `json:"id" form:"id"`
	Title     *string `json:"title" form:"title"`
	StartDate *string `json:"start_date" form:"start_date"`
	EndDate   *string `json:"end_date" form:"end_date"`
	Color     *string `json:"color" form:"color"`
}
