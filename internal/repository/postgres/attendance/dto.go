package attendance

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit        *int
	Offset       *int
	Page         *int
	Search       *string
	DepartmentID *int
	Status       *string
	Date         *string
	AccountID    *int
}

type GetListResponse struct {
	ID         int        `json:"id"`
	AccountID  *int       `json:"account_id"`
	EmployeeID *string    `json:"employee_id"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Department *string    `json:"department"`
	WorkDay    *string    `json:"work_day"`
	TimeIn     *time.Time `json:"time_in,omitempty"`
	TimeOut    *time.Time `json:"time_out,omitempty"`
	TotalHours *string    `json:"total_hours"`
	Shift      *string    `json:"shift"`
	Status     *string    `json:"status"`
}

type GetDetailByIdResponse struct {
	ID           int        `json:"id"`
	AccountID    *int       `json:"account_id"`
	EmployeeID   *string    `json:"employee_id"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Department   *string    `json:"department"`
	WorkDay      *string    `json:"work_day"`
	TimeIn       *time.Time `json:"time_in,omitempty"`
	TimeOut      *time.Time `json:"time_out,omitempty"`
	TotalHours   *string    `json:"total_hours"`
	Shift        *string    `json:"shift"`
	Status       *string    `json:"status"`
	TimeInImage  *string    `json:"time_in_image"`
	TimeOutImage *string    `json:"time_out_image"`
}

type TimeInRequest struct {
	ImagePath string
}

type TimeInResponse struct {
	bun.BaseModel `bun:"table:attendances"`

	ID          int       `json:"id" bun:"-"`
	AccountID   int       `json:"account_id" bun:"account_id"`
	WorkDay     string    `json:"work_day" bun:"work_day"`
	TimeIn      time.Time `json:"time_in" bun:"time_in"`
	Shift       string    `json:"shift" bun:"shift"`
	Status      string    `json:"status" bun:"status"`
	TimeInImage *string   `json:"time_in_image" bun:"time_in_image"`
	CreatedAt   time.Time `json:"-" bun:"created_at"`
	CreatedBy   int       `json:"-" bun:"created_by"`
}

type TimeOutRequest struct {
	ImagePath string
}

type TimeOutResponse struct {
	ID         int       `json:"id"`
	AccountID  int       `json:"account_id"`
	WorkDay    string    `json:"work_day"`
	TimeOut    time.Time `json:"time_out"`
	TotalHours string    `json:"total_hours"`
}

type LatestResponse struct {
	ID         *int       `json:"id"`
	AccountID  int        `json:"account_id"`
	WorkDay    *string    `json:"work_day"`
	TimeIn     *time.Time `json:"time_in,omitempty"`
	TimeOut    *time.Time `json:"time_out,omitempty"`
	TotalHours *string    `json:"total_hours"`
	Shift      *string    `json:"shift"`
	Status     *string    `json:"status"`
	// Toggle is the merged time-in/time-out state: the cached value wins
	// only until a newer attendance row exists.
	Toggle string `json:"toggle"`
}

type UpdateRequest struct {
	ID      int     `json:"id" form:"id"`
	WorkDay *string `json:"work_day" form:"work_day"`
	TimeIn  *string `json:"time_in" form:"time_in"`
	TimeOut *string `json:"time_out" form:"time_out"`
	Status  *string `json:"status" form:"status"`
}

type StatisticsResponse struct {
	TotalEmployee *int `json:"total_employee" bun:"total_employee"`
	Present       *int `json:"present" bun:"present"`
	Absent        *int `json:"absent" bun:"absent"`
	LateArrival   *int `json:"late_arrival" bun:"late_arrival"`
	OnLeave       *int `json:"on_leave" bun:"on_leave"`
}
