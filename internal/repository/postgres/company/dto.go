package company

type GetInfoResponse struct {
	CompanyName  *string `json:"company_name"`
	Logo         *string `json:"logo"`
	WorkdayStart *string `json:"workday_start"`
	WorkdayEnd   *string `json:"workday_end"`
	LateAfter    *string `json:"late_after"`
}

type UpdateRequest struct {
	CompanyName  *string `json:"company_name" form:"company_name"`
	Logo         *string `json:"logo" form:"logo"`
	WorkdayStart *string `json:"workday_start" form:"workday_start"`
	WorkdayEnd   *string `json:"workday_end" form:"workday_end"`
	LateAfter    *string `json:"late_after" form:"late_after"`
}
