package attendance

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/repository/postgres/attendance"
	"workforce/backend/internal/repository/redisdb"
	"workforce/backend/internal/service"
)

type Controller struct {
	attendance Attendance
	status     Status
}

func NewController(attendance Attendance, status Status) *Controller {
	return &Controller{attendance: attendance, status: status}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter attendance.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if departmentId, ok := c.GetQueryFunc(reflect.Int, "department_id").(*int); ok {
		filter.DepartmentID = departmentId
	}
	if accountId, ok := c.GetQueryFunc(reflect.Int, "account_id").(*int); ok {
		filter.AccountID = accountId
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	if filter.Date != nil {
		parsed, err := date.ParseDate(*filter.Date)
		if err != nil {
			return c.RespondError(web.NewRequestError(errors.New("invalid date format"), http.StatusBadRequest))
		}
		formatted := parsed.String()
		filter.Date = &formatted
	}

	list, count, err := uc.attendance.GetList(c.Ctx, filter)
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

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// TimeIn opens an attendance cycle with a camera snapshot. A second action
// inside the cooldown window is rejected no matter what the client shows.
func (uc Controller) TimeIn(c *web.Context) error {
	claims, ok := c.Ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("unauthorized"), http.StatusUnauthorized))
	}

	remaining, err := uc.status.CooldownRemaining(c.Ctx, claims.UserId)
	if err != nil {
		return c.RespondError(err)
	}
	if remaining > 0 {
		return c.RespondError(web.NewRequestError(
			errors.New(fmt.Sprintf("too soon, try again in %d seconds", int(remaining.Seconds()+0.5))),
			http.StatusTooManyRequests))
	}

	var request attendance.TimeInRequest

	if file, err := c.FormFile("image"); err == nil {
		path, err := service.Upload(file, "attendance")
		if err != nil {
			return c.RespondError(err)
		}
		request.ImagePath = path
	}

	response, err := uc.attendance.TimeIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	now := time.Now()
	if err := uc.status.MarkAction(c.Ctx, claims.UserId, now); err != nil {
		return c.RespondError(err)
	}
	if err := uc.status.SetToggle(c.Ctx, claims.UserId, redisdb.ToggleTimedIn); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) TimeOut(c *web.Context) error {
	claims, ok := c.Ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("unauthorized"), http.StatusUnauthorized))
	}

	remaining, err := uc.status.CooldownRemaining(c.Ctx, claims.UserId)
	if err != nil {
		return c.RespondError(err)
	}
	if remaining > 0 {
		return c.RespondError(web.NewRequestError(
			errors.New(fmt.Sprintf("too soon, try again in %d seconds", int(remaining.Seconds()+0.5))),
			http.StatusTooManyRequests))
	}

	var request attendance.TimeOutRequest

	if file, err := c.FormFile("image"); err == nil {
		path, err := service.Upload(file, "attendance")
		if err != nil {
			return c.RespondError(err)
		}
		request.ImagePath = path
	}

	response, err := uc.attendance.TimeOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	now := time.Now()
	if err := uc.status.MarkAction(c.Ctx, claims.UserId, now); err != nil {
		return c.RespondError(err)
	}
	if err := uc.status.SetToggle(c.Ctx, claims.UserId, redisdb.ToggleTimedOut); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// GetLatest reports the newest cycle plus the merged toggle state used by
// the clock-in screen.
func (uc Controller) GetLatest(c *web.Context) error {
	claims, ok := c.Ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("unauthorized"), http.StatusUnauthorized))
	}

	accountID := claims.UserId
	if id, ok := c.GetQueryFunc(reflect.Int, "account_id").(*int); ok && id != nil {
		accountID = *id
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetLatestByAccountId(c.Ctx, accountID)
	if err != nil {
		return c.RespondError(err)
	}

	cached, err := uc.status.Toggle(c.Ctx, accountID)
	if err != nil {
		return c.RespondError(err)
	}

	response.Toggle = MergeToggle(cached, rowToggle(response))
	if cached != "" && response.Toggle != cached {
		// The row is newer than the cache, repair it.
		if err := uc.status.SetToggle(c.Ctx, accountID, response.Toggle); err != nil {
			return c.RespondError(err)
		}
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateAll(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.UpdateRequest
	if err := c.BindFunc(&request, "WorkDay", "TimeIn", "TimeOut", "Status"); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.attendance.UpdateAll(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.attendance.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.attendance.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetStatistics(c *web.Context) error {

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.attendance.GetStatistics(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// rowToggle derives the toggle state stored rows imply. Empty when the
// account has no cycle yet.
func rowToggle(latest attendance.LatestResponse) string {
	if latest.ID == nil {
		return ""
	}
	if latest.TimeOut == nil {
		return redisdb.ToggleTimedIn
	}
	return redisdb.ToggleTimedOut
}

// MergeToggle resolves the cached state against the state the newest row
// implies. The row wins whenever it disagrees, a cached value only covers
// the gap when no row exists yet.
func MergeToggle(cached, fromRow string) string {
	if fromRow == "" {
		if cached == "" {
			return redisdb.ToggleTimedOut
		}
		return cached
	}
	return fromRow
}
