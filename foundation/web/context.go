package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps gin.Context with a request-scoped context.Context and
// accumulated query/param parse errors that handlers check once.
type Context struct {
	*gin.Context
	Ctx context.Context

	queryErrors []error
	paramErrors []error
}

func NewContext(c *gin.Context) *Context {
	return &Context{Context: c, Ctx: c.Request.Context()}
}

// BindFunc binds the request body (json or form) into data and verifies the
// required fields by their Go names. Pointer fields must be non-nil, value
// fields must be non-zero.
func (c *Context) BindFunc(data interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(data); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var fields []FieldError
	for _, name := range requiredFields {
		for _, part := range strings.Split(name, ",") {
			part = strings.TrimSpace(part)
			f := v.FieldByName(part)
			if !f.IsValid() {
				continue
			}
			if (f.Kind() == reflect.Ptr && f.IsNil()) || (f.Kind() != reflect.Ptr && f.IsZero()) {
				fields = append(fields, FieldError{Field: part, Error: "field is required"})
			}
		}
	}
	if len(fields) > 0 {
		return &Error{
			Err:    errors.New("required fields are missing"),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}

// GetQueryFunc parses a query parameter into the requested kind. A missing
// parameter yields nil, a malformed one is collected for ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}

	switch kind {
	case reflect.Int:
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.queryErrors = append(c.queryErrors, fmt.Errorf("query %q must be an integer", name))
			return nil
		}
		return &value
	case reflect.Bool:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.queryErrors = append(c.queryErrors, fmt.Errorf("query %q must be a boolean", name))
			return nil
		}
		return &value
	case reflect.String:
		return &raw
	default:
		c.queryErrors = append(c.queryErrors, fmt.Errorf("query %q has unsupported kind %s", name, kind))
		return nil
	}
}

// ValidQuery reports the first malformed query parameter seen by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrors) > 0 {
		return NewRequestError(c.queryErrors[0], http.StatusBadRequest)
	}
	return nil
}

// GetParam parses a path parameter into the requested kind. Malformed values
// are collected for ValidParam and a zero value is returned.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	raw := c.Param(name)

	switch kind {
	case reflect.Int:
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.paramErrors = append(c.paramErrors, fmt.Errorf("param %q must be an integer", name))
			return 0
		}
		return value
	case reflect.String:
		return raw
	default:
		c.paramErrors = append(c.paramErrors, fmt.Errorf("param %q has unsupported kind %s", name, kind))
		return nil
	}
}

// ValidParam reports the first malformed path parameter seen by GetParam.
func (c *Context) ValidParam() error {
	if len(c.paramErrors) > 0 {
		return NewRequestError(c.paramErrors[0], http.StatusBadRequest)
	}
	return nil
}

// Respond writes data as json with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes an error response. A *web.Error chooses its own status,
// anything else becomes a 500.
func (c *Context) RespondError(err error) error {
	status := http.StatusInternalServerError

	var webErr *Error
	if errors.As(err, &webErr) {
		status = webErr.Status
	}

	body := map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	}
	if webErr != nil && len(webErr.Fields) > 0 {
		body["fields"] = webErr.Fields
	}

	c.JSON(status, body)
	return nil
}
