package web

// Error carries an HTTP status alongside the underlying error so handlers
// and repositories can decide the response code at the failure site.
type Error struct {
	Err    error
	Status int
	Fields []FieldError
}

// FieldError reports a single invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps err with the status the client should receive.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}
