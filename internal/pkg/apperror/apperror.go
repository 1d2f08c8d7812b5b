package apperror

// AppError is an error that carries the HTTP status code it should be
// rendered with, so handlers can map business failures without switching
// on every sentinel error.
type AppError struct {
	Code    int    // HTTP status code (400, 404, 409, ...)
	Message string // User-facing message
	Err     error  // Underlying cause, not exposed to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError wrapping an underlying error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
