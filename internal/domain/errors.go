package domain

import "errors"

var (
	ErrKeyNotFound = errors.New("api key not found")
	ErrNameTaken   = errors.New("api key name already taken")
	ErrJobActive   = errors.New("a job is already running for this chat")
)

// ValidationError reports malformed user input. It maps to a corrective
// message and never changes stored state.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a user-input validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
