package errors

import "fmt"

var (
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrValidation         = fmt.Errorf("validation failed")
	ErrStorage            = fmt.Errorf("storage failure")
	ErrUnknownMember      = fmt.Errorf("unknown member")
)
