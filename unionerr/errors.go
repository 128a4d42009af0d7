package unionerr

import "fmt"

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeInvalidArgument ErrorType = "InvalidArgumentError"
	TypeIllegalState    ErrorType = "IllegalStateError"
)

// UnionError is the interface for all union-related errors.
type UnionError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for union errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// NilValueError reports an absent payload passed to a constructor.
type NilValueError struct {
	BaseError
	Side string
}

// WrongSideError reports access to the side a union does not hold.
type WrongSideError struct {
	BaseError
	Got  string
	Want string
}

// NewNilValueError creates a NilValueError for the given side.
func NewNilValueError(side string) *NilValueError {
	return &NilValueError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("nil %s value", side),
			ErrType: TypeInvalidArgument,
		},
		Side: side,
	}
}

// NewWrongSideError creates a WrongSideError. got is the side the union
// holds, want the side that was accessed.
func NewWrongSideError(got, want string) *WrongSideError {
	return &WrongSideError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("not a %s value", want),
			ErrType: TypeIllegalState,
		},
		Got:  got,
		Want: want,
	}
}
