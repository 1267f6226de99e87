package core

import "errors"

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrDimensionMismatch = errors.New("positions do not match board dimensions")
	ErrInvalidCell       = errors.New("invalid cell value")
	ErrInvalidLayout     = errors.New("invalid board layout")
	ErrIllegalMove       = errors.New("illegal move")
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionLimit      = errors.New("session limit reached")
)

// Error codes
const (
	CodeInvalidDimensions = "INVALID_DIMENSIONS"
	CodeDimensionMismatch = "DIMENSION_MISMATCH"
	CodeInvalidCell       = "INVALID_CELL"
	CodeInvalidLayout     = "INVALID_LAYOUT"
	CodeIllegalMove       = "ILLEGAL_MOVE"
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
	CodeResourceLimit     = "RESOURCE_LIMIT"
	CodeInternalError     = "INTERNAL_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrInvalidDimensions, CodeInvalidDimensions},
	{ErrDimensionMismatch, CodeDimensionMismatch},
	{ErrInvalidCell, CodeInvalidCell},
	{ErrInvalidLayout, CodeInvalidLayout},
	{ErrIllegalMove, CodeIllegalMove},
	{ErrSessionNotFound, CodeSessionNotFound},
	{ErrSessionLimit, CodeResourceLimit},
}

// ErrorCode maps an error returned by this module to a stable code.
// Unknown errors map to CodeInternalError, nil maps to "".
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternalError
}
