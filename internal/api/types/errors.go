package types

import (
	"errors"

	appErr "github.com/venture-studio/engine/pkg/errors"
)

// Messages shown in place of raw storage errors when details are suppressed.
const (
	genericInternal = "internal server error"
	genericTimeout  = "storage timeout"
)

// ErrorMessage renders an error for the response envelope. In production
// mode internal failures are reduced to a generic message so raw storage
// errors never reach a client; other codes carry their message verbatim
// (those are written for users in the first place).
func ErrorMessage(err error, production bool) string {
	if err == nil {
		return ""
	}
	switch appErr.CodeOf(err) {
	case appErr.CodeDeadline:
		return genericTimeout
	case appErr.CodeInternal, appErr.CodeUnknown:
		if production {
			return genericInternal
		}
		return err.Error()
	default:
		var ae *appErr.AppError
		if errors.As(err, &ae) {
			return ae.Message
		}
		return err.Error()
	}
}
