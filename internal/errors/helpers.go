package errors

import (
	"context"
	"errors"
)

// Is is errors.Is, re-exported so callers need a single errors import
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// FromContext converts a context error into a coded error
func FromContext(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return WrapWithCode(err, CodeCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, "request deadline exceeded")
	default:
		return err
	}
}

// GetCode returns the code of err; uncoded errors are Internal
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of a coded error
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound reports a NotFound error
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument reports an InvalidArgument error
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsInternal reports an Internal error, including uncoded ones
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }

// IsDataLoss reports a DataLoss error
func IsDataLoss(err error) bool { return HasCode(err, CodeDataLoss) }

// IsCanceled reports a Canceled error
func IsCanceled(err error) bool { return HasCode(err, CodeCanceled) }
