package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is, re-exported so callers need one errors import
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of err. Plain errors are Internal; nil is OK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in err
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message of the outermost *Error, or err.Error()
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool        { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }
func IsAlreadyExists(err error) bool   { return GetCode(err) == CodeAlreadyExists }
func IsInternal(err error) bool        { return GetCode(err) == CodeInternal }
func IsUnavailable(err error) bool     { return GetCode(err) == CodeUnavailable }
func IsAborted(err error) bool         { return GetCode(err) == CodeAborted }
func IsCanceled(err error) bool        { return GetCode(err) == CodeCanceled }
