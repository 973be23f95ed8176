package errors

import "github.com/muhammadheryan/watch-storefront/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
	fields  map[string]string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Fields returns the field level messages of a validation error, if any.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

// Is matches any CustomError of the same type, so callers can use errors.Is
// with SetCustomError(t) as the target.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	return ok && t.errType == c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage keeps the type of errorType but reports msg to the user.
func SetCustomErrorMessage(errorType constant.ErrorType, msg string) CustomError {
	return CustomError{
		errType: errorType,
		message: msg,
	}
}

// SetValidationError builds an invalid request error carrying field messages.
func SetValidationError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}

// IsType reports whether err is a CustomError of errorType.
func IsType(err error, errorType constant.ErrorType) bool {
	ce, ok := As(err)
	return ok && ce.errType == errorType
}

// As unwraps err into a CustomError.
func As(err error) (CustomError, bool) {
	for err != nil {
		if ce, ok := err.(CustomError); ok {
			return ce, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return CustomError{}, false
		}
		err = u.Unwrap()
	}
	return CustomError{}, false
}
