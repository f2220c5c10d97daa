package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// domainError maps an AppError code onto a response status.
func domainError(err error) *HTTPError {
	code := apperrors.Code(err)
	switch code {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, code, errMessage(err), err)
	case apperrors.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, code, errMessage(err), err)
	case apperrors.CodeAmbiguousMatch:
		return NewHTTPError(http.StatusConflict, code, errMessage(err), err)
	case apperrors.CodeDivideByZero:
		return NewHTTPError(http.StatusUnprocessableEntity, code, errMessage(err), err)
	case "":
		return asHTTPError(err)
	default:
		return NewHTTPError(http.StatusInternalServerError, code, "something went wrong", err)
	}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
