package middleware

import (
	"errors"
	"log"

	"jobskills/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is the error type handlers return; the error middleware turns it
// into the JSON envelope. Detail is an optional machine-facing string placed
// in the "error" field; it is suppressed for 5xx responses in production.
type AppError struct {
	StatusCode int
	Message    string
	Detail     string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

func NewAppErrorWithDetail(statusCode int, message, detail string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Detail: detail, Cause: cause}
}

type ErrorMiddleware struct {
	logger     *log.Logger
	production bool
}

func NewErrorMiddleware(logger *log.Logger, production bool) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger, production: production}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | path=%s err=%v", c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, "")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, detail := m.normalizeError(err)
		if status >= 500 {
			m.logger.Printf("request failed | path=%s status=%d err=%v", c.Path(), status, err)
		}
		return response.Error(c, status, msg, detail)
	}
}

func (m *ErrorMiddleware) normalizeError(err error) (int, string, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}

		msg := appErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}

		detail := appErr.Detail
		if detail == "" && appErr.Cause != nil {
			detail = appErr.Cause.Error()
		}
		if status >= 500 && m.production {
			detail = ""
		}
		return status, msg, detail
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return status, response.MessageInternalServerError, ""
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		return status, msg, ""
	}

	detail := ""
	if !m.production {
		detail = err.Error()
	}
	return fiber.StatusInternalServerError, response.MessageInternalServerError, detail
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return response.MessageBadRequest
	case fiber.StatusUnauthorized:
		return response.MessageUnauthorized
	case fiber.StatusNotFound:
		return response.MessageNotFound
	default:
		return response.MessageInternalServerError
	}
}
