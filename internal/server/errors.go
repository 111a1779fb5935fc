package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/smallbiznis/smartdairy/internal/billing/domain"
	customerdomain "github.com/smallbiznis/smartdairy/internal/customer/domain"
	deliverydomain "github.com/smallbiznis/smartdairy/internal/delivery/domain"
	forecastdomain "github.com/smallbiznis/smartdairy/internal/forecast/domain"
	invoicedomain "github.com/smallbiznis/smartdairy/internal/invoice/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if code, ok := validationErrorCode(err); ok {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: conflictMessage(err),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

// classifyErrorForLog feeds error_type and error_code into the request log.
func classifyErrorForLog(err error) (string, string) {
	_, payload := mapError(err)
	if len(payload.Errors) > 0 {
		return payload.Type, payload.Errors[0].Code
	}
	if payload.Type == "internal_error" {
		return payload.Type, payload.Type
	}
	return payload.Type, err.Error()
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

var validationErrors = []error{
	ErrInvalidRequest,
	customerdomain.ErrInvalidName,
	customerdomain.ErrInvalidPrice,
	customerdomain.ErrInvalidID,
	deliverydomain.ErrInvalidQuantity,
	deliverydomain.ErrInvalidDate,
	deliverydomain.ErrInvalidRange,
	deliverydomain.ErrInvalidPeriod,
	billingdomain.ErrInvalidPeriod,
	forecastdomain.ErrInvalidWindow,
	invoicedomain.ErrUnsupportedFormat,
}

func validationErrorCode(err error) (string, bool) {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target.Error(), true
		}
	}
	return "", false
}

func isConflictError(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, customerdomain.ErrDuplicateName) ||
		errors.Is(err, customerdomain.ErrCustomerHasEntries)
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, customerdomain.ErrDuplicateName):
		return "a customer with this name already exists"
	case errors.Is(err, customerdomain.ErrCustomerHasEntries):
		return "customer still has milk entries"
	default:
		return "conflict"
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, deliverydomain.ErrCustomerNotFound),
		errors.Is(err, forecastdomain.ErrCustomerNotFound),
		errors.Is(err, billingdomain.ErrNoBill),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	switch code {
	case "invalid_request":
		return "request"
	case "invalid_range":
		return "end_date"
	case "unsupported_format":
		return "format"
	}
	return strings.TrimPrefix(code, "invalid_")
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	case "invalid_range":
		return "end_date must not be before start_date"
	case "unsupported_format":
		return "format must be one of pdf, xlsx, csv, html"
	default:
		return "invalid value"
	}
}
