package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Transport-level error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps domain and transport error codes to HTTP
// status codes. Domain codes pass through unchanged so API consumers
// can branch on them.
var ErrorCodeHTTPStatus = map[string]int{
	// Transport errors
	ErrCodeUnknown:      http.StatusInternalServerError,
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	// Missing resources -> 404 Not Found
	"NOT_FOUND":              http.StatusNotFound,
	"CUSTOMER_NOT_FOUND":     http.StatusNotFound,
	"INVOICE_NOT_FOUND":      http.StatusNotFound,
	"LINE_ITEM_NOT_FOUND":    http.StatusNotFound,
	"TEMPLATE_NOT_FOUND":     http.StatusNotFound,
	"BANK_ACCOUNT_NOT_FOUND": http.StatusNotFound,
	"COMPANY_NOT_FOUND":      http.StatusNotFound,

	// Uniqueness conflicts -> 409 Conflict
	"ALREADY_EXISTS":        http.StatusConflict,
	"CUSTOMER_NAME_EXISTS":  http.StatusConflict,
	"INVOICE_NUMBER_EXISTS": http.StatusConflict,
	"TEMPLATE_NAME_EXISTS":  http.StatusConflict,
	"BANK_ACCOUNT_EXISTS":   http.StatusConflict,

	// Authorization -> 403 Forbidden
	"PERMISSION_DENIED": http.StatusForbidden,
	"FORBIDDEN":         http.StatusForbidden,
	"UNAUTHORIZED":      http.StatusUnauthorized,

	// Business rule violations -> 422 Unprocessable Entity
	"CANNOT_EDIT_INVOICE":       http.StatusUnprocessableEntity,
	"INVALID_STATUS_TRANSITION": http.StatusUnprocessableEntity,
	"CURRENCY_MISMATCH":         http.StatusUnprocessableEntity,
	"NO_LINE_ITEMS":             http.StatusUnprocessableEntity,
	"INVALID_LINE_ITEM_ORDER":   http.StatusUnprocessableEntity,

	// Generic internal failures
	"INTERNAL_ERROR": http.StatusInternalServerError,
	"DATABASE_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code. Value
// validation codes follow the INVALID_* naming convention and map to
// 400 Bad Request; anything unrecognized is treated as internal.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	if strings.HasSuffix(code, "_NOT_FOUND") {
		return http.StatusNotFound
	}
	if strings.HasSuffix(code, "_EXISTS") {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
