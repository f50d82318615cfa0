package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeValidation         ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeCacheError         ErrorCode = "COMMON_007"
	ErrCodeConfigInvalid      ErrorCode = "COMMON_008"
	ErrCodeNotImplemented     ErrorCode = "COMMON_009"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_010"
)

// Shorthand aliases used throughout the codebase.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// Style Module Error Codes
const (
	ErrCodeStyleVectorInvalid ErrorCode = "STYLE_001"
	ErrCodeStyleAxisMismatch  ErrorCode = "STYLE_002"
	ErrCodeStyleAxisUnknown   ErrorCode = "STYLE_003"
)

// Director Catalog Error Codes
const (
	ErrCodeDirectorNotFound  ErrorCode = "DIR_001"
	ErrCodeCatalogInvalid    ErrorCode = "DIR_002"
	ErrCodeCatalogEmpty      ErrorCode = "DIR_003"
	ErrCodeClusterInvalid    ErrorCode = "DIR_004"
	ErrCodeDuplicateDirector ErrorCode = "DIR_005"
)

// Matching / Blending Error Codes
const (
	ErrCodeMatchFailed      ErrorCode = "MATCH_001"
	ErrCodeBlendPairInvalid ErrorCode = "MATCH_002"
)

// Constellation Viewport Error Codes
const (
	ErrCodeSessionNotFound ErrorCode = "VIEW_001"
	ErrCodeGestureInvalid  ErrorCode = "VIEW_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeConfigInvalid:      http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,

	ErrCodeStyleVectorInvalid: http.StatusBadRequest,
	ErrCodeStyleAxisMismatch:  http.StatusBadRequest,
	ErrCodeStyleAxisUnknown:   http.StatusBadRequest,

	ErrCodeDirectorNotFound:  http.StatusNotFound,
	ErrCodeCatalogInvalid:    http.StatusInternalServerError,
	ErrCodeCatalogEmpty:      http.StatusInternalServerError,
	ErrCodeClusterInvalid:    http.StatusBadRequest,
	ErrCodeDuplicateDirector: http.StatusConflict,

	ErrCodeMatchFailed:      http.StatusInternalServerError,
	ErrCodeBlendPairInvalid: http.StatusBadRequest,

	ErrCodeSessionNotFound: http.StatusNotFound,
	ErrCodeGestureInvalid:  http.StatusBadRequest,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeConfigInvalid:      "invalid configuration",
	ErrCodeNotImplemented:     "not implemented",
	ErrCodeServiceUnavailable: "service unavailable",

	ErrCodeStyleVectorInvalid: "style vector is missing a recognized axis",
	ErrCodeStyleAxisMismatch:  "style vectors have incompatible axis sets",
	ErrCodeStyleAxisUnknown:   "unknown style axis",

	ErrCodeDirectorNotFound:  "director not found in catalog",
	ErrCodeCatalogInvalid:    "director catalog failed validation",
	ErrCodeCatalogEmpty:      "director catalog is empty",
	ErrCodeClusterInvalid:    "unknown director cluster",
	ErrCodeDuplicateDirector: "duplicate director id in catalog",

	ErrCodeMatchFailed:      "style matching failed",
	ErrCodeBlendPairInvalid: "blend requires two distinct directors",

	ErrCodeSessionNotFound: "constellation session not found",
	ErrCodeGestureInvalid:  "unrecognized gesture event",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
