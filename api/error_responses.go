package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeDatasetNotFound  ErrorCode = "DATASET_NOT_FOUND"
	ErrorCodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	ErrorCodeUnknownNeed      ErrorCode = "UNKNOWN_NEED"
	ErrorCodeDatasetExists    ErrorCode = "DATASET_ALREADY_EXISTS"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrorCodeFetchFailed   ErrorCode = "FETCH_FAILED"
	ErrorCodeExportFailed  ErrorCode = "EXPORT_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	c.JSON(statusCode, APIErrorResponse(code, message, details...))
}

// SendDatasetNotFoundError sends a standardized dataset not found error
func SendDatasetNotFoundError(c *gin.Context, name string) {
	SendError(c, http.StatusNotFound, ErrorCodeDatasetNotFound,
		"Dataset '"+name+"' not found")
}

// SendProfileNotFoundError sends a standardized profile not found error
func SendProfileNotFoundError(c *gin.Context, tag string) {
	SendError(c, http.StatusNotFound, ErrorCodeProfileNotFound,
		"Profile '"+tag+"' not found")
}

// SendDatasetExistsError sends a standardized dataset already exists error
func SendDatasetExistsError(c *gin.Context, name string) {
	SendError(c, http.StatusConflict, ErrorCodeDatasetExists,
		"Dataset '"+name+"' already exists")
}

// SendUnknownNeedError sends a standardized unknown need error
func SendUnknownNeedError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeUnknownNeed, err.Error())
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendFetchError sends a standardized upstream fetch error
func SendFetchError(c *gin.Context, err error) {
	SendError(c, http.StatusBadGateway, ErrorCodeFetchFailed, err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}
