package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrUnknownNeed is returned when a need key has no weighting profile
	ErrUnknownNeed = errors.New("unknown need")

	// ErrProfileNotFound is returned when a profile tag is not configured
	ErrProfileNotFound = errors.New("profile not found")

	// ErrDatasetNotFound is returned when a dataset is not found
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrDatasetAlreadyExists is returned when building a dataset under a taken name
	ErrDatasetAlreadyExists = errors.New("dataset already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetchFailed is returned when the registry API call fails
	ErrFetchFailed = errors.New("fetch failed")
)

// UnknownNeedError reports a need key with no configured weighting profile.
// It carries the known keys so callers can surface them.
type UnknownNeedError struct {
	Need  string
	Known []string
}

func (e *UnknownNeedError) Error() string {
	return fmt.Sprintf("need must be one of [%s], got '%s'", strings.Join(e.Known, ", "), e.Need)
}

func (e *UnknownNeedError) Is(target error) bool {
	return target == ErrUnknownNeed
}

// NewUnknownNeedError creates a new UnknownNeedError
func NewUnknownNeedError(need string, known []string) *UnknownNeedError {
	return &UnknownNeedError{Need: need, Known: known}
}

// ProfileNotFoundError reports a profile tag with no configuration.
type ProfileNotFoundError struct {
	Tag string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile '%s' not found", e.Tag)
}

func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}

// NewProfileNotFoundError creates a new ProfileNotFoundError
func NewProfileNotFoundError(tag string) *ProfileNotFoundError {
	return &ProfileNotFoundError{Tag: tag}
}

// DatasetNotFoundError represents a dataset not found error with context
type DatasetNotFoundError struct {
	Name string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("dataset named '%s' not found", e.Name)
}

func (e *DatasetNotFoundError) Is(target error) bool {
	return target == ErrDatasetNotFound
}

// NewDatasetNotFoundError creates a new DatasetNotFoundError
func NewDatasetNotFoundError(name string) *DatasetNotFoundError {
	return &DatasetNotFoundError{Name: name}
}

// DatasetAlreadyExistsError represents a dataset name collision
type DatasetAlreadyExistsError struct {
	Name string
}

func (e *DatasetAlreadyExistsError) Error() string {
	return fmt.Sprintf("dataset named '%s' already exists", e.Name)
}

func (e *DatasetAlreadyExistsError) Is(target error) bool {
	return target == ErrDatasetAlreadyExists
}

// NewDatasetAlreadyExistsError creates a new DatasetAlreadyExistsError
func NewDatasetAlreadyExistsError(name string) *DatasetAlreadyExistsError {
	return &DatasetAlreadyExistsError{Name: name}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// FetchError represents a hard failure talking to the registry API.
// Preview holds at most the first 300 bytes of the offending response body.
type FetchError struct {
	URL     string
	Status  int
	Reason  string
	Preview string
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("registry fetch failed: %s (url=%s", e.Reason, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(", status=%d", e.Status)
	}
	if e.Preview != "" {
		msg += fmt.Sprintf(", head=%q", e.Preview)
	}
	return msg + ")"
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// NewFetchError creates a new FetchError, truncating the body preview to 300 bytes.
func NewFetchError(url string, status int, reason, body string) *FetchError {
	preview := body
	if len(preview) > 300 {
		preview = preview[:300]
	}
	return &FetchError{URL: url, Status: status, Reason: reason, Preview: preview}
}
