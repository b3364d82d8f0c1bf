package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestUnknownNeedError(t *testing.T) {
	err := NewUnknownNeedError("vigor", []string{"fatigue", "sleep"})

	if !errors.Is(err, ErrUnknownNeed) {
		t.Error("UnknownNeedError should match ErrUnknownNeed")
	}
	if !strings.Contains(err.Error(), "vigor") {
		t.Errorf("error message should contain the offending need, got: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "fatigue") {
		t.Errorf("error message should list known needs, got: %s", err.Error())
	}
}

func TestDatasetErrors(t *testing.T) {
	notFound := NewDatasetNotFoundError("c003")
	if !errors.Is(notFound, ErrDatasetNotFound) {
		t.Error("DatasetNotFoundError should match ErrDatasetNotFound")
	}
	if errors.Is(notFound, ErrDatasetAlreadyExists) {
		t.Error("DatasetNotFoundError should not match ErrDatasetAlreadyExists")
	}

	exists := NewDatasetAlreadyExistsError("c003")
	if !errors.Is(exists, ErrDatasetAlreadyExists) {
		t.Error("DatasetAlreadyExistsError should match ErrDatasetAlreadyExists")
	}
}

func TestProfileNotFoundError(t *testing.T) {
	err := NewProfileNotFoundError("herbal")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Error("ProfileNotFoundError should match ErrProfileNotFound")
	}
	if !strings.Contains(err.Error(), "herbal") {
		t.Errorf("error message should contain the tag, got: %s", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("need", "must not be empty")
	if !errors.Is(withField, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !strings.Contains(withField.Error(), "need") {
		t.Errorf("error message should contain the field, got: %s", withField.Error())
	}

	noField := NewValidationError("", "bad request")
	if strings.Contains(noField.Error(), "field") {
		t.Errorf("field-less validation error should omit field clause, got: %s", noField.Error())
	}
}

func TestFetchError_TruncatesPreview(t *testing.T) {
	body := strings.Repeat("x", 1000)
	err := NewFetchError("http://example.com/api", 500, "HTTP error", body)

	if !errors.Is(err, ErrFetchFailed) {
		t.Error("FetchError should match ErrFetchFailed")
	}
	if len(err.Preview) != 300 {
		t.Errorf("preview should be truncated to 300 bytes, got %d", len(err.Preview))
	}
	if !strings.Contains(err.Error(), "http://example.com/api") {
		t.Errorf("error message should contain the URL, got: %s", err.Error())
	}
}
