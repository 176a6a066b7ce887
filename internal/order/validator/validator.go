package validator

import (
	"strings"

	"ordersvc/internal/domain"
	apperrors "ordersvc/internal/errors"
)

// ValidateCreate checks a creation payload. All violations across all
// fields are collected into a single ValidationError.
func ValidateCreate(customer string, items []string) error {
	fields := apperrors.FieldErrors{}

	if strings.TrimSpace(customer) == "" {
		fields.Add("customer", "must not be empty")
	}

	if len(items) == 0 {
		fields.Add("items", "at least one item required")
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			fields.Add("items", "items must not contain empty values")
		}
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError("validation failed", fields)
	}

	return nil
}

// ValidateStatus parses a raw status value into the closed status set.
func ValidateStatus(status string) (domain.Status, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		fields := apperrors.FieldErrors{}
		fields.Add("status", "invalid status")
		return "", apperrors.NewValidationError("validation failed", fields)
	}
	return parsed, nil
}
