package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	app_errors "weekwise/backend/internal/errors"
)

// This file provides a centralized validation helper for API request bodies.
// A single validator instance is shared across requests; recreating it per
// request is needlessly expensive.

var (
	validate *validator.Validate
	once     sync.Once
)

func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateRequest checks a payload struct against the rules in its field tags
// (e.g. `validate:"required"`). Failures come back wrapped in the validation
// error class with a readable per-field message.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return app_errors.New(app_errors.TypeValidation, err)
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		errorMessages = append(errorMessages,
			fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}

	return app_errors.New(app_errors.TypeValidation, errors.New(strings.Join(errorMessages, "; ")))
}
