package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// FormErrors maps form field names to validation messages so the client can
// re-render the submission form with the errors attached.
type FormErrors struct {
	Ok     bool              `json:"ok"`
	Errors map[string]string `json:"errors"`
}

func NewFormErrors(err error) FormErrors {
	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[strings.ToLower(fieldError.Field())] = fieldError.Tag()
		}
	} else {
		fieldErrors["_form"] = err.Error()
	}

	return FormErrors{Ok: false, Errors: fieldErrors}
}

func NewFieldError(field string, message string) FormErrors {
	return FormErrors{Ok: false, Errors: map[string]string{field: message}}
}
