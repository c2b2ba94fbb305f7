package dto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MessageDeserializationFailed is reported when the body is not valid JSON for the endpoint.
const MessageDeserializationFailed = "DESERIALIZATION_FAILED"

var fieldMessages = map[string]string{
	"Name":    "Name must not be empty",
	"Senario": "Senario must not be empty",
	"Answers": "Answers must not be empty",
}

// InvalidResponse lists every failed check of a request body, in field declaration order.
type InvalidResponse struct {
	RequestBody []FieldError `json:"REQUEST_BODY"`
}

type FieldError struct {
	Message string         `json:"message" example:"Name must not be empty"`
	Args    map[string]any `json:"args"`
	Value   any            `json:"value"`
}

// RegisterValidations adds the custom tags used by the request DTOs to v.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("register notblank validation: %w", err)
	}
	return nil
}

// NewInvalidResponse converts validator errors into the REQUEST_BODY envelope. value is echoed in every entry.
func NewInvalidResponse(errs validator.ValidationErrors, value any) InvalidResponse {
	resp := InvalidResponse{RequestBody: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		msg, ok := fieldMessages[fe.StructField()]
		if !ok {
			msg = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
		}
		resp.RequestBody = append(resp.RequestBody, FieldError{
			Message: msg,
			Args:    map[string]any{},
			Value:   value,
		})
	}
	return resp
}

// NewDeserializationFailure wraps a decode error into the REQUEST_BODY envelope.
// Type mismatches are reported by JSON field, without Go type names.
func NewDeserializationFailure(err error) InvalidResponse {
	return InvalidResponse{RequestBody: []FieldError{{
		Message: MessageDeserializationFailed,
		Args:    map[string]any{},
		Value:   describeDecodeError(err),
	}}}
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "value"
		}
		return fmt.Sprintf("%s: unexpected JSON %s", field, typeErr.Value)
	}
	return err.Error()
}
