package responses

import (
	"github.com/Aidin1998/contacts_manager/pkg/errors"
)

// ResourceNotFoundErrorResponse documents the 404 body.
type ResourceNotFoundErrorResponse struct {
	Detail   string `json:"detail" example:"<resource> with <key> '<value>' not found"`
	Resource string `json:"resource" example:"<resource>"`
	Key      string `json:"key" example:"<key>"`
	Value    any    `json:"value" swaggertype:"string" example:"<value>"`
}

// ResourceAlreadyExistsErrorResponse documents the 409 body.
type ResourceAlreadyExistsErrorResponse struct {
	Detail   string `json:"detail" example:"<resource> with <key> '<value>' already exists"`
	Resource string `json:"resource" example:"<resource>"`
	Key      string `json:"key" example:"<key>"`
	Value    any    `json:"value" swaggertype:"string" example:"<value>"`
}

// ValidationErrorResponse is the 422 body.
type ValidationErrorResponse struct {
	Detail []errors.FieldError `json:"detail"`
}

// InternalServerErrorResponse is the 500 body outside debug mode.
type InternalServerErrorResponse struct {
	Detail string `json:"detail" example:"Internal Server Error"`
}

// DebugInternalServerErrorResponse is the 500 body for unhandled faults when
// debug mode is on.
type DebugInternalServerErrorResponse struct {
	Detail    string `json:"detail"`
	Error     string `json:"error"`
	Traceback string `json:"traceback"`
}
