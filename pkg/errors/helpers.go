package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NotFound reports that resource identified by key=value does not exist.
func NotFound(resource, key string, value any) *HTTPError {
	return structured(http.StatusNotFound, KindNotFound, MessageResourceNotFound, resource, key, value)
}

// Conflict reports that resource identified by key=value already exists.
func Conflict(resource, key string, value any) *HTTPError {
	return structured(http.StatusConflict, KindConflict, MessageResourceAlreadyExists, resource, key, value)
}

// Internal reports an unrecoverable server-side failure. An empty detail
// falls back to MessageInternalServerError.
func Internal(detail string) *HTTPError {
	if detail == "" {
		detail = MessageInternalServerError
	}
	return &HTTPError{Kind: KindInternal, Status: http.StatusInternalServerError, Detail: detail}
}

func structured(status int, kind Kind, template, resource, key string, value any) *HTTPError {
	return &HTTPError{
		Kind:     kind,
		Status:   status,
		Detail:   formatMessage(template, resource, key, value),
		Resource: resource,
		Key:      key,
		Value:    value,
	}
}

func formatMessage(template, resource, key string, value any) string {
	return strings.NewReplacer(
		"{resource}", resource,
		"{key}", key,
		"{value}", fmt.Sprint(value),
	).Replace(template)
}
