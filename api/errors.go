package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/Aidin1998/contacts_manager/api/responses"
	"github.com/Aidin1998/contacts_manager/pkg/errors"
	"github.com/Aidin1998/contacts_manager/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerFunc is a gin handler that reports failure by returning it. The
// failure chain is the only place that turns errors into responses.
type HandlerFunc func(c *gin.Context) error

func handle(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// panicError carries a recovered panic value through the fault path.
type panicError struct {
	value any
}

func (p panicError) Error() string {
	if err, ok := p.value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(p.value)
}

// failureHandler renders every error attached to the context, and every panic
// raised below it, as exactly one JSON response. Checked most specific first:
// validation, explicit HTTP failure, anything else.
func (s *Server) failureHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if r == http.ErrAbortHandler {
					panic(r)
				}
				s.renderFault(c, panicError{value: r}, string(debug.Stack()))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		s.renderError(c, c.Errors.Last().Err)
	}
}

func (s *Server) renderError(c *gin.Context, err error) {
	var validationErr *errors.ValidationError
	var httpErr *errors.HTTPError

	switch {
	case errors.As(err, &validationErr):
		s.logger.Warn("Validation error",
			zap.String("method", c.Request.Method),
			zap.String("url", requestURL(c)),
			zap.Any("errors", validationErr.Errors))
		s.countFailure("validation", http.StatusUnprocessableEntity)
		c.JSON(http.StatusUnprocessableEntity, responses.ValidationErrorResponse{Detail: validationErr.Errors})

	case errors.As(err, &httpErr):
		s.logger.Info(fmt.Sprintf("HTTP %d: %s %s", httpErr.Status, c.Request.Method, requestPath(c)),
			zap.Int("status", httpErr.Status),
			zap.String("kind", string(httpErr.Kind)))
		s.countFailure("http", httpErr.Status)
		c.JSON(httpErr.Status, httpErr.Payload())

	default:
		s.renderFault(c, err, traceback(err))
	}
}

// renderFault handles anything that was not raised deliberately. Internal
// detail only reaches the client in debug mode.
func (s *Server) renderFault(c *gin.Context, err error, trace string) {
	s.logger.Error("Unhandled exception",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", requestPath(c)),
		zap.String("traceback", trace))
	s.countFailure("unhandled", http.StatusInternalServerError)

	if c.Writer.Written() {
		return
	}
	c.Abort()

	if s.debug {
		c.JSON(http.StatusInternalServerError, responses.DebugInternalServerErrorResponse{
			Detail:    errors.MessageUnhandledException,
			Error:     err.Error(),
			Traceback: trace,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, responses.InternalServerErrorResponse{
		Detail: errors.MessageInternalServerError,
	})
}

func (s *Server) countFailure(class string, status int) {
	metrics.HTTPFailuresTotal.WithLabelValues(class, strconv.Itoa(status)).Inc()
}

// traceback lists the error chain, outermost first.
func traceback(err error) string {
	var b strings.Builder
	for depth := 0; err != nil; depth++ {
		fmt.Fprintf(&b, "%s%T: %v\n", strings.Repeat("  ", depth), err, err)
		err = errors.Unwrap(err)
	}
	return b.String()
}

func requestPath(c *gin.Context) string {
	if q := c.Request.URL.RawQuery; q != "" {
		return c.Request.URL.Path + "?" + q
	}
	return c.Request.URL.Path
}

func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}

func notFound(c *gin.Context) error {
	return errors.Status(http.StatusNotFound)
}

func methodNotAllowed(c *gin.Context) error {
	return errors.Status(http.StatusMethodNotAllowed)
}
