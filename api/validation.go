package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/Aidin1998/contacts_manager/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useWireFieldNames makes validator report json/form names instead of Go
// field names, so error locations match what the client sent.
func useWireFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindingError("body", err)
	}
	return nil
}

func bindQuery(c *gin.Context, obj any) error {
	err := c.ShouldBindQuery(obj)
	if err == nil {
		return nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if key := queryKeyFor(obj, c.Request.URL.Query(), numErr.Num); key != "" {
			return errors.NewValidationError().
				WithField([]string{"query", key}, fmt.Sprintf("Input should be a valid integer, unable to parse %q", numErr.Num), "int_parsing").
				Wrap(err)
		}
	}
	return bindingError("query", err)
}

// queryKeyFor finds the form key of obj whose query value is raw. gin reports
// number parse failures without the key they came from.
func queryKeyFor(obj any, query url.Values, raw string) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	for i := 0; i < t.NumField(); i++ {
		key := strings.SplitN(t.Field(i).Tag.Get("form"), ",", 2)[0]
		if key == "" || key == "-" {
			continue
		}
		for _, v := range query[key] {
			if v == raw {
				return key
			}
		}
	}
	return ""
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError().
			WithField([]string{"path", name}, "Input should be a valid integer, unable to parse string as an integer", "int_parsing").
			Wrap(err)
	}
	return uint(id), nil
}

// bindingError translates gin binding failures into a ValidationError with one
// entry per offending field.
func bindingError(source string, err error) error {
	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var numErr *strconv.NumError

	out := errors.NewValidationError()
	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			out = out.WithField([]string{source, fe.Field()}, fieldMessage(fe), fe.Tag())
		}
	case errors.As(err, &typeErr):
		loc := []string{source}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		out = out.WithField(loc, fmt.Sprintf("Input should be a valid %s", typeErr.Type), typeErr.Type.Kind().String()+"_type")
	case errors.As(err, &syntaxErr):
		out = out.WithField([]string{source}, "JSON decode error", "json_invalid")
	case errors.Is(err, io.EOF):
		out = out.WithField([]string{source}, "Field required", "missing")
	case errors.Is(err, io.ErrUnexpectedEOF):
		out = out.WithField([]string{source}, "JSON decode error", "json_invalid")
	case errors.As(err, &numErr):
		out = out.WithField([]string{source}, fmt.Sprintf("Input should be a valid number, unable to parse %q", numErr.Num), "int_parsing")
	default:
		out = out.WithField([]string{source}, err.Error(), "value_error")
	}
	return out.Wrap(err)
}

func fieldMessage(fe validator.FieldError) string {
	numeric := false
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		numeric = true
	}

	switch fe.Tag() {
	case "required":
		return "Field required"
	case "email":
		return "value is not a valid email address"
	case "datetime":
		return "Input should be a valid date in YYYY-MM-DD format"
	case "max":
		if numeric {
			return fmt.Sprintf("Input should be less than or equal to %s", fe.Param())
		}
		return fmt.Sprintf("String should have at most %s characters", fe.Param())
	case "min":
		if numeric {
			return fmt.Sprintf("Input should be greater than or equal to %s", fe.Param())
		}
		return fmt.Sprintf("String should have at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' validation", fe.Tag())
	}
}
