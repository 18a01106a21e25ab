package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
)

var ErrInvalidJSON = apperrors.BadRequest("Request body must be a JSON object")

// fieldMessages overrides the generic message for a JSON field, whatever rule it broke.
var fieldMessages = map[string]string{
	"email":             "Valid email is required",
	"password":          "Password must be at least 6 characters long",
	"course_unit":       "Course unit must be an integer between 1 and 6",
	"level":             "Invalid level",
	"semester":          "Semester must be either first or second",
	"course_type":       "Invalid Type",
	"course_department": "Invalid Department",
	"name":              "Role name is required and must be a string",
	"user_ids":          "user_ids must be a list of user ids",
}

var tagNameOnce sync.Once

// useJSONFieldNames makes validator report json names instead of Go field names.
func useJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

var allowCache sync.Map // reflect.Type -> map[string]struct{}

func allowedKeys(t reflect.Type) map[string]struct{} {
	if v, ok := allowCache.Load(t); ok {
		return v.(map[string]struct{})
	}
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			keys[name] = struct{}{}
		}
	}
	allowCache.Store(t, keys)
	return keys
}

// bindStrict decodes the body into dst, rejecting keys dst does not declare.
// dst must be a pointer to a struct.
func bindStrict(c *gin.Context, dst interface{}) error {
	return bind(c, dst, true)
}

// bindJSON decodes without the allow-list.
func bindJSON(c *gin.Context, dst interface{}) error {
	return bind(c, dst, false)
}

func bind(c *gin.Context, dst interface{}, strict bool) error {
	useJSONFieldNames()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ErrInvalidJSON
	}
	if strict {
		allowed := allowedKeys(reflect.TypeOf(dst).Elem())
		for k := range raw {
			if _, ok := allowed[k]; !ok {
				return service.ErrForeignField
			}
		}
	}

	if err := binding.JSON.BindBody(body, dst); err != nil {
		return bindError(err)
	}
	return nil
}

// bindError converts decode and validation failures into a 400 with one
// message per offending field.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return apperrors.Validation([]string{fieldMessage(field, fmt.Sprintf("%s must be a %s", field, typeErr.Type.String()))})
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		seen := make(map[string]bool, len(verrs))
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msg := fieldMessage(fe.Field(), fmt.Sprintf("%s is invalid", fe.Field()))
			if !seen[msg] {
				seen[msg] = true
				details = append(details, msg)
			}
		}
		return apperrors.Validation(details)
	}

	return ErrInvalidJSON
}

func fieldMessage(field, fallback string) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return fallback
}

// parseID reads the :id path parameter. Ids start at 1.
func parseID(c *gin.Context, entity string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.BadRequest(fmt.Sprintf("Missing %s id", entity))
	}
	return id, nil
}

// fail hands err to the error handler middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
