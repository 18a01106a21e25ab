package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"

	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
)

func TestKindHTTPStatus(t *testing.T) {
	c := qt.New(t)

	c.Assert(apperrors.KindBadRequest.HTTPStatus(), qt.Equals, http.StatusBadRequest)
	c.Assert(apperrors.KindUnauthorized.HTTPStatus(), qt.Equals, http.StatusUnauthorized)
	c.Assert(apperrors.KindForbidden.HTTPStatus(), qt.Equals, http.StatusForbidden)
	c.Assert(apperrors.KindNotFound.HTTPStatus(), qt.Equals, http.StatusNotFound)
	c.Assert(apperrors.KindConflict.HTTPStatus(), qt.Equals, http.StatusConflict)
	c.Assert(apperrors.KindInternal.HTTPStatus(), qt.Equals, http.StatusInternalServerError)
}

func TestSentinelSurvivesWrapping(t *testing.T) {
	c := qt.New(t)

	sentinel := apperrors.NotFound("Session not found")
	wrapped := fmt.Errorf("set current: %w", sentinel)

	c.Assert(stderrors.Is(wrapped, sentinel), qt.IsTrue)
	c.Assert(apperrors.KindOf(wrapped), qt.Equals, apperrors.KindNotFound)

	got, ok := apperrors.As(wrapped)
	c.Assert(ok, qt.IsTrue)
	c.Assert(got.Message, qt.Equals, "Session not found")
}

func TestInternalHidesCause(t *testing.T) {
	c := qt.New(t)

	cause := stderrors.New("pq: connection refused")
	err := apperrors.Internal(cause)

	c.Assert(err.Message, qt.Equals, "An unexpected error occurred")
	c.Assert(stderrors.Is(err, cause), qt.IsTrue)
	c.Assert(err.Error(), qt.Contains, "connection refused")
}

func TestKindOfPlainError(t *testing.T) {
	c := qt.New(t)

	c.Assert(apperrors.KindOf(stderrors.New("boom")), qt.Equals, apperrors.KindInternal)
	_, ok := apperrors.As(stderrors.New("boom"))
	c.Assert(ok, qt.IsFalse)
}

func TestValidation(t *testing.T) {
	c := qt.New(t)

	err := apperrors.Validation([]string{"Valid email is required"})
	c.Assert(err.Kind, qt.Equals, apperrors.KindBadRequest)
	c.Assert(err.Message, qt.Equals, apperrors.ValidationMessage)
	c.Assert(err.Details, qt.DeepEquals, []string{"Valid email is required"})
}
