package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/stacygol/bloglist/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_NotFoundNamesEntity(t *testing.T) {
	err := fmt.Errorf("delete blog: %w", NotFound("blogs"))

	httpErr := asHTTPError(t, HandleError(err))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Blog not found", httpErr.Message)
}

func TestHandleError_BareNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))

	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_username_key",
		Message:        "duplicate key value violates unique constraint",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("create user: %w", pgErr)))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "A User with this Username already exists", httpErr.Message)
}

func TestHandleError_NotNullViolationHasFieldError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "blogs", ColumnName: "url"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "BLOG_REQUIRED", httpErr.Code)
	require.Equal(t, []errs.FieldError{{Field: "url", Error: "is required"}}, httpErr.Errors)
}

func TestHandleError_InvalidTextIsMalformedID(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, errs.CodeMalformedID, httpErr.Code)
	require.Equal(t, "malformatted id", httpErr.Message)
}

func TestHandleError_NumericOutOfRange(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22003", TableName: "blogs", Message: "integer out of range"}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("create blog: %w", pgErr)))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "BLOG_OUT_OF_RANGE", httpErr.Code)
	require.Equal(t, "A numeric value is out of range", httpErr.Message)

	pgErr.ColumnName = "likes"
	httpErr = asHTTPError(t, HandleError(pgErr))
	require.Equal(t, "The Likes value is out of range", httpErr.Message)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	orig := errs.NewBadRequestError("title is required", true, nil, nil, nil)
	require.Same(t, orig, HandleError(orig))
}

func TestHandleError_UnknownIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
}

func TestErrCode(t *testing.T) {
	require.Equal(t, UniqueViolation, ErrCode(&pgconn.PgError{Code: "23505"}))
	require.Equal(t, CheckViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23514"})))
	require.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	cases := map[string]string{
		"users_username_key":    "username",
		"unique_users_username": "username",
		"pk_users":              "",
		"":                      "",
	}
	for constraint, want := range cases {
		require.Equal(t, want, extractColumnForUniqueViolation(constraint), constraint)
	}
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(NotFound("persons")))
	require.False(t, IsNotFound(errors.New("other")))
}
