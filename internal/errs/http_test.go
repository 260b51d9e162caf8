package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	require.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	require.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	err := NewBadRequestError("Username is already taken.", true, &code, nil, nil)

	require.Equal(t, http.StatusBadRequest, err.Status)
	require.Equal(t, code, err.Code)
	require.Equal(t, "Username is already taken.", err.Error())
}

func TestNewMalformedIDError(t *testing.T) {
	err := NewMalformedIDError()

	require.Equal(t, http.StatusBadRequest, err.Status)
	require.Equal(t, CodeMalformedID, err.Code)
	require.Equal(t, "malformatted id", err.Message)
}

func TestHTTPError_JSONCarriesMessageUnderErrorKey(t *testing.T) {
	body, err := json.Marshal(NewUnknownEndpointError())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Equal(t, "unknown endpoint", decoded["error"])
	require.Equal(t, "NOT_FOUND", decoded["code"])
	require.NotContains(t, decoded, "errors")
	require.NotContains(t, decoded, "action")
}

func TestHTTPError_IsMatchesOnType(t *testing.T) {
	wrapped := fmt.Errorf("delete blog: %w", NewNotFoundError("Blog not found", true, nil))

	require.True(t, errors.Is(wrapped, &HTTPError{}))
	require.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessage_DoesNotMutateOriginal(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	custom := base.WithMessage("Blog not found")

	require.Equal(t, "Resource not found", base.Message)
	require.Equal(t, "Blog not found", custom.Message)
	require.Equal(t, base.Status, custom.Status)
}
