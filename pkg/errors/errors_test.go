package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("tokens.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "tokens.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "tokens.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("tokens.yaml", 0, stdErrors.New("missing"))
	require.Equal(t, "parse error: tokens.yaml: missing", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("api.base_url", "must be a valid URL", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "api.base_url", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be a valid URL")
	require.Nil(t, validationErr.Unwrap())
}

func TestFetchErrorMessages(t *testing.T) {
	t.Parallel()

	t.Run("status", func(t *testing.T) {
		t.Parallel()
		err := NewFetchError("http://localhost:5000/", 503, nil)

		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		require.Equal(t, 503, fetchErr.Status)
		require.Contains(t, err.Error(), "unexpected status 503")
	})

	t.Run("transport", func(t *testing.T) {
		t.Parallel()
		underlying := stdErrors.New("connection refused")
		err := NewFetchError("http://localhost:5000/", 0, underlying)

		require.True(t, stdErrors.Is(err, underlying))
		require.Contains(t, err.Error(), "connection refused")
	})
}

func TestDecodeErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unexpected EOF")
	err := NewDecodeError("http://localhost:5000/", underlying)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var fetchErr *FetchError
	var decodeErr *DecodeError
	require.Empty(t, parseErr.Error())
	require.Nil(t, fetchErr.Unwrap())
	require.Empty(t, decodeErr.Error())
}
