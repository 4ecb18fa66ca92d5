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
	err := NewParseError("app.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "app.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: app.yaml:12: unexpected token", err.Error())
}

func TestFormatParseErrorNamesDecoder(t *testing.T) {
	t.Parallel()

	err := NewFormatParseError("app.toml", "toml", 0, stdErrors.New("bad key"))
	require.Equal(t, "toml parse error: app.toml: bad key", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].type", "unknown component type", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].type", validationErr.Field)
	require.Contains(t, validationErr.Error(), "unknown component type")
	require.Equal(t, "validation error: bare", NewValidationError("", "bare", nil).Error())
}

func TestScriptErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("instance not found")
	err := NewScriptError(2, "set-style", underlying)

	var scriptErr *ScriptError
	require.ErrorAs(t, err, &scriptErr)
	require.Equal(t, 2, scriptErr.Index)
	require.Equal(t, "set-style", scriptErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "script error at ops[2] (set-style): instance not found", err.Error())
}
