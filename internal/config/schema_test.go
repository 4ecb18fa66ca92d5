package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONSchema(t *testing.T) {
	t.Parallel()

	schema, ok := JSONSchema(SchemaDocument)
	require.True(t, ok)
	data, err := json.Marshal(schema)
	require.NoError(t, err)
	require.Contains(t, string(data), "componentId")
	require.Contains(t, string(data), `"container"`)

	schema, ok = JSONSchema(SchemaScript)
	require.True(t, ok)
	data, err = json.Marshal(schema)
	require.NoError(t, err)
	require.Contains(t, string(data), "update-component-style")

	_, ok = JSONSchema("pipeline")
	require.False(t, ok)
}
