package config

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema kinds accepted by JSONSchema.
const (
	SchemaDocument = "document"
	SchemaScript   = "script"
)

// JSONSchema reflects the JSON schema of a document or edit-script file.
func JSONSchema(kind string) (*jsonschema.Schema, bool) {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return t.Name()
	}

	switch kind {
	case SchemaDocument, "":
		return reflector.Reflect(&DocumentFile{}), true
	case SchemaScript:
		return reflector.Reflect(&ScriptFile{}), true
	default:
		return nil, false
	}
}
