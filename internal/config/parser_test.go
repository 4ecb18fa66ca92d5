package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

const sampleYAML = `version: "1.0.0"
theme:
  primaryAccent: "#6366f1"
components:
  - id: btn
    type: button
    label: Button
    defaultStyles:
      backgroundColor: "#3b82f6"
      padding: 0.5rem
    properties:
      text: Click me
      disabled: false
      tabIndex: 1
instances:
  - id: root
    componentId: btn
    instanceStyles:
      backgroundColor: "#10b981"
    children:
      - id: child
        componentId: btn
`

const sampleTOML = `version = "1.0.0"

[[components]]
id = "btn"
type = "button"

[components.defaultStyles]
backgroundColor = "#3b82f6"

[components.properties]
text = "Click me"

[[instances]]
id = "root"
componentId = "btn"

[[instances.children]]
id = "child"
componentId = "btn"
`

const sampleJSON = `{
  "components": [
    {"id": "btn", "type": "button", "properties": {"text": "Click me", "size": 2}}
  ],
  "instances": [
    {"id": "root", "componentId": "btn", "children": [{"id": "child", "componentId": "btn"}]}
  ]
}`

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestParseDocumentFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
	}{
		{name: "yaml", path: "/docs/app.yaml", content: sampleYAML},
		{name: "yml", path: "/docs/app.yml", content: sampleYAML},
		{name: "toml", path: "/docs/app.toml", content: sampleTOML},
		{name: "json", path: "/docs/app.json", content: sampleJSON},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fsys := afero.NewMemMapFs()
			writeFile(t, fsys, tt.path, tt.content)

			file, err := ParseDocument(fsys, tt.path)
			require.NoError(t, err)
			require.Len(t, file.Components, 1)
			require.Equal(t, "btn", file.Components[0].ID)
			require.Equal(t, "Click me", file.Components[0].Properties["text"])
			require.Len(t, file.Instances, 1)
			require.Len(t, file.Instances[0].Children, 1)
			require.Equal(t, "child", file.Instances[0].Children[0].ID)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(afero.NewMemMapFs(), "/missing.yaml")
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "/missing.yaml", parseErr.Path)
}

func TestParseDocumentUnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(afero.NewMemMapFs(), "/doc.ini")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "path", validationErr.Field)
}

func TestDecodeDocumentReportsLines(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument([]byte("components:\n  - id: btn\n    type: [\n"), FormatYAML, "bad.yaml")
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "yaml", parseErr.Format)
	require.Positive(t, parseErr.Line)

	_, err = DecodeDocument([]byte("{\n  \"components\": [\n    {\"id\": }\n  ]\n}"), FormatJSON, "bad.json")
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Line)

	_, err = DecodeDocument([]byte("components = [\n"), FormatTOML, "bad.toml")
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "toml", parseErr.Format)
}

func TestDecodeDocumentRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument([]byte("components: []\ncolours: {}\n"), FormatYAML, "typo.yaml")
	require.Error(t, err)

	_, err = DecodeDocument([]byte(`{"components": [], "colours": {}}`), FormatJSON, "typo.json")
	require.Error(t, err)
}

func TestDecodeDocumentEmpty(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument(nil, FormatYAML, "empty.yaml")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "empty")
}

func TestEncodeDocumentRoundTrips(t *testing.T) {
	t.Parallel()

	original, err := DecodeDocument([]byte(sampleYAML), FormatYAML, "app.yaml")
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		data, err := EncodeDocument(original, format)
		require.NoError(t, err, format)

		decoded, err := DecodeDocument(data, format, "out."+string(format))
		require.NoError(t, err, format)
		require.NoError(t, ValidateDocument(decoded), format)

		doc, err := ToDomain(decoded)
		require.NoError(t, err, format)
		root, err := doc.Instance("root")
		require.NoError(t, err, format)
		require.Equal(t, "#10b981", string(root.InstanceStyles["backgroundColor"]), format)
	}
}

func TestEncodeDocumentUnsupported(t *testing.T) {
	t.Parallel()

	_, err := EncodeDocument(&DocumentFile{}, Format("xml"))
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]Format{"a.YAML": FormatYAML, "b.yml": FormatYAML, "c.toml": FormatTOML, "d.json": FormatJSON} {
		got, err := DetectFormat(path)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := DetectFormat("e.txt")
	require.Error(t, err)
}
