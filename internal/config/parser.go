package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument reads path from fsys, decodes it according to its extension
// and validates the result.
func ParseDocument(fsys afero.Fs, path string) (*DocumentFile, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, apperrors.NewValidationError("path", err.Error(), err)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	file, err := DecodeDocument(data, format, path)
	if err != nil {
		return nil, err
	}

	if err := ValidateDocument(file); err != nil {
		return nil, err
	}
	return file, nil
}

// DecodeDocument decodes raw bytes without validating them. Unknown fields
// are rejected in every format.
func DecodeDocument(data []byte, format Format, path string) (*DocumentFile, error) {
	var file DocumentFile
	if err := decodeStrict(data, format, path, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func decodeStrict(data []byte, format Format, path string, out interface{}) error {
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				return apperrors.NewValidationError("", "document is empty", nil)
			}
			return apperrors.NewFormatParseError(path, string(format), extractLine(err), err)
		}
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(out); err != nil {
			return apperrors.NewFormatParseError(path, string(format), tomlLine(err), err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				return apperrors.NewValidationError("", "document is empty", nil)
			}
			return apperrors.NewFormatParseError(path, string(format), jsonLine(data, err), err)
		}
	default:
		return apperrors.NewValidationError("format", fmt.Sprintf("unsupported format %q", format), nil)
	}
	return nil
}

// EncodeDocument serialises file in the requested format.
func EncodeDocument(file *DocumentFile, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(file); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(file)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return extractLine(err)
}

func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
