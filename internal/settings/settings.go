// Package settings holds the CLI's own preferences: logging, the default
// document path and preview layout. Values come from defaults, an optional
// appbuilder.toml, and APPBUILDER_* environment variables, in increasing
// precedence.
package settings

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// Name is used for the config file stem and env prefix.
	Name = "appbuilder"

	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyDocumentPath = "document.path"
	KeyPreviewWidth = "preview.width"
	KeyPreviewColor = "preview.color"
)

// EnvKeyReplacer maps dotted keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Field describes one setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f Field) Env() string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Defaults lists every known setting with its factory value.
var Defaults = []Field{
	{Key: KeyLogLevel, Value: "info", Description: "Minimum log level (debug, info, warn, error)"},
	{Key: KeyLogFormat, Value: "text", Description: "Log output format (text, json, logfmt)"},
	{Key: KeyDocumentPath, Value: "", Description: "Document opened when no path argument is given. Empty means the built-in template"},
	{Key: KeyPreviewWidth, Value: 80, Description: "Maximum preview width in columns"},
	{Key: KeyPreviewColor, Value: "auto", Description: "Preview colour mode (auto, always, never)"},
}

// Settings is the resolved configuration.
type Settings struct {
	LogLevel     string
	LogFormat    string
	DocumentPath string
	PreviewWidth int
	PreviewColor string
	// File is the config file that was read, empty when none was found.
	File string
}

// Options controls where settings are read from.
type Options struct {
	Fs afero.Fs
	// File forces a specific config file. When empty, appbuilder.toml is
	// looked up in SearchPaths.
	File        string
	SearchPaths []string
	// Environ replaces the process environment, mainly for tests. Entries use
	// KEY=VALUE form.
	Environ []string
}

// Load builds a viper instance from opts and resolves the settings.
func Load(opts Options) (Settings, *viper.Viper, error) {
	v := viper.New()
	if opts.Fs != nil {
		v.SetFs(opts.Fs)
	}

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.SetTypeByDefaultValue(true)
	for _, field := range Defaults {
		v.SetDefault(field.Key, field.Value)
	}

	if opts.Environ != nil {
		applyEnviron(v, opts.Environ)
	} else {
		v.AutomaticEnv()
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("toml")
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{"."}
		}
		for _, path := range paths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return Settings{}, nil, fmt.Errorf("read settings: %w", err)
		}
	}

	settings := Settings{
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		DocumentPath: v.GetString(KeyDocumentPath),
		PreviewWidth: v.GetInt(KeyPreviewWidth),
		PreviewColor: v.GetString(KeyPreviewColor),
		File:         v.ConfigFileUsed(),
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, nil, err
	}
	return settings, v, nil
}

// applyEnviron binds only the known keys from an explicit environment.
func applyEnviron(v *viper.Viper, environ []string) {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if ok {
			values[key] = value
		}
	}
	for _, field := range Defaults {
		if value, ok := values[field.Env()]; ok {
			v.Set(field.Key, value)
		}
	}
}

var (
	validFormats = []string{"text", "json", "logfmt"}
	validLevels  = []string{"debug", "info", "warn", "error"}
	validColors  = []string{"auto", "always", "never"}
)

// Validate rejects values outside the documented sets.
func (s Settings) Validate() error {
	if !lo.Contains(validLevels, strings.ToLower(s.LogLevel)) {
		return fmt.Errorf("%s: unsupported value %q (want one of %s)", KeyLogLevel, s.LogLevel, strings.Join(validLevels, ", "))
	}
	if !lo.Contains(validFormats, strings.ToLower(s.LogFormat)) {
		return fmt.Errorf("%s: unsupported value %q (want one of %s)", KeyLogFormat, s.LogFormat, strings.Join(validFormats, ", "))
	}
	if s.PreviewWidth < 20 {
		return fmt.Errorf("%s: must be at least 20, got %d", KeyPreviewWidth, s.PreviewWidth)
	}
	if !lo.Contains(validColors, strings.ToLower(s.PreviewColor)) {
		return fmt.Errorf("%s: unsupported value %q (want one of %s)", KeyPreviewColor, s.PreviewColor, strings.Join(validColors, ", "))
	}
	return nil
}

// Describe lists the fields sorted by key with the value each resolved to.
func Describe(v *viper.Viper) []string {
	fields := append([]Field(nil), Defaults...)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return lo.Map(fields, func(field Field, _ int) string {
		return fmt.Sprintf("%s = %v  (%s)  %s", field.Key, v.Get(field.Key), field.Env(), field.Description)
	})
}
