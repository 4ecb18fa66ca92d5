package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	appeditor "github.com/daviddossett/targeted-selection/internal/application/editor"
	"github.com/daviddossett/targeted-selection/internal/domain/design"
	infraconfig "github.com/daviddossett/targeted-selection/internal/infrastructure/config"
	"github.com/daviddossett/targeted-selection/internal/infrastructure/events"
	"github.com/daviddossett/targeted-selection/internal/infrastructure/logging"
	"github.com/daviddossett/targeted-selection/internal/logger"
	"github.com/daviddossett/targeted-selection/internal/ports"
	"github.com/daviddossett/targeted-selection/internal/settings"
	"github.com/daviddossett/targeted-selection/internal/ui/preview"
)

// builtinSource labels the embedded default template.
const builtinSource = "(built-in template)"

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	fs      afero.Fs
	environ []string

	buffer    *logging.EventBuffer
	bootstrap ports.Logger

	Settings settings.Settings
	Viper    *viper.Viper
	Logger   ports.Logger
	Events   *events.LoggingPublisher
	Store    *infraconfig.FileStore

	correlationID string

	// clipboard and prompt are swapped out in tests.
	clipboard func(string) error
	prompt    themePrompt
}

func newAppContext(fs afero.Fs, environ []string) *AppContext {
	buffer := logging.NewEventBuffer(0)
	return &AppContext{
		fs:            fs,
		environ:       environ,
		buffer:        buffer,
		bootstrap:     logging.NewBufferedLogger(buffer).With("layer", "cli"),
		Logger:        logging.NewNoOpLogger(),
		correlationID: ports.GenerateCorrelationID(),
		prompt:        huhThemePrompt,
	}
}

// Init reads settings and builds the logger, publisher and document store.
// Entries logged before the logger exists are replayed into it, or into the
// startup console logger when settings cannot be read.
func (a *AppContext) Init(cmd *cobra.Command, flags *rootFlags) error {
	ctx, _ := a.CommandContext(cmd, "startup")
	a.bootstrap.Debug(ctx, "reading settings", "config", flags.configPath)

	loaded, v, err := settings.Load(settings.Options{
		Fs:          a.fs,
		File:        flags.configPath,
		SearchPaths: settingsSearchPaths(),
		Environ:     a.environ,
	})
	if err != nil {
		a.bootstrap.Error(ctx, "settings rejected", "error", err)
		a.buffer.Flush(logger.Startup(cmd.ErrOrStderr()))
		return newCommandError("start", "reading settings", err, "Fix the settings file or APPBUILDER_* environment variables; run 'appbuilder config' to list them.")
	}
	if flags.logLevel != "" {
		loaded.LogLevel = flags.logLevel
	}
	a.Settings, a.Viper = loaded, v
	if loaded.File != "" {
		a.bootstrap.Info(ctx, "settings file loaded", "path", loaded.File)
	}

	format, err := logging.ParseFormat(loaded.LogFormat)
	if err == nil {
		a.Logger, err = logging.New(logging.Options{
			Writer: cmd.ErrOrStderr(),
			Level:  loaded.LogLevel,
			Format: format,
			Layer:  "cli",
		})
	}
	if err != nil {
		a.bootstrap.Error(ctx, "logger unavailable", "error", err)
		a.buffer.Flush(logger.Startup(cmd.ErrOrStderr()))
		return newCommandError("start", "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}
	a.buffer.Flush(a.Logger)

	a.Events = events.NewLoggingPublisher(a.Logger.With("layer", "infrastructure", "component", "events"))
	a.Store = infraconfig.NewFileStore(a.fs, a.Logger.With("layer", "infrastructure", "component", "loader"))
	return nil
}

// CommandContext returns the command's context carrying the run's correlation
// ID together with a logger scoped to the command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ports.WithCorrelationID(ctx, a.correlationID), a.Logger.With("command", name)
}

// documentPath picks the explicit path, then the configured default.
func (a *AppContext) documentPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return a.Settings.DocumentPath
}

// OpenDocument loads path, or the built-in template when no path is set.
func (a *AppContext) OpenDocument(ctx context.Context, explicit string) (design.Document, string, error) {
	path := a.documentPath(explicit)
	if path == "" {
		return design.DefaultDocument(), builtinSource, nil
	}
	doc, err := a.Store.Load(ctx, path)
	if err != nil {
		return design.Document{}, path, err
	}
	return doc, path, nil
}

// OpenSession wraps OpenDocument in an editor session.
func (a *AppContext) OpenSession(ctx context.Context, explicit string) (*appeditor.Session, string, error) {
	doc, source, err := a.OpenDocument(ctx, explicit)
	if err != nil {
		return nil, source, err
	}
	session := appeditor.NewSession(doc, a.Logger.With("layer", "application"), a.Events)
	return session, source, nil
}

// Renderer builds a preview renderer for w. A width of zero means the
// terminal width capped by preview.width, or preview.width off a terminal.
func (a *AppContext) Renderer(w io.Writer, width int) *preview.Renderer {
	if width <= 0 {
		width = a.Settings.PreviewWidth
		if cols, ok := terminalWidth(w); ok && cols < width {
			width = cols
		}
	}
	return preview.New(preview.Options{
		Width:   width,
		Profile: preview.DetectProfile(preview.ColorMode(a.Settings.PreviewColor), w),
	})
}

func settingsSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, settings.Name))
	}
	return paths
}

func terminalFd(v interface{}) (int, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func isTerminal(v interface{}) bool {
	_, ok := terminalFd(v)
	return ok
}

func terminalWidth(w io.Writer) (int, bool) {
	fd, ok := terminalFd(w)
	if !ok {
		return 0, false
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}
