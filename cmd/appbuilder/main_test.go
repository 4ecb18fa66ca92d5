package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var testEnviron = []string{
	"APPBUILDER_PREVIEW_COLOR=never",
	"APPBUILDER_LOG_LEVEL=error",
}

type commandResult struct {
	stdout string
	stderr string
	err    error
}

func executeCommand(fs afero.Fs, args ...string) commandResult {
	return executeWithApp(newAppContext(fs, testEnviron), args...)
}

func executeWithApp(app *AppContext, args ...string) commandResult {
	root := newRootCmd(app)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

const danglingYAML = `components:
  - id: btn
    type: button
    label: Button
    defaultStyles:
      backgroundColor: "#3b82f6"
    properties:
      text: Go
instances:
  - id: page
    componentId: btn
    children:
      - id: ghost1
        componentId: ghost
`

func TestRootWithoutSubcommandPrintsHelp(t *testing.T) {
	t.Parallel()

	res := executeCommand(afero.NewMemMapFs())
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "appbuilder")
	require.Contains(t, res.stdout, "resolve")
	require.Contains(t, res.stdout, "edit-tui")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	res := executeCommand(afero.NewMemMapFs(), "version")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "appbuilder dev")
	require.Contains(t, res.stdout, "commit: none")
}

func TestInvalidSettingsReportThroughStartupLogger(t *testing.T) {
	t.Parallel()

	app := newAppContext(afero.NewMemMapFs(), []string{"APPBUILDER_PREVIEW_WIDTH=5"})
	res := executeWithApp(app, "tree")

	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "reading settings")
	require.Contains(t, res.err.Error(), "preview.width")
	require.Contains(t, res.stderr, "settings rejected")
}

func TestSettingsFileIsRead(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/appbuilder.toml", "[document]\npath = \"/work/design.yaml\"\n")
	writeFile(t, fs, "/work/design.yaml", danglingYAML)

	res := executeCommand(fs, "--config", "/work/appbuilder.toml", "tree")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "page  Button (Button)")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	t.Parallel()

	res := executeCommand(afero.NewMemMapFs(), "--log-level", "loud", "tree")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "configuring logging")
}

func TestMissingDocument(t *testing.T) {
	t.Parallel()

	res := executeCommand(afero.NewMemMapFs(), "--document", "/nope.yaml", "tree")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "loading /nope.yaml")
	require.Contains(t, res.err.Error(), "Check the --document path")
}

func TestClosest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		value      string
		candidates []string
		want       string
		wantOK     bool
	}{
		{name: "typo", value: "buton1", candidates: []string{"root", "button1", "button2"}, want: "button1", wantOK: true},
		{name: "case insensitive", value: "PrimaryAcent", candidates: []string{"primaryAccent", "secondaryAccent"}, want: "primaryAccent", wantOK: true},
		{name: "too far", value: "zzzzzz", candidates: []string{"root", "card1"}},
		{name: "no candidates", value: "root"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := closest(tt.value, tt.candidates)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCommandErrorFormatting(t *testing.T) {
	t.Parallel()

	err := newCommandError("resolve", "resolving instance \"x\"", errTest, "Run 'appbuilder tree'.")
	require.Equal(t, "Failed to resolve: resolving instance \"x\"\n\nError: boom\n\nSuggestion: Run 'appbuilder tree'.", err.Error())
	require.ErrorIs(t, err, errTest)

	bare := newCommandError("resolve", "loading", errTest, "")
	require.NotContains(t, bare.Error(), "Suggestion")
}
