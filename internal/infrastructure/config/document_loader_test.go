package config

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/infrastructure/logging"
)

const documentYAML = `components:
  - id: btn
    type: button
    defaultStyles:
      backgroundColor: "#3b82f6"
    properties:
      text: Click me
instances:
  - id: i1
    componentId: btn
`

func newTestStore(t *testing.T, files map[string]string) (*FileStore, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}
	return NewFileStore(fsys, logging.NewNoOpLogger()), fsys
}

func assertDomainCode(t *testing.T, err error, code design.ErrorCode) *design.DomainError {
	t.Helper()
	var domainErr *design.DomainError
	require.True(t, errors.As(err, &domainErr), "expected domain error, got %T: %v", err, err)
	require.Equal(t, code, domainErr.Code, domainErr.Error())
	return domainErr
}

func TestFileStoreLoadSuccess(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, map[string]string{"/work/app.yaml": documentYAML})

	doc, err := store.Load(context.Background(), "/work/app.yaml")
	require.NoError(t, err)

	resolved, err := doc.Resolve("i1")
	require.NoError(t, err)
	require.Equal(t, "#3b82f6", resolved.Style[design.StyleBackgroundColor])
	require.Equal(t, "Click me", resolved.Properties.String("text"))
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, nil)
	_, err := store.Load(context.Background(), "/missing.yaml")
	assertDomainCode(t, err, design.ErrCodeNotFound)
}

func TestFileStoreLoadDirectory(t *testing.T) {
	t.Parallel()

	store, fsys := newTestStore(t, nil)
	require.NoError(t, fsys.MkdirAll("/dir.yaml", 0o755))
	_, err := store.Load(context.Background(), "/dir.yaml")
	assertDomainCode(t, err, design.ErrCodeValidation)
}

func TestFileStoreLoadParseError(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, map[string]string{"/bad.yaml": "components: ["})
	_, err := store.Load(context.Background(), "/bad.yaml")
	domainErr := assertDomainCode(t, err, design.ErrCodeValidation)
	require.Equal(t, "/bad.yaml", domainErr.Context["path"])
}

func TestFileStoreLoadDuplicate(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, map[string]string{"/dup.yaml": documentYAML + "  - id: i1\n    componentId: btn\n"})
	_, err := store.Load(context.Background(), "/dup.yaml")
	domainErr := assertDomainCode(t, err, design.ErrCodeDuplicate)
	require.Equal(t, "instances[1].id", domainErr.Context["field"])
}

func TestFileStoreLoadCancelled(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, map[string]string{"/app.yaml": documentYAML})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx, "/app.yaml")
	assertDomainCode(t, err, design.ErrCodeCancelled)
}

func TestFileStoreSaveAndReload(t *testing.T) {
	t.Parallel()

	store, fsys := newTestStore(t, nil)
	doc, err := design.DefaultDocument().SetInstanceStyle("button1", design.StyleColor, "#000000")
	require.NoError(t, err)

	for _, path := range []string{"/out/app.yaml", "/out/app.toml", "/out/app.json"} {
		require.NoError(t, store.Save(context.Background(), path, doc), path)

		exists, err := afero.Exists(fsys, path)
		require.NoError(t, err)
		require.True(t, exists, path)

		reloaded, err := store.Load(context.Background(), path)
		require.NoError(t, err, path)
		resolved, err := reloaded.Resolve("button1")
		require.NoError(t, err, path)
		require.Equal(t, "#000000", resolved.Style[design.StyleColor], path)
	}
}

func TestFileStoreSaveUnsupportedExtension(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t, nil)
	err := store.Save(context.Background(), "/out/app.xml", design.DefaultDocument())
	assertDomainCode(t, err, design.ErrCodeValidation)
}
