package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	cfgpkg "github.com/daviddossett/targeted-selection/internal/config"
	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ports"
	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

// FileStore implements ports.DocumentLoader and ports.DocumentWriter over an
// afero filesystem. The format follows the file extension.
type FileStore struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewFileStore creates a store. A nil fs means the OS filesystem.
func NewFileStore(fsys afero.Fs, logger ports.Logger) *FileStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileStore{fs: fsys, logger: logger}
}

// Load reads, validates and converts the document at path.
func (s *FileStore) Load(ctx context.Context, path string) (design.Document, error) {
	if err := contextCheck(ctx); err != nil {
		return design.Document{}, err
	}

	s.logDebug(ctx, "loading design document", map[string]interface{}{"path": path})

	info, err := s.fs.Stat(path)
	if err != nil {
		s.logError(ctx, "document path stat failed", err, map[string]interface{}{"path": path})
		return design.Document{}, convertError(err, path)
	}
	if info.IsDir() {
		return design.Document{}, domainError(design.ErrCodeValidation, "document path is a directory", nil, map[string]interface{}{"path": path})
	}

	file, err := cfgpkg.ParseDocument(s.fs, path)
	if err != nil {
		s.logError(ctx, "failed to parse document", err, map[string]interface{}{"path": path})
		return design.Document{}, convertError(err, path)
	}

	if err := contextCheck(ctx); err != nil {
		return design.Document{}, err
	}

	doc, err := cfgpkg.ToDomain(file)
	if err != nil {
		s.logError(ctx, "document failed domain validation", err, map[string]interface{}{"path": path})
		return design.Document{}, convertError(err, path)
	}

	s.logInfo(ctx, "design document loaded", map[string]interface{}{
		"path":       path,
		"components": len(doc.App.Components),
		"instances":  len(design.InstanceIDs(doc.App.Instances)),
	})
	return doc, nil
}

// Save encodes doc according to the path extension and writes it, creating
// parent directories as needed.
func (s *FileStore) Save(ctx context.Context, path string, doc design.Document) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}

	format, err := cfgpkg.DetectFormat(path)
	if err != nil {
		return domainError(design.ErrCodeValidation, "unsupported document extension", err, map[string]interface{}{"path": path})
	}

	data, err := cfgpkg.EncodeDocument(cfgpkg.FromDomain(doc), format)
	if err != nil {
		return domainError(design.ErrCodeInternal, "document encode failed", err, map[string]interface{}{"path": path})
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return domainError(design.ErrCodeInternal, "create document directory failed", err, map[string]interface{}{"path": dir})
		}
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		s.logError(ctx, "document write failed", err, map[string]interface{}{"path": path})
		return domainError(design.ErrCodeInternal, "document write failed", err, map[string]interface{}{"path": path})
	}

	s.logInfo(ctx, "design document saved", map[string]interface{}{"path": path, "format": string(format), "bytes": len(data)})
	return nil
}

var (
	_ ports.DocumentLoader = (*FileStore)(nil)
	_ ports.DocumentWriter = (*FileStore)(nil)
)

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	var domainErr *design.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.WithContext(map[string]interface{}{"path": path})
	}
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, fs.ErrNotExist) {
			return domainError(design.ErrCodeNotFound, "document not found", parseErr.Err, map[string]interface{}{"path": path})
		}
		return domainError(design.ErrCodeValidation, "invalid document syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		context := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			context["field"] = valErr.Field
		}
		code := design.ErrCodeValidation
		if strings.Contains(strings.ToLower(valErr.Message), "duplicate") {
			code = design.ErrCodeDuplicate
		}
		return domainError(code, valErr.Message, err, context)
	}
	if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
		return domainError(design.ErrCodeNotFound, "document not found", err, map[string]interface{}{"path": path})
	}
	return domainError(design.ErrCodeInternal, "document load failed", err, map[string]interface{}{"path": path})
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return domainError(design.ErrCodeCancelled, "operation cancelled", err, nil)
	}
	return nil
}

func domainError(code design.ErrorCode, message string, cause error, ctx map[string]interface{}) *design.DomainError {
	return &design.DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: ctx,
	}
}

func (s *FileStore) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (s *FileStore) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (s *FileStore) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	s.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
