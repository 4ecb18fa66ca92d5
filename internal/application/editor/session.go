// Package editor owns the current design document and the editor state, and
// is the only place where mutations are serialised.
package editor

import (
	"context"
	"sync"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
	"github.com/daviddossett/targeted-selection/internal/ports"
	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

// Session holds one document and swaps it wholesale on every successful
// mutation. Readers always observe a complete snapshot.
type Session struct {
	mu       sync.RWMutex
	doc      design.Document
	state    design.EditorState
	revision uint64

	logger ports.Logger
	events ports.EventPublisher
}

// NewSession constructs a Session around doc. Logger and events may be nil.
func NewSession(doc design.Document, logger ports.Logger, events ports.EventPublisher) *Session {
	if logger != nil {
		logger = logger.With("component", "editor")
	}
	return &Session{
		doc:    doc,
		state:  design.NewEditorState(),
		logger: logger,
		events: events,
	}
}

// Snapshot returns the current document.
func (s *Session) Snapshot() design.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Revision counts successful mutations since the session started.
func (s *Session) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// State returns the editor state.
func (s *Session) State() design.EditorState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Resolve returns the render-ready view of one instance, theme fallback included.
func (s *Session) Resolve(instanceID string) (design.Resolved, error) {
	return s.Snapshot().ResolveThemed(instanceID)
}

// ResolveTree resolves the whole forest with theme fallback.
func (s *Session) ResolveTree() []design.ResolvedNode {
	return s.Snapshot().ResolveTree(true)
}

// Replace adopts a new document, for example after reloading from disk. The
// editor state is reset except for the mode.
func (s *Session) Replace(ctx context.Context, doc design.Document) error {
	if err := doc.Validate(); err != nil {
		s.fail(ctx, map[string]interface{}{"op": "replace"}, err)
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.state = design.NewEditorState().SetMode(s.state.Mode)
	s.revision++
	revision := s.revision
	s.mu.Unlock()

	payload := map[string]interface{}{
		"revision":   revision,
		"components": len(doc.App.Components),
		"instances":  len(design.InstanceIDs(doc.App.Instances)),
	}
	if s.logger != nil {
		s.logger.Info(ctx, "document replaced", "revision", revision)
	}
	publishEvent(ctx, s.events, s.logger, ports.EventDocumentLoaded, payload)
	return nil
}

// Apply runs a single operation.
func (s *Session) Apply(ctx context.Context, op Operation) error {
	_, err := s.apply(ctx, fixedPlan([]Operation{op}), false)
	return err
}

// ApplyAll runs ops atomically: either every operation is committed or the
// document is left untouched. The failing operation is reported as a
// *errors.ScriptError carrying its index. The revision advances once per
// operation.
func (s *Session) ApplyAll(ctx context.Context, ops []Operation) (int, error) {
	return s.apply(ctx, fixedPlan(ops), true)
}

// plan builds the operations to run from the state seen under the write lock.
type plan func(doc design.Document, state design.EditorState) ([]Operation, error)

func fixedPlan(ops []Operation) plan {
	return func(design.Document, design.EditorState) ([]Operation, error) { return ops, nil }
}

func (s *Session) apply(ctx context.Context, build plan, batch bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, &design.DomainError{Code: design.ErrCodeCancelled, Message: "operation cancelled", Cause: err}
	}

	s.mu.Lock()
	ops, err := build(s.doc, s.state)
	if err != nil || len(ops) == 0 {
		s.mu.Unlock()
		return 0, err
	}
	working := s.doc
	outcomes := make([]outcome, 0, len(ops))
	for i, op := range ops {
		next, out, err := applyOperation(working, op)
		if err != nil {
			s.mu.Unlock()
			fields := op.fields()
			if batch {
				fields["index"] = i
				err = apperrors.NewScriptError(i, string(op.Kind), err)
			}
			s.fail(ctx, fields, err)
			return 0, err
		}
		working = next
		outcomes = append(outcomes, out)
	}
	s.doc = working
	base := s.revision
	s.revision += uint64(len(ops))
	s.mu.Unlock()

	for i, out := range outcomes {
		out.payload["revision"] = base + uint64(i) + 1
		if s.logger != nil {
			s.logger.Debug(ctx, "mutation applied", flatten(out.payload)...)
		}
		publishEvent(ctx, s.events, s.logger, out.eventType, out.payload)
	}
	return len(ops), nil
}

func (s *Session) fail(ctx context.Context, fields map[string]interface{}, err error) {
	if s.logger != nil {
		s.logger.Warn(ctx, "mutation rejected", append(flatten(fields), "error", err)...)
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err.Error()
	publishEvent(ctx, s.events, s.logger, ports.EventMutationFailed, payload)
}

// SetInstanceStyle overrides (or with "" clears) one style attribute.
func (s *Session) SetInstanceStyle(ctx context.Context, instanceID string, key design.StyleKey, value string) error {
	return s.Apply(ctx, SetStyle(instanceID, key, value))
}

// SetInstanceProperty overrides one property. A nil value clears it.
func (s *Session) SetInstanceProperty(ctx context.Context, instanceID, key string, value *design.PropertyValue) error {
	if value == nil {
		return s.ResetInstanceProperty(ctx, instanceID, key)
	}
	return s.Apply(ctx, SetProperty(instanceID, key, *value))
}

// ResetInstanceStyle removes one style override.
func (s *Session) ResetInstanceStyle(ctx context.Context, instanceID string, key design.StyleKey) error {
	return s.Apply(ctx, Operation{Kind: OpResetStyle, Instance: instanceID, Key: string(key)})
}

// ResetInstanceProperty removes one property override.
func (s *Session) ResetInstanceProperty(ctx context.Context, instanceID, key string) error {
	return s.Apply(ctx, Operation{Kind: OpUnsetProperty, Instance: instanceID, Key: key})
}

// ResetAllOverrides discards every override on the instance.
func (s *Session) ResetAllOverrides(ctx context.Context, instanceID string) error {
	return s.Apply(ctx, Operation{Kind: OpReset, Instance: instanceID})
}

// PushOverridesToComponent promotes the instance's overrides to its definition.
func (s *Session) PushOverridesToComponent(ctx context.Context, instanceID string) error {
	return s.Apply(ctx, Operation{Kind: OpPush, Instance: instanceID})
}

// UpdateComponentStyle changes a definition default.
func (s *Session) UpdateComponentStyle(ctx context.Context, componentID string, key design.StyleKey, value string) error {
	return s.Apply(ctx, Operation{Kind: OpUpdateComponentStyle, Component: componentID, Key: string(key), Text: someText(value)})
}

// UpdateComponentProperty changes a definition property default.
func (s *Session) UpdateComponentProperty(ctx context.Context, componentID, key string, value design.PropertyValue) error {
	return s.Apply(ctx, Operation{Kind: OpUpdateComponentProperty, Component: componentID, Key: key, Property: someProperty(value)})
}

// UpdateComponentLabel renames a definition.
func (s *Session) UpdateComponentLabel(ctx context.Context, componentID, label string) error {
	return s.Apply(ctx, Operation{Kind: OpUpdateComponentLabel, Component: componentID, Text: someText(label)})
}

// UpdateThemeSetting sets a theme slot and rebinds matching definition colours.
func (s *Session) UpdateThemeSetting(ctx context.Context, key design.ThemeKey, value string) error {
	return s.Apply(ctx, UpdateTheme(key, value))
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range sortedKeys(fields) {
		args = append(args, k, fields[k])
	}
	return args
}
