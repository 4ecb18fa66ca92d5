package editor

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/daviddossett/targeted-selection/internal/config"
	"github.com/daviddossett/targeted-selection/internal/domain/design"
	apperrors "github.com/daviddossett/targeted-selection/pkg/errors"
)

// FromScript converts decoded script operations into session operations.
func FromScript(script *config.ScriptFile) ([]Operation, error) {
	if script == nil {
		return nil, nil
	}
	ops := make([]Operation, 0, len(script.Ops))
	for i, raw := range script.Ops {
		op := Operation{
			Kind:      OperationKind(raw.Op),
			Instance:  raw.Instance,
			Component: raw.Component,
			Key:       raw.Key,
		}
		switch op.Kind {
		case OpSetProperty, OpUpdateComponentProperty:
			if raw.Value != nil {
				value, err := design.PropertyFromAny(raw.Value)
				if err != nil {
					return nil, apperrors.NewScriptError(i, raw.Op, err)
				}
				op.Property = mo.Some(value)
			}
		default:
			if text, ok := raw.Value.(string); ok {
				op.Text = mo.Some(text)
			}
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ApplyScript converts and applies a script atomically.
func (s *Session) ApplyScript(ctx context.Context, script *config.ScriptFile) (int, error) {
	ops, err := FromScript(script)
	if err != nil {
		return 0, err
	}
	return s.ApplyAll(ctx, ops)
}

func sortedKeys(fields map[string]interface{}) []string {
	keys := lo.Keys(fields)
	sort.Strings(keys)
	return keys
}
