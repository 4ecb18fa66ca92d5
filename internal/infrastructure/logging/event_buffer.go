package logging

import (
	"context"
	"sync"

	"github.com/daviddossett/targeted-selection/internal/ports"
)

const defaultBufferLimit = 256

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

type bufferedEntry struct {
	ctx    context.Context
	level  logLevel
	msg    string
	fields []interface{}
}

// EventBuffer holds log entries emitted while settings are still being read,
// before the level and format of the real logger are known. When full, the
// oldest entry is dropped.
type EventBuffer struct {
	mu      sync.Mutex
	limit   int
	events  []bufferedEntry
	dropped int
}

// NewEventBuffer creates a buffer with the provided capacity.
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{
		limit:  limit,
		events: make([]bufferedEntry, 0, limit),
	}
}

func (b *EventBuffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == b.limit {
		copy(b.events, b.events[1:])
		b.events[len(b.events)-1] = entry
		b.dropped++
		return
	}
	b.events = append(b.events, entry)
}

// Len reports how many entries are waiting.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Flush replays buffered entries in order on delegate and empties the buffer.
// A warning is appended when entries were dropped.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	events := make([]bufferedEntry, len(b.events))
	copy(events, b.events)
	b.events = b.events[:0]
	dropped := b.dropped
	b.dropped = 0
	b.mu.Unlock()

	for _, entry := range events {
		switch entry.level {
		case levelDebug:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case levelWarn:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case levelError:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
	if dropped > 0 {
		delegate.Warn(context.Background(), "startup log buffer overflowed", "dropped", dropped)
	}
}
