package ports

import "context"

const (
	// EventDocumentLoaded is emitted when a session adopts a new document.
	EventDocumentLoaded = "document.loaded"
	// EventInstanceStyleChanged is emitted after an instance style override is set or cleared.
	EventInstanceStyleChanged = "instance.style.changed"
	// EventInstancePropertyChanged is emitted after an instance property override is set or cleared.
	EventInstancePropertyChanged = "instance.property.changed"
	// EventOverridesReset is emitted when an instance's overrides are discarded.
	EventOverridesReset = "overrides.reset"
	// EventOverridesPushed is emitted when an instance's overrides are promoted to its definition.
	EventOverridesPushed = "overrides.pushed"
	// EventComponentUpdated is emitted when a definition default or label changes.
	EventComponentUpdated = "component.updated"
	// EventThemeUpdated is emitted after a theme slot changes, including rebound definitions.
	EventThemeUpdated = "theme.updated"
	// EventMutationFailed is emitted when a mutation is rejected and the document is left untouched.
	EventMutationFailed = "mutation.failed"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that subscribers can use
// for logging or UI refreshes.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// returned, not panicked, so remaining subscribers still run.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
