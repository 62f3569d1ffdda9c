package zaf

import (
	"context"
	"encoding/json"
	"fmt"
)

// Well-known Get keys.
const (
	KeyTicket       = "ticket"
	KeyRequester    = "ticket.requester"
	KeyCurrentUser  = "currentUser"
	KeyTicketFields = "ticketFields"
)

// Events the bridge subscribes to.
const (
	EventAppRegistered       = "app.registered"
	EventConversationChanged = "ticket.conversation.changed"
)

// Invoke actions.
const (
	ActionResize       = "resize"
	ActionEditorInsert = "ticket.editor.insert"
)

// CustomFieldKey builds the Get key for a single custom field value,
// e.g. "ticket.customField:custom_field_123".
func CustomFieldKey(name string) string {
	return "ticket.customField:" + name
}

// Client is the ticketing client capability: the subset of the Zendesk Apps
// Framework client the bridge consumes. The concrete implementation (the
// postMessage transport into the host page) lives outside this module; tests
// supply fakes.
type Client interface {
	// Get fetches one or more data paths. The result is keyed by the
	// requested path, matching the Apps Framework response shape.
	Get(ctx context.Context, keys ...string) (Data, error)

	// On registers a handler for a framework event. Handlers receive the
	// raw event payload; registration is not idempotent, callers guard
	// against double subscription.
	On(event string, handler func(payload json.RawMessage))

	// Metadata returns the app installation metadata (settings included).
	Metadata(ctx context.Context) (Metadata, error)

	// Context returns the host page context (account subdomain et al).
	Context(ctx context.Context) (AppContext, error)

	// Invoke performs a framework action such as resize or editor insert.
	Invoke(ctx context.Context, action string, payload any) error
}

// Data is a Get result: raw JSON keyed by requested path. Values are decoded
// lazily so each caller can validate the shape it needs at the boundary.
type Data map[string]json.RawMessage

// Decode unmarshals the value stored under key into out. A missing key or a
// shape mismatch is an error; the framework responds with loosely-typed JSON
// and this is where the bridge checks it.
func (d Data) Decode(key string, out any) error {
	raw, ok := d[key]
	if !ok {
		return fmt.Errorf("key %q missing from client response", key)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

// DecodeString reads a plain string value stored under key, as returned for
// ticket.customField:{name} lookups.
func (d Data) DecodeString(key string) (string, error) {
	var s string
	if err := d.Decode(key, &s); err != nil {
		return "", err
	}
	return s, nil
}
