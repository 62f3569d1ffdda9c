package zaf

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotConnected is returned by the disconnected client for every call.
var ErrNotConnected = errors.New("zaf: client not connected")

// Disconnected returns a Client with no transport behind it. The server boots
// with it when no framework binding is configured; every fetch fails and the
// API stays in its waiting state (204 ticket, 503 config).
func Disconnected() Client {
	return disconnectedClient{}
}

type disconnectedClient struct{}

func (disconnectedClient) Get(context.Context, ...string) (Data, error) {
	return nil, ErrNotConnected
}

func (disconnectedClient) On(string, func(json.RawMessage)) {}

func (disconnectedClient) Metadata(context.Context) (Metadata, error) {
	return Metadata{}, ErrNotConnected
}

func (disconnectedClient) Context(context.Context) (AppContext, error) {
	return AppContext{}, ErrNotConnected
}

func (disconnectedClient) Invoke(context.Context, string, any) error {
	return ErrNotConnected
}
