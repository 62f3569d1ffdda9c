package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"ticketpilot.app/bridge/internal/zaf"
)

const customFieldPrefix = "custom_field_"

// CustomFieldResolver builds a label→value mapping of the ticket's enabled
// text custom fields. A nil result means "no value": either no field passed
// the filter or resolution failed, both expected non-fatal outcomes.
type CustomFieldResolver interface {
	Resolve(ctx context.Context) map[string]string
}

type customFieldResolver struct {
	client zaf.Client
	logger *slog.Logger
}

func NewCustomFieldResolver(client zaf.Client, logger *slog.Logger) CustomFieldResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &customFieldResolver{client: client, logger: logger}
}

func (r *customFieldResolver) Resolve(ctx context.Context) map[string]string {
	data, err := r.client.Get(ctx, zaf.KeyTicketFields)
	if err != nil {
		r.logger.WarnContext(ctx, "fetching ticket field metadata failed", "error", err)
		return nil
	}

	var resp zaf.TicketFieldsResponse
	if err := data.Decode(zaf.KeyTicketFields, &resp); err != nil {
		r.logger.WarnContext(ctx, "ticket field metadata has unexpected shape", "error", err)
		return nil
	}

	fields := make([]zaf.TicketField, 0, len(resp.TicketFields))
	for _, field := range resp.TicketFields {
		if strings.HasPrefix(field.Name, customFieldPrefix) && field.Type == "text" && field.IsEnabled {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	// Fan out one value fetch per field; completions are unordered. The
	// join is all-or-nothing: a single failed fetch aborts the whole
	// resolution.
	values := make([]string, len(fields))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, field := range fields {
		group.Go(func() error {
			key := zaf.CustomFieldKey(field.Name)
			fieldData, err := r.client.Get(groupCtx, key)
			if err != nil {
				return err
			}
			value, err := fieldData.DecodeString(key)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		r.logger.WarnContext(ctx, "custom field resolution aborted", "error", err, "fields", len(fields))
		return nil
	}

	resolved := make(map[string]string, len(fields))
	for i, field := range fields {
		resolved[field.Label] = values[i]
	}
	if len(resolved) == 0 {
		return nil
	}
	return resolved
}
