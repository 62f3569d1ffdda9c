package service

import (
	"context"
	"fmt"
	"log/slog"

	"ticketpilot.app/bridge/common/logger"
	"ticketpilot.app/bridge/internal/domain"
	"ticketpilot.app/bridge/internal/mapper"
	"ticketpilot.app/bridge/internal/zaf"
)

// TicketService fetches the current ticket state through the client
// capability and assembles the canonical ticket.
//
// Fetch returns (nil, nil) when the ticket has no conversation yet: nothing
// is published until there is something to talk about.
type TicketService interface {
	Fetch(ctx context.Context) (*domain.Ticket, error)
}

type ticketService struct {
	client       zaf.Client
	customFields CustomFieldResolver
	logger       *slog.Logger
}

func NewTicketService(client zaf.Client, customFields CustomFieldResolver, logger *slog.Logger) TicketService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ticketService{
		client:       client,
		customFields: customFields,
		logger:       logger,
	}
}

func (s *ticketService) Fetch(ctx context.Context) (*domain.Ticket, error) {
	sc := logger.StartSpan(ctx, "bridge.ticket.fetch")
	defer sc.End()
	ctx = sc.Context()

	appCtx, err := s.client.Context(ctx)
	if err != nil {
		sc.RecordError(err)
		return nil, fmt.Errorf("fetching app context: %w", err)
	}

	data, err := s.client.Get(ctx, zaf.KeyTicket, zaf.KeyRequester)
	if err != nil {
		sc.RecordError(err)
		return nil, fmt.Errorf("fetching ticket data: %w", err)
	}

	var rawTicket zaf.Ticket
	if err := data.Decode(zaf.KeyTicket, &rawTicket); err != nil {
		return nil, fmt.Errorf("ticket payload has unexpected shape: %w", err)
	}
	if err := rawTicket.Validate(); err != nil {
		return nil, err
	}

	if len(rawTicket.Conversation) == 0 {
		return nil, nil
	}

	// A missing or malformed requester is expected-absent data, not an
	// error; the customer identity simply stays null.
	var requester *zaf.User
	if err := data.Decode(zaf.KeyRequester, &requester); err != nil {
		s.logger.DebugContext(ctx, "requester payload absent or malformed", "error", err)
		requester = nil
	}
	if requester != nil && requester.ID == 0 {
		requester = nil
	}

	customFields := s.customFields.Resolve(ctx)
	agent := s.fetchCurrentUser(ctx)

	ticket := mapper.BuildTicket(mapper.TicketParams{
		Ticket:           rawTicket,
		Requester:        requester,
		CustomFields:     customFields,
		Agent:            agent,
		AccountSubdomain: appCtx.Account.Subdomain,
	})

	return &ticket, nil
}

// fetchCurrentUser resolves the operating agent's identity. Failure leaves
// the agent identity null; the pipeline carries on.
func (s *ticketService) fetchCurrentUser(ctx context.Context) *domain.UserInfo {
	data, err := s.client.Get(ctx, zaf.KeyCurrentUser)
	if err != nil {
		s.logger.WarnContext(ctx, "fetching current user failed", "error", err)
		return nil
	}

	var user zaf.User
	if err := data.Decode(zaf.KeyCurrentUser, &user); err != nil {
		s.logger.WarnContext(ctx, "current user payload has unexpected shape", "error", err)
		return nil
	}
	if user.ID == 0 {
		s.logger.WarnContext(ctx, "current user payload is empty")
		return nil
	}

	info := mapper.MapUser(user)
	return &info
}
