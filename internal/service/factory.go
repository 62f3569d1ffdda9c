package service

import (
	"log/slog"

	"ticketpilot.app/bridge/core/config"
	"ticketpilot.app/bridge/internal/zaf"
)

// Services bundles the service layer for handler wiring.
type Services struct {
	Tickets      TicketService
	Replies      ReplyService
	CustomFields CustomFieldResolver
	Session      *Session
}

type ServicesConfig struct {
	Client zaf.Client
	Config config.Config
	Logger *slog.Logger
}

func NewServices(cfg ServicesConfig) *Services {
	customFields := NewCustomFieldResolver(cfg.Client, cfg.Logger)
	return &Services{
		Tickets:      NewTicketService(cfg.Client, customFields, cfg.Logger),
		Replies:      NewReplyService(cfg.Client, cfg.Logger),
		CustomFields: customFields,
		Session:      NewSession(cfg.Client, cfg.Config, cfg.Logger),
	}
}
