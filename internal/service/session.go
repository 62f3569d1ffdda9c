package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"ticketpilot.app/bridge/common/id"
	"ticketpilot.app/bridge/common/logger"
	"ticketpilot.app/bridge/core/config"
	"ticketpilot.app/bridge/internal/domain"
	"ticketpilot.app/bridge/internal/zaf"
)

type resizePayload struct {
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Session owns the lifecycle of one sidebar instance: frame sizing, event
// subscriptions, installation metadata and the current ticket snapshot.
//
// Init is guarded: a second call is a no-op, so a re-rendered page cannot
// double-subscribe event handlers.
type Session struct {
	client zaf.Client
	cfg    config.Config
	logger *slog.Logger

	id          int64
	initialized atomic.Bool

	mu       sync.RWMutex
	ticket   *domain.Ticket
	settings *zaf.Settings
}

func NewSession(client zaf.Client, cfg config.Config, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	sessionID := id.New()
	log = log.With("session_id", sessionID)
	return &Session{
		client: client,
		cfg:    cfg,
		logger: log,
		id:     sessionID,
	}
}

// ID returns the snowflake assigned to this session at construction.
func (s *Session) ID() int64 {
	return s.id
}

// Init sizes the frame, subscribes to the framework events that drive ticket
// refreshes and loads installation metadata. Event subscription never depends
// on the metadata outcome: a failed or invalid metadata fetch is logged, the
// settings stay unset and the config endpoint keeps reporting its waiting
// state. Calling Init again does nothing.
func (s *Session) Init(ctx context.Context, tickets TicketService) {
	if !s.initialized.CompareAndSwap(false, true) {
		s.logger.DebugContext(ctx, "session already initialized, ignoring")
		return
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SessionID: logger.Ptr(s.id),
		Component: "bridge.service.session",
	})

	if err := s.client.Invoke(ctx, zaf.ActionResize, resizePayload{
		Width:  s.cfg.Embed.FrameWidth,
		Height: s.cfg.Embed.FrameHeight,
	}); err != nil {
		s.logger.WarnContext(ctx, "resizing frame failed", "error", err)
	}

	s.client.On(zaf.EventAppRegistered, func(json.RawMessage) {
		eventCtx := logger.WithLogFields(context.Background(), logger.LogFields{
			SessionID: logger.Ptr(s.id),
			EventName: logger.Ptr(zaf.EventAppRegistered),
			Component: "bridge.service.session",
		})
		// Registration fires slightly before ticket data is readable,
		// so the first fetch waits out the configured delay.
		go func() {
			if s.Settings() == nil {
				s.loadSettings(eventCtx)
			}
			time.Sleep(s.cfg.Session.RegisteredFetchDelay)
			s.Refresh(eventCtx, tickets)
		}()
	})

	s.client.On(zaf.EventConversationChanged, func(json.RawMessage) {
		eventCtx := logger.WithLogFields(context.Background(), logger.LogFields{
			SessionID: logger.Ptr(s.id),
			EventName: logger.Ptr(zaf.EventConversationChanged),
			Component: "bridge.service.session",
		})
		go s.Refresh(eventCtx, tickets)
	})

	s.loadSettings(ctx)

	s.logger.InfoContext(ctx, "session initialized")
}

// loadSettings fetches and validates installation metadata. Failures leave
// the settings unset; the next app.registered event retries.
func (s *Session) loadSettings(ctx context.Context) {
	meta, err := s.client.Metadata(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "loading installation metadata failed", "error", err)
		return
	}
	if err := meta.Validate(); err != nil {
		s.logger.WarnContext(ctx, "installation metadata invalid", "error", err)
		return
	}

	s.mu.Lock()
	settings := meta.Settings
	s.settings = &settings
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "installation metadata loaded",
		"app", meta.Name,
		"installation_id", meta.InstallationID,
	)
}

// Refresh re-fetches the ticket and replaces the session snapshot wholesale.
// On fetch failure the previous snapshot stays in place.
func (s *Session) Refresh(ctx context.Context, tickets TicketService) {
	sc := logger.StartSpan(ctx, "bridge.session.refresh")
	defer sc.End()
	ctx = sc.Context()

	ticket, err := tickets.Fetch(ctx)
	if err != nil {
		sc.RecordError(err)
		s.logger.ErrorContext(ctx, "ticket refresh failed", "error", err)
		return
	}
	if ticket == nil {
		s.logger.DebugContext(ctx, "ticket has no conversation yet, nothing to publish")
		return
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{TicketID: logger.Ptr(ticket.ID)})

	s.mu.Lock()
	s.ticket = ticket
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "ticket snapshot replaced",
		"ticket_id", ticket.ID,
		"messages", len(ticket.Messages),
	)
}

// Ticket returns the current snapshot, or nil while the session is still
// waiting for the first conversation.
func (s *Session) Ticket() *domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticket
}

// Settings returns the installation settings, or nil until metadata has
// loaded.
func (s *Session) Settings() *zaf.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}
