package service

import (
	"context"
	"fmt"
	"log/slog"

	"ticketpilot.app/bridge/common/logger"
	"ticketpilot.app/bridge/internal/markdown"
	"ticketpilot.app/bridge/internal/zaf"
)

// ReplyService pushes a drafted reply into the ticket editor.
type ReplyService interface {
	Insert(ctx context.Context, text string) error
}

type replyService struct {
	client zaf.Client
	logger *slog.Logger
}

func NewReplyService(client zaf.Client, logger *slog.Logger) ReplyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &replyService{client: client, logger: logger}
}

func (s *replyService) Insert(ctx context.Context, text string) error {
	sc := logger.StartSpan(ctx, "bridge.reply.insert")
	defer sc.End()
	ctx = sc.Context()

	normalized := markdown.NormalizeNewlines(text)

	var formatted string
	if rendered, err := markdown.ToHTML(normalized); err == nil {
		formatted = markdown.SanitizeForEditor(rendered)
	} else {
		s.logger.WarnContext(ctx, "markdown rendering failed, inserting plain text", "error", err)
		formatted = markdown.FallbackFormat(normalized)
	}
	s.logger.DebugContext(ctx, "reply rendered", "preview", logger.Truncate(formatted, 200))

	if err := s.client.Invoke(ctx, zaf.ActionEditorInsert, formatted); err != nil {
		sc.RecordError(err)
		return fmt.Errorf("inserting reply into editor: %w", err)
	}
	return nil
}
