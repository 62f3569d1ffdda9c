package mapper_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ticketpilot.app/bridge/internal/domain"
	"ticketpilot.app/bridge/internal/mapper"
	"ticketpilot.app/bridge/internal/zaf"
)

func entry(authorID *int64, role, channel, content, contentType, ts string) zaf.ConversationEntry {
	return zaf.ConversationEntry{
		Author:    zaf.Author{ID: authorID, Role: role},
		Channel:   zaf.Channel{Name: channel},
		Message:   zaf.MessageBody{Content: content, ContentType: contentType},
		Timestamp: ts,
	}
}

func authorID(id int64) *int64 { return &id }

var _ = Describe("MapEntry", func() {
	It("drops entries without content", func() {
		_, ok := mapper.MapEntry(entry(authorID(1), "agent", "web", "", "text/plain", "2026-01-01T00:00:00Z"))
		Expect(ok).To(BeFalse())
	})

	It("keeps plain text as-is", func() {
		msg, ok := mapper.MapEntry(entry(authorID(1), "agent", "web", "hello there", "text/plain", "2026-01-01T00:00:00Z"))
		Expect(ok).To(BeTrue())
		Expect(msg.Text).To(Equal("hello there"))
	})

	It("converts email channel bodies to markdown", func() {
		msg, ok := mapper.MapEntry(entry(authorID(1), "end-user", "email", "<p>Hi <strong>there</strong></p>", "", "2026-01-01T00:00:00Z"))
		Expect(ok).To(BeTrue())
		Expect(msg.Text).NotTo(ContainSubstring("<p>"))
		Expect(msg.Text).To(ContainSubstring("**there**"))
	})

	It("converts text/html bodies regardless of channel", func() {
		msg, ok := mapper.MapEntry(entry(authorID(1), "agent", "web", "<em>soon</em>", "text/html", "2026-01-01T00:00:00Z"))
		Expect(ok).To(BeTrue())
		Expect(msg.Text).NotTo(ContainSubstring("<em>"))
	})

	DescribeTable("role classification",
		func(role string, want domain.MessageType) {
			msg, ok := mapper.MapEntry(entry(authorID(1), role, "web", "x", "text/plain", "2026-01-01T00:00:00Z"))
			Expect(ok).To(BeTrue())
			Expect(msg.Type).To(Equal(want))
		},
		Entry("end-user", "end-user", domain.MessageTypeUser),
		Entry("agent", "agent", domain.MessageTypeHumanAgent),
		Entry("admin", "admin", domain.MessageTypeHumanAgent),
		Entry("uppercase agent", "AGENT", domain.MessageTypeHumanAgent),
		Entry("mixed-case end-user", "End-User", domain.MessageTypeUser),
		Entry("unknown role", "system", domain.MessageTypeHumanAgent),
		Entry("empty role", "", domain.MessageTypeHumanAgent),
	)

	It("builds the id from author and timestamp", func() {
		msg, _ := mapper.MapEntry(entry(authorID(42), "agent", "web", "x", "text/plain", "2026-01-01T00:00:00Z"))
		Expect(msg.ID).To(Equal("42-2026-01-01T00:00:00Z"))
		Expect(msg.SenderID).To(Equal("42"))
	})

	It("defaults missing authors to -1 and unknown sender", func() {
		msg, _ := mapper.MapEntry(entry(nil, "agent", "web", "x", "text/plain", "2026-01-01T00:00:00Z"))
		Expect(msg.ID).To(Equal("-1-2026-01-01T00:00:00Z"))
		Expect(msg.SenderID).To(Equal("unknown"))
	})

	It("parses RFC3339 timestamps into created and updated", func() {
		msg, _ := mapper.MapEntry(entry(authorID(1), "agent", "web", "x", "text/plain", "2026-03-04T05:06:07Z"))
		want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
		Expect(msg.CreatedAt).To(BeTemporally("==", want))
		Expect(msg.UpdatedAt).To(BeTemporally("==", want))
	})

	It("keeps the message when the timestamp is unparseable", func() {
		msg, ok := mapper.MapEntry(entry(authorID(1), "agent", "web", "x", "text/plain", "not-a-time"))
		Expect(ok).To(BeTrue())
		Expect(msg.CreatedAt.IsZero()).To(BeTrue())
		Expect(msg.ID).To(Equal("1-not-a-time"))
	})
})
