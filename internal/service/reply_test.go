package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ticketpilot.app/bridge/internal/service"
	"ticketpilot.app/bridge/internal/zaf"
)

var _ = Describe("ReplyService", func() {
	var (
		client  *fakeClient
		replies service.ReplyService
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = newFakeClient()
		replies = service.NewReplyService(client, nil)
	})

	It("renders markdown and inserts sanitized html into the editor", func() {
		Expect(replies.Insert(ctx, "Hello **world**\n\nSecond paragraph")).To(Succeed())

		Expect(client.invoked).To(HaveLen(1))
		Expect(client.invoked[0].action).To(Equal(zaf.ActionEditorInsert))

		html, ok := client.invoked[0].payload.(string)
		Expect(ok).To(BeTrue())
		Expect(html).To(ContainSubstring("<strong>world</strong>"))
		Expect(html).To(ContainSubstring("</p><br><p>"))
		Expect(html).NotTo(ContainSubstring("\n"))
	})

	It("normalizes CRLF input before rendering", func() {
		Expect(replies.Insert(ctx, "line one\r\nline two")).To(Succeed())

		html := client.invoked[0].payload.(string)
		Expect(html).To(ContainSubstring("<br>"))
		Expect(html).NotTo(ContainSubstring("\r"))
	})

	It("propagates editor insert failures", func() {
		client.invokeFn = func(context.Context, string, any) error {
			return errors.New("editor rejected")
		}
		Expect(replies.Insert(ctx, "text")).NotTo(Succeed())
	})
})
