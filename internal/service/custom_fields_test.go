package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ticketpilot.app/bridge/internal/service"
	"ticketpilot.app/bridge/internal/zaf"
)

var _ = Describe("CustomFieldResolver", func() {
	var (
		client   *fakeClient
		resolver service.CustomFieldResolver
		ctx      context.Context
	)

	fieldsResponse := func(fields ...zaf.TicketField) zaf.Data {
		return dataFor(map[string]any{
			zaf.KeyTicketFields: zaf.TicketFieldsResponse{TicketFields: fields},
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		client = newFakeClient()
		resolver = service.NewCustomFieldResolver(client, nil)
	})

	It("resolves enabled text custom fields keyed by label", func() {
		client.getFn = func(_ context.Context, keys ...string) (zaf.Data, error) {
			switch keys[0] {
			case zaf.KeyTicketFields:
				return fieldsResponse(
					zaf.TicketField{Name: "custom_field_100", Type: "text", IsEnabled: true, Label: "Order number"},
					zaf.TicketField{Name: "custom_field_200", Type: "text", IsEnabled: true, Label: "Region"},
				), nil
			case zaf.CustomFieldKey("custom_field_100"):
				return dataFor(map[string]any{keys[0]: "A-17"}), nil
			case zaf.CustomFieldKey("custom_field_200"):
				return dataFor(map[string]any{keys[0]: "EU"}), nil
			}
			return nil, errors.New("unexpected key")
		}

		result := resolver.Resolve(ctx)
		Expect(result).To(Equal(map[string]string{
			"Order number": "A-17",
			"Region":       "EU",
		}))
	})

	It("filters out disabled, non-text and non-custom fields", func() {
		client.getFn = func(_ context.Context, keys ...string) (zaf.Data, error) {
			Expect(keys).To(Equal([]string{zaf.KeyTicketFields}))
			return fieldsResponse(
				zaf.TicketField{Name: "custom_field_100", Type: "text", IsEnabled: false, Label: "Disabled"},
				zaf.TicketField{Name: "custom_field_200", Type: "tagger", IsEnabled: true, Label: "Dropdown"},
				zaf.TicketField{Name: "subject", Type: "text", IsEnabled: true, Label: "Subject"},
			), nil
		}

		Expect(resolver.Resolve(ctx)).To(BeNil())
	})

	It("returns nil when fetching the field list fails", func() {
		client.getFn = func(context.Context, ...string) (zaf.Data, error) {
			return nil, errors.New("network down")
		}
		Expect(resolver.Resolve(ctx)).To(BeNil())
	})

	It("returns nil when any single value fetch fails", func() {
		client.getFn = func(_ context.Context, keys ...string) (zaf.Data, error) {
			switch keys[0] {
			case zaf.KeyTicketFields:
				return fieldsResponse(
					zaf.TicketField{Name: "custom_field_100", Type: "text", IsEnabled: true, Label: "Good"},
					zaf.TicketField{Name: "custom_field_200", Type: "text", IsEnabled: true, Label: "Bad"},
				), nil
			case zaf.CustomFieldKey("custom_field_100"):
				return dataFor(map[string]any{keys[0]: "value"}), nil
			}
			return nil, errors.New("field unavailable")
		}

		Expect(resolver.Resolve(ctx)).To(BeNil())
	})

	It("returns nil when the field list has an unexpected shape", func() {
		client.getFn = func(_ context.Context, keys ...string) (zaf.Data, error) {
			return dataFor(map[string]any{zaf.KeyTicketFields: "not an object"}), nil
		}
		Expect(resolver.Resolve(ctx)).To(BeNil())
	})
})
