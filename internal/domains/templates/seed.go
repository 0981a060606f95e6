package templates

// Seed returns the built-in template records served by the mock.
func Seed() []Template {
	return []Template{
		{
			ID:       "tmpl_001",
			Code:     "welcome_notification",
			Type:     "push",
			Language: "en",
			Version:  1,
			Content: Content{
				Title: "Welcome {{name}}!",
				Body:  "Hi {{name}}, thanks for joining us!",
			},
			Variables: []string{"name"},
		},
		{
			ID:       "tmpl_002",
			Code:     "TEST_TEMPLATE",
			Type:     "push",
			Language: "en",
			Version:  1,
			Content: Content{
				Title: "Test Notification",
				Body:  "This is a test: {{test_key}}",
			},
			Variables: []string{"test_key"},
		},
		{
			ID:       "tmpl_003",
			Code:     "order_shipped",
			Type:     "push",
			Language: "en",
			Version:  1,
			Content: Content{
				Title: "Order Shipped!",
				Body:  "Your order {{order_id}} has been shipped. Track it here: {{tracking_link}}",
			},
			Variables: []string{"order_id", "tracking_link"},
		},
	}
}
