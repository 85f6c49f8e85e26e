package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"catalog": map[string]any{
			"baseURL":   "https://example.test",
			"tokenFile": "",
		},
		"order": map[string]any{
			"messagingBaseURL": "https://wa.me",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"http": map[string]any{
			"checkoutRateLimit": map[string]any{
				"expiresIn": "3m",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CATALOG_BASEURL", want: "catalog.baseURL"},
		{envKey: "CATALOG_TOKENFILE", want: "catalog.tokenFile"},
		{envKey: "ORDER_MESSAGINGBASEURL", want: "order.messagingBaseURL"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "HTTP_CHECKOUTRATELIMIT_EXPIRESIN", want: "http.checkoutRateLimit.expiresIn"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
