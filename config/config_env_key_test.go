package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "recipebox",
			"log": map[string]any{
				"level": "info",
			},
		},
		"database": map[string]any{
			"url":          "",
			"replicaUrls":  []any{},
			"maxOpenConns": 25,
		},
		"jwt": map[string]any{
			"secret": "",
		},
		"spoonacular": map[string]any{
			"baseUrl": "",
			"apiKey":  "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_URL", want: "database.url"},
		{envKey: "DATABASE_REPLICAURLS", want: "database.replicaUrls"},
		{envKey: "DATABASE_REPLICA_URLS", want: "database.replicaUrls"},
		{envKey: "DATABASE_MAX_OPEN_CONNS", want: "database.maxOpenConns"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "SPOONACULAR_API_KEY", want: "spoonacular.apiKey"},
		{envKey: "SPOONACULAR_BASEURL", want: "spoonacular.baseUrl"},
		{envKey: "ENV_SERVICE_NAME", want: "env.serviceName"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
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
