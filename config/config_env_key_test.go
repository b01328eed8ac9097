package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "bazaar",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		rawKey string
		want   string
	}{
		{"POSTGRES_SSLMODE", "postgres.sslMode"},
		{"POSTGRES_DBNAME", "postgres.dbName"},
		{"SECRETKEY_ACCESS", "secretKey.access"},
		// Unknown segments fall back to plain lowercase.
		{"POSTGRES_UNKNOWN", "postgres.unknown"},
		{"HTTP_PORT", "http.port"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing), tt.rawKey)
	}
}

func TestNormalizeToken_StripsSeparatorsAndCase(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "resettokenttl", normalizeToken("resetTokenTtl"))
	assert.Equal(t, "maxrequestbodysize", normalizeToken("max-request_body.size"))
}
