package middleware

import (
	"net/http"
)

// APIKeyHeader is the request header holding the API key.
const APIKeyHeader = "X-API-KEY"

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	apiKeys map[string]struct{}
}

// NewAuthConfig creates an AuthConfig. Blank keys are ignored; with no keys
// left authentication is disabled.
func NewAuthConfig(apiKeys []string) AuthConfig {
	keys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys[k] = struct{}{}
		}
	}
	return AuthConfig{apiKeys: keys}
}

// Enabled returns true if authentication is enabled.
func (c AuthConfig) Enabled() bool { return len(c.apiKeys) > 0 }

// APIKey returns a middleware that requires X-API-KEY header authentication.
func APIKey(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				WriteError(w, r, NewAuthenticationError("X-API-KEY header is required"), nil)
				return
			}
			if _, ok := config.apiKeys[key]; !ok {
				WriteError(w, r, NewAuthenticationError("invalid API key"), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// APIKeyAuth creates auth middleware from a slice of API keys.
func APIKeyAuth(apiKeys []string) func(http.Handler) http.Handler {
	return APIKey(NewAuthConfig(apiKeys))
}
