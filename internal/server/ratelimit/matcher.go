package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves a request path and method to an endpoint limit.
// Returns nil when no configured endpoint matches. Paths ending with "/"
// prefix-match, so "/api/export/" covers "/api/export/{id}/{format}".
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never metered.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
