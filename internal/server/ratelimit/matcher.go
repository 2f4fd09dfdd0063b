package ratelimit

import "strings"

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Paths ending with "/" match as prefixes (so "/interviews/"
// covers "/interviews/{id}/answers"). The health check is always unlimited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	// Exact match first
	for i := range configs {
		ec := &configs[i]
		if ec.Path == path && ec.Method == method {
			return ec
		}
	}

	// Prefix match for paths ending with "/"
	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return nil
}
