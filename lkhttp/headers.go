package lkhttp

// DefaultHeaders returns the security and CORS headers applied to every
// response. Handlers can override individual keys via Result.Headers.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                     "application/json",
		"Content-Security-Policy":          "default-src 'self'",
		"Strict-Transport-Security":        "max-age=31536000; includeSubDomains; preload",
		"X-Content-Type-Options":           "nosniff",
		"X-Frame-Options":                  "DENY",
		"X-XSS-Protection":                 "1; mode=block",
		"Referrer-Policy":                  "no-referrer",
		"Permissions-Policy":               "geolocation=(), microphone=()",
		"Access-Control-Allow-Methods":     "GET,POST,OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type, Authorization",
		"Access-Control-Allow-Credentials": "true",
	}
}

// mergeHeaders lays overrides over the defaults; override values win on
// key collision.
func mergeHeaders(overrides map[string]string) map[string]string {
	merged := DefaultHeaders()
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
