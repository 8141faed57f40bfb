package common

const (
	// AuthCookieName is the cookie that carries the bearer token for web
	// clients. A cookie always wins over the Authorization header when both
	// are present.
	AuthCookieName = "auth_token"

	// AuthHeaderName is the fallback credential transport for API clients,
	// in the form "Bearer <token>".
	AuthHeaderName = "Authorization"

	// BearerPrefix is the scheme prefix expected in AuthHeaderName.
	BearerPrefix = "Bearer "
)
