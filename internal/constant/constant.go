package constant

// Constant package provides constants used throughout the application.

type ctxKey string

const (
	CorrelationIDKey ctxKey = "CorrelationID"
)

// Gin context keys set by middleware for downstream handlers.
const (
	SessionClaimsKey = "sessionClaims"
	UserIDKey        = "userId"
	UserEmailKey     = "userEmail"
)
