package constant

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	SessionKey   contextKey = "session"
	RequestIDKey contextKey = "request_id"
)
