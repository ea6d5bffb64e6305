package constants

import "time"

// Session handling
const (
	// SessionHeader carries the opaque session token on every protected request.
	SessionHeader = "X-Session-ID"

	// SessionTTL is the absolute session lifetime. Expiry is not sliding.
	SessionTTL = 7 * 24 * time.Hour

	ContextKeyUserID = "user_id"
)

// Validation
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Chatbot
const (
	// PendingTaskDisplayLimit caps how many pending tasks the intent
	// responder enumerates before appending a "...y N más" suffix.
	PendingTaskDisplayLimit = 5
)
