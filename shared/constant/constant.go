package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserRole contextKey = "user_role"
)

const (
	RoleAdmin        = "Admin"
	RoleReceptionist = "Receptionist"
	RoleManager      = "Manager"
)

const (
	// AuthCookieName is the cookie carrying the signed session token.
	AuthCookieName = "authtoken"
	AuthCookiePath = "/"
)

const (
	ActorGuest  = "guest"
	ActorSignup = "signup"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamUserID    = "userId"
	RequestParamBookingID = "bookingId"
	RequestParamHolidayID = "holidayId"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseMessageOK                 = "ok"
	ResponseErrorInternal             = "Internal server error"
	ResponseErrorRequestLimitExceeded = "request limit exceeded"
	ResponseErrorPrepareShutdown      = "server is preparing to shut down"
	ResponseErrorUnhealthy            = "server is unhealthy"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterisk = "*"
	Empty    = ""
)
