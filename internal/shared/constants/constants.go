package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Listing defaults
	DefaultRecentReportsLimit = 6
	DefaultReportListLimit    = 50
	DefaultBlogCategoryLimit  = 10
	DefaultFeaturedBlogLimit  = 5
	DefaultChatMessageLimit   = 100
	DefaultChatSessionLimit   = 100
	DefaultAuditLogLimit      = 100
	DefaultCampaignListLimit  = 50
	MaxListLimit              = 500

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderAPIKey        = "X-API-Key"

	// Context keys
	ContextKeyAdminID   = "admin_id"
	ContextKeyAdminName = "admin_username"
	ContextKeyAdminRole = "admin_role"
	ContextKeyRequestID = "request_id"

	// username submitted to the login endpoint, kept for the audit trail
	ContextKeyLoginUsername = "login_username"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgInvalidData         = "Invalid data"
	ErrMsgInvalidCredentials  = "Invalid credentials or account disabled"
	ErrMsgAdminAuthRequired   = "Admin authentication required"
)
