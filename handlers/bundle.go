package handlers

// HandlerBundle aggregates the handler groups for route registration.
type HandlerBundle struct {
	Auth     *AuthHandler
	User     *UserHandler
	Audience *AudienceHandler
}
