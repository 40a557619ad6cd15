package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	eventHandler   eventHandler
	memberHandler  memberHandler
	projectHandler projectHandler
	galleryHandler galleryHandler
	metricHandler  metricHandler
}

// loginData is the payload returned by a successful login.
type loginData struct {
	Token string    `json:"token"`
	User  userInfo  `json:"user"`
}

// userInfo is the client-visible slice of the admin principal.
type userInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
