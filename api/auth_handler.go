package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasavi-eco-club/club-site-backend/auth"
	"github.com/vasavi-eco-club/club-site-backend/errs"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	credentials auth.Credentials
	tokens      auth.Tokens
}

func newAuthHandler(credentials auth.Credentials, tokens auth.Tokens) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		credentials: credentials,
		tokens:      tokens,
	}
}

// login authenticates the admin credentials and returns a bearer token
// valid for 24 hours. Unknown username and wrong password produce the same
// response.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if body.Username == "" || body.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Username and password are required"))
			return
		}

		user, err := h.credentials.Authenticate(body.Username, body.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}

		token, err := h.tokens.Issue(user)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign token")
			h.responder.WriteError(w, errs.NewInternalError("Internal server error"))
			return
		}

		h.responder.WriteSuccess(w, loginData{
			Token: token,
			User: userInfo{
				ID:       user.ID.String(),
				Username: user.Username,
				Email:    user.Email,
			},
		}, "Login successful")
	}
}

// verify reports the identity attached by the auth middleware; reaching it
// at all means the token checked out.
func (h authHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ctxGetPrincipal(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid token. Access denied."))
			return
		}

		h.responder.WriteSuccess(w, map[string]userInfo{
			"user": {ID: claims.ID, Username: claims.Username},
		}, "Token is valid")
	}
}
