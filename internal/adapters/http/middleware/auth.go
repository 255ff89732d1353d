package middleware

import (
	"net/http"
	"strings"

	"inkwell/internal/adapters/http/response"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

const msgNotLoggedIn = "You are not logged in"

// AuthedHandlerFunc receives the identity proven by the request's token.
type AuthedHandlerFunc func(w http.ResponseWriter, r *http.Request, identity domain.Identity)

type Auth struct {
	authn  domain.Authenticator
	writer response.ResponseWriter
	log    logger.Logger
}

func NewAuth(authn domain.Authenticator, writer response.ResponseWriter, log logger.Logger) *Auth {
	return &Auth{
		authn:  authn,
		writer: writer,
		log:    log,
	}
}

// Require verifies the authorization header and only then calls next.
func (a *Auth) Require(next AuthedHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := a.authn.Authenticate(ExtractToken(r))
		if err != nil {
			a.log.Debug("auth: rejected request", "path", r.URL.Path, "error", err)
			a.writer.Write(w, http.StatusForbidden, &response.Response{
				Message: msgNotLoggedIn,
			})
			return
		}

		next(w, r, identity)
	})
}

// ExtractToken returns the authorization header value, without an optional
// "Bearer " prefix.
func ExtractToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
