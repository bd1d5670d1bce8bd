package web

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/JonMunkholm/csvview/internal/core"
	"github.com/JonMunkholm/csvview/internal/logging"
)

type sessionKey struct{}

// sessions makes sure every request carries a session id, issuing a fresh
// cookie when the browser sent none or an invalid one. Stored CSV text is
// scoped to the session, the way browser storage is scoped to one origin.
func (s *Server) sessions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionFromCookie(r, s.cfg.Security.SessionCookieName)
		if !ok {
			id = uuid.New()
			http.SetCookie(w, &http.Cookie{
				Name:     s.cfg.Security.SessionCookieName,
				Value:    id.String(),
				Path:     "/",
				MaxAge:   int(s.cfg.Security.SessionMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   s.cfg.Security.SessionCookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, id)
		ctx = logging.ContextWith(ctx, "session", id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromCookie(r *http.Request, name string) (uuid.UUID, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// sessionID returns the id the sessions middleware attached to ctx.
func sessionID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionKey{}).(uuid.UUID)
	return id, ok
}

// serviceFor returns the service scoped to the request's session.
func (s *Server) serviceFor(r *http.Request) *core.Service {
	id, ok := sessionID(r.Context())
	if !ok {
		return s.service
	}
	return s.service.Scope("session:" + id.String() + ":")
}
