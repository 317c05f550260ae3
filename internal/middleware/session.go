package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const sessionKey ctxKey = "session_id"

const (
	SessionCookie = "petshop_session"
	SessionHeader = "X-Session-ID"
)

// SessionContext resuelve el id de sesión de la visita:
// - Header X-Session-ID (clientes sin cookies, tests)
// - Cookie petshop_session
// - Si no viene ninguno (o no es un UUID) => genera uno nuevo y setea la cookie.
// El id se expone al handler vía GetSessionID y se devuelve en X-Session-ID.
func SessionContext(cookieTTL time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionHeader))
			if !validID(id) {
				id = ""
				if c, err := r.Cookie(SessionCookie); err == nil && validID(strings.TrimSpace(c.Value)) {
					id = strings.TrimSpace(c.Value)
				}
			}

			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set(SessionHeader, id)
			ctx := context.WithValue(r.Context(), sessionKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSessionID(ctx context.Context) string {
	v, _ := ctx.Value(sessionKey).(string)
	return v
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
