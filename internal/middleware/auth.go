package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/auth"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "calendario_session"

// RequireAuth validates the session cookie and populates AuthContext.
// Unauthenticated requests get a JSON 401.
func RequireAuth(sessions store.SessionStore, users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			sess, err := sessions.GetByToken(r.Context(), cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.GetByID(r.Context(), sess.UserID)
			if err != nil || !user.Active {
				unauthorized(w)
				return
			}

			ac := auth.AuthContext{
				UserID: user.ID,
				Email:  user.Email,
				Role:   user.Role,
			}

			ctx := auth.WithAuth(r.Context(), ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin checks that the authenticated user has the admin role.
// Unauthenticated requests get 401, non-admins 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := auth.FromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		if ac.Role != "admin" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "admin role required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
}
