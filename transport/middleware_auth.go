package transport

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	sessionapp "github.com/muhammadheryan/watch-storefront/application/session"
	"github.com/muhammadheryan/watch-storefront/cmd/config"
	utilsContext "github.com/muhammadheryan/watch-storefront/utils/context"
)

// SessionMiddleware restores the session named by the cookie on every
// request. Protected paths without a signed-in session are sent to the
// sign-in page before any handler runs.
func SessionMiddleware(cfg *config.Config, sessionApp sessionapp.SessionApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string
			if c, err := r.Cookie(cfg.Auth.CookieName); err == nil {
				sid = c.Value
			}

			sess := sessionApp.RestoreSession(r.Context(), sid)
			sess.ID = sid

			if isProtectedPath(r.URL.Path) && !sess.IsAuthenticated {
				if sid != "" {
					clearSessionCookie(w, cfg)
				}
				redirectToSignIn(w, r, cfg)
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithSession(r.Context(), sess)))
		})
	}
}

// isProtectedPath defines which endpoints need a signed-in session
func isProtectedPath(path string) bool {
	return strings.HasPrefix(path, "/user/") || path == "/user" || strings.HasPrefix(path, "/admin/")
}

func redirectToSignIn(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	target := cfg.Auth.SignInPath
	if r.Method == http.MethodGet {
		target += "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func setSessionCookie(w http.ResponseWriter, cfg *config.Config, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(cfg.Auth.SessionExpTime.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		// Lax keeps the cookie on the top-level return from the payment provider
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
