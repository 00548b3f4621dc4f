package middleware

import (
	"net/http"

	"github.com/aselbek/bazar-backend/pkg/i18n"
	"github.com/aselbek/bazar-backend/pkg/logger"
)

// Locale negotiates the response language from the Accept-Language header and
// stores the winner in the request context. Runs on every request so public
// catalog endpoints localize without authentication.
func Locale(matcher *i18n.Matcher, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if matcher == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := matcher.Negotiate(r.Header.Get("Accept-Language"))

			ctx := WithLocale(r.Context(), locale)
			if logg != nil {
				ctx = logg.WithLocale(ctx, locale)
			}
			w.Header().Set("Content-Language", locale)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
