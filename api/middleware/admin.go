package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// RequireAdminToken guards the manual write endpoints. With no token
// configured the endpoints are disabled entirely.
func (mw *Middleware) RequireAdminToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := mw.cfg.Admin.Token
			if token == "" {
				gecho.Forbidden(w,
					gecho.WithMessage("error.admin.disabled"),
					gecho.Send(),
				)
				return
			}

			provided := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				mw.logger.Warn("Rejected admin request with invalid token",
					gecho.Field("ip", mw.getClientIP(r)),
					gecho.Field("path", r.URL.Path),
				)
				gecho.Unauthorized(w,
					gecho.WithMessage("error.admin.invalidToken"),
					gecho.Send(),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
