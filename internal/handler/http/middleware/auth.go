package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-core/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired accepts requests carrying a verified access token. It must run after
// jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, jwt.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if tokenType != "access" || !ok {
			response.HandleError(w, jwt.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
