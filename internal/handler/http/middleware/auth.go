package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/wagedesk/payroll-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a verified access token carrying
// an industry_id claim. Token minting lives in the back-office app; this
// service only verifies.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}
			if industryID, ok := claims["industry_id"].(string); !ok || industryID == "" {
				response.Unauthorized(w, "Token is missing industry scope")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
