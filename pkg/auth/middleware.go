package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/koquifi/lottoframe/pkg/utils"
)

type ContextKey string

const FIDKey ContextKey = "fid"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), FIDKey, claims.FID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware gates a route group to the configured administrator FIDs.
// It must run after AuthMiddleware.
func AdminMiddleware(adminFIDs []string) func(http.Handler) http.Handler {
	admins := make(map[string]struct{}, len(adminFIDs))
	for _, fid := range adminFIDs {
		admins[fid] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fid, ok := r.Context().Value(FIDKey).(string)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if _, ok := admins[fid]; !ok {
				utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
