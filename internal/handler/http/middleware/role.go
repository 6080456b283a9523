package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/user"
	"github.com/workstream-hr/workforce-backend-go/internal/handler/http/response"
)

func roleFromRequest(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}

	return user.Role(roleStr), true
}

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireHR requires the HR or admin role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || (role != user.RoleHR && role != user.RoleAdmin) {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires the manager, HR or admin role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromRequest(r)
		if !ok || (role != user.RoleManager && role != user.RoleHR && role != user.RoleAdmin) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
