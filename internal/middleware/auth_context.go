package middleware

import (
	"net/http"
)

// SessionChecker es lo único que el middleware necesita del store de sesión.
type SessionChecker interface {
	IsLoggedIn() bool
}

// RequireLogin corta con 401 si no hay sesión activa. Los stores no validan
// login para lecturas/escrituras de historia, así que el gate vive acá.
func RequireLogin(s SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s == nil || !s.IsLoggedIn() {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
