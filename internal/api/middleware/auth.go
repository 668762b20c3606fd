package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PH-BookingBot/internal/api/handlers"
)

// TokenAuth проверяет query-параметр token у запросов к админке
func TokenAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("token") != token {
				handlers.RespondUnauthorized(w, "unauthorized - provide ?token=MASTER_PASSWORD")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
