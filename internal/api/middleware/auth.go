package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/mlevasseur/salon-booking-service/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgInvalidAdminToken = "недействительный токен администратора"

// AdminAuth проверяет заголовок X-Admin-Token на всех админских маршрутах.
// Сравнение токенов выполняется за постоянное время.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidAdminToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
