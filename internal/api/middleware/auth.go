package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/V4U-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
)

type contextKey string

const actorContextKey contextKey = "actor"

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidRole   = "некорректное значение заголовка X-User-Role"
)

// Auth извлекает действующего актора из заголовков запроса и кладет его
// в контекст. Это не аутентификация, а плумбинг идентичности: сервис
// доверяет заголовкам, проверка подлинности вне его зоны ответственности.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		switch role {
		case domain.RoleCustomer, domain.RoleWorker, domain.RoleAdmin:
		case "":
			role = domain.RoleCustomer
		default:
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		actor := domain.Actor{
			ID:   userID,
			Role: role,
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor возвращает актора из контекста запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}
