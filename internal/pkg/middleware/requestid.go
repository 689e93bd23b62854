package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
// Usamos um tipo próprio para garantir que a chave seja única e não haja
// conflito com chaves string de outros pacotes.
type ContextKey int

const (
	RequestIDKey ContextKey = iota
)

// RequestID gera um identificador único por requisição, anexa ao contexto
// e devolve no header X-Request-ID para correlação nos logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestIDFromContext recupera o ID da requisição anexado pelo middleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
