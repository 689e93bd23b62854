package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/middleware"
)

// JSON escreve uma resposta de sucesso padronizada em JSON.
func JSON(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	fields := map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": status,
	}
	if id, ok := middleware.GetRequestIDFromContext(r.Context()); ok {
		fields["request_id"] = id
	}
	log.Info("Requisição concluída com sucesso", fields)

	if data != nil {
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			log.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
	}
}

// Error traduz um erro de serviço (AppError ou não) para o status HTTP e
// o corpo de erro padronizado {code, category, message}.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		// Erros de cliente (4xx) são registrados como debug
		fields := map[string]interface{}{"path": r.URL.Path, "category": category}
		if id, ok := middleware.GetRequestIDFromContext(r.Context()); ok {
			fields["request_id"] = id
		}
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d.", status), fields)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}
