package transaction

import (
	"context"
	"net/http"

	"gocart/internal/api/respond"
	"gocart/internal/domain"
	"gocart/internal/pkg/logger"
)

// TransactionService define o contrato que o Handler espera do serviço
// de histórico de transações.
type TransactionService interface {
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// Handler agrupa os métodos HTTP do histórico de transações.
type Handler struct {
	Service TransactionService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc TransactionService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListTransactionsHandler lida com GET /users/{userID}/transactions.
func (h *Handler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Service.ListTransactions(r.Context(), r.PathValue("userID"))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, r, h.Logger, http.StatusOK, txs)
}
