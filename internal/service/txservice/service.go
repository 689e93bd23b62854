package txservice

import (
	"context"

	"gocart/internal/domain"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
)

// TransactionStore define o contrato que o serviço de histórico espera
// do Transaction Log. A escrita (append) é exclusiva do Checkout Engine;
// este serviço expõe apenas a leitura.
type TransactionStore interface {
	ListByUser(userID string) []domain.Transaction
}

// Service expõe o histórico de transações por usuário.
type Service struct {
	guard  *memstore.Guard
	txs    TransactionStore
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do serviço de histórico.
func NewService(guard *memstore.Guard, txs TransactionStore, logger logger.Logger) *Service {
	return &Service{guard: guard, txs: txs, logger: logger}
}

// ListTransactions retorna as transações do usuário em ordem de
// inserção. Usuário sem histórico resulta em lista vazia, não em erro.
func (s *Service) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	return s.txs.ListByUser(userID), nil
}
