package txrepo

import (
	"gocart/internal/domain"
)

// Repository é o Transaction Log em memória: histórico append-only por
// usuário e o gerador sequencial de ids de transação. Sem lock próprio:
// ver memstore.Guard.
type Repository struct {
	byUser map[string][]domain.Transaction
	nextID int
}

// NewRepository cria e retorna um Transaction Log vazio.
func NewRepository() *Repository {
	return &Repository{
		byUser: make(map[string][]domain.Transaction),
		nextID: 1,
	}
}

// NextID consome e retorna o próximo id sequencial de transação.
func (r *Repository) NextID() int {
	id := r.nextID
	r.nextID++
	return id
}

// Append anexa uma transação ao histórico do usuário.
func (r *Repository) Append(userID string, tx domain.Transaction) {
	r.byUser[userID] = append(r.byUser[userID], tx)
}

// ListByUser retorna as transações do usuário em ordem de inserção.
// Usuário sem histórico resulta em slice vazia, não em erro.
func (r *Repository) ListByUser(userID string) []domain.Transaction {
	return append([]domain.Transaction(nil), r.byUser[userID]...)
}
