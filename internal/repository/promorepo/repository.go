package promorepo

import (
	"gocart/internal/domain"
)

// Repository é o Promo Store em memória, indexado pelo código já
// normalizado (maiúsculas). Sem lock próprio: ver memstore.Guard.
type Repository struct {
	promos map[string]domain.Promo
	order  []string
}

// NewRepository cria e retorna um Promo Store vazio.
func NewRepository() *Repository {
	return &Repository{promos: make(map[string]domain.Promo)}
}

// Has verifica se um código (normalizado) já existe.
func (r *Repository) Has(code string) bool {
	_, ok := r.promos[code]
	return ok
}

// Save armazena um promo novo. Pressupõe código normalizado e inédito.
func (r *Repository) Save(p domain.Promo) {
	r.promos[p.Code] = p
	r.order = append(r.order, p.Code)
}

// Find retorna o promo de um código normalizado.
func (r *Repository) Find(code string) (domain.Promo, bool) {
	p, ok := r.promos[code]
	return p, ok
}

// All retorna todos os promos em ordem de criação.
func (r *Repository) All() []domain.Promo {
	out := make([]domain.Promo, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.promos[code])
	}
	return out
}
