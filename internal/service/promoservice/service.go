package promoservice

import (
	"context"
	"strings"

	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
)

// PromoStore define o contrato que o Serviço de Promoções espera do
// store em memória.
type PromoStore interface {
	Has(code string) bool
	Save(p domain.Promo)
	Find(code string) (domain.Promo, bool)
	All() []domain.Promo
}

// Service implementa as operações do Promo Store. Promos são imutáveis
// após a criação: não existe operação de update.
type Service struct {
	guard  *memstore.Guard
	promos PromoStore
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Promoções.
func NewService(guard *memstore.Guard, promos PromoStore, logger logger.Logger) *Service {
	return &Service{guard: guard, promos: promos, logger: logger}
}

// CreatePromo normaliza o código para maiúsculas e armazena o promo.
// O percentual de desconto deve estar em (0, 100].
func (s *Service) CreatePromo(ctx context.Context, data domain.PromoCreate) (domain.Promo, error) {
	if data.Code == "" {
		return domain.Promo{}, apperror.NewValidationError("promo code is required")
	}
	if data.DiscountPercent <= 0 || data.DiscountPercent > 100 {
		return domain.Promo{}, apperror.NewValidationError("discount percent must be greater than 0 and at most 100")
	}

	code := strings.ToUpper(data.Code)

	s.guard.Lock()
	defer s.guard.Unlock()

	if s.promos.Has(code) {
		s.logger.Warn("Código promocional duplicado.", map[string]interface{}{"code": code})
		return domain.Promo{}, apperror.NewConflictError("Promo code already exists")
	}

	applies := data.AppliesToSKUs
	if applies == nil {
		applies = []string{}
	}

	promo := domain.Promo{
		Code:            code,
		DiscountPercent: data.DiscountPercent,
		AppliesToSKUs:   applies,
	}
	s.promos.Save(promo)

	s.logger.Info("Promo criado.", map[string]interface{}{"code": code, "percent": promo.DiscountPercent, "skus": len(applies)})
	return promo, nil
}

// GetPromo busca um promo pelo código, insensível a maiúsculas.
func (s *Service) GetPromo(ctx context.Context, code string) (domain.Promo, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	promo, ok := s.promos.Find(strings.ToUpper(code))
	if !ok {
		return domain.Promo{}, apperror.NewNotFoundError("Promo code not found")
	}
	return promo, nil
}

// ListPromos retorna todos os promos em ordem de criação.
func (s *Service) ListPromos(ctx context.Context) ([]domain.Promo, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	return s.promos.All(), nil
}
