package cartservice

import (
	"context"

	"github.com/shopspring/decimal"

	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
	"gocart/internal/repository/cartrepo"
)

// CatalogReader é a fatia do Catalog Store que o carrinho consulta:
// resolução de SKU e nome do produto para a visão do carrinho.
type CatalogReader interface {
	FindVariant(sku string) (int, domain.Variant, bool)
	FindByID(id int) (domain.Product, bool)
}

// CartStore define o contrato que o Serviço de Carrinho espera do store
// em memória.
type CartStore interface {
	Get(userID string) map[string]int
	Entries(userID string) []cartrepo.Entry
	Set(userID, sku string, quantity int)
	Remove(userID, sku string)
	Clear(userID string)
}

// Service implementa as operações do Cart Store: mutações validadas
// contra o estoque atual do catálogo e a visão juntada do carrinho.
type Service struct {
	guard   *memstore.Guard
	carts   CartStore
	catalog CatalogReader
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Carrinho.
func NewService(guard *memstore.Guard, carts CartStore, catalog CatalogReader, logger logger.Logger) *Service {
	return &Service{guard: guard, carts: carts, catalog: catalog, logger: logger}
}

// SetQuantity grava a quantidade de um SKU no carrinho do usuário.
// O SKU precisa existir no catálogo e a quantidade não pode exceder o
// estoque atual; quantidade <= 0 equivale a remover o item.
func (s *Service) SetQuantity(ctx context.Context, userID, sku string, quantity int) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	_, variant, ok := s.catalog.FindVariant(sku)
	if !ok {
		return apperror.NewNotFoundError("SKU not found")
	}
	if quantity > variant.Stock {
		s.logger.Warn("Quantidade acima do estoque.", map[string]interface{}{"user_id": userID, "sku": sku, "quantity": quantity, "stock": variant.Stock})
		return apperror.NewValidationError("Quantity exceeds available stock")
	}

	s.carts.Set(userID, sku, quantity)

	s.logger.Debug("Carrinho atualizado.", map[string]interface{}{"user_id": userID, "sku": sku, "quantity": quantity})
	return nil
}

// RemoveItem remove um SKU do carrinho. Idempotente: remover um SKU
// ausente não é erro e não muda estado.
func (s *Service) RemoveItem(ctx context.Context, userID, sku string) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	s.carts.Remove(userID, sku)
	return nil
}

// Clear esvazia o carrinho do usuário.
func (s *Service) Clear(ctx context.Context, userID string) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	s.carts.Clear(userID)
	return nil
}

// Items retorna o mapeamento SKU -> quantidade do usuário (vazio se o
// usuário nunca foi visto).
func (s *Service) Items(ctx context.Context, userID string) (map[string]int, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	return s.carts.Get(userID), nil
}

// View produz a visão do carrinho: cada entrada juntada com nome,
// tamanho, cor e preço unitário atuais do catálogo, o subtotal da linha
// (preço x quantidade) e a soma das linhas.
func (s *Service) View(ctx context.Context, userID string) (domain.CartView, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	view := domain.CartView{UserID: userID, Items: []domain.CartItemView{}}
	subtotal := decimal.Zero

	for _, entry := range s.carts.Entries(userID) {
		productID, variant, ok := s.catalog.FindVariant(entry.SKU)
		if !ok {
			// A varredura no delete de produto impede isso dentro de um
			// processo; o contrato ainda propaga NotFound se ocorrer.
			return domain.CartView{}, apperror.NewNotFoundError("SKU not found")
		}
		product, _ := s.catalog.FindByID(productID)

		lineSubtotal := decimal.NewFromFloat(variant.Price).Mul(decimal.NewFromInt(int64(entry.Quantity)))
		subtotal = subtotal.Add(lineSubtotal)

		view.Items = append(view.Items, domain.CartItemView{
			SKU:          entry.SKU,
			Name:         product.Name,
			Size:         variant.Size,
			Color:        variant.Color,
			UnitPrice:    variant.Price,
			Quantity:     entry.Quantity,
			LineSubtotal: lineSubtotal.InexactFloat64(),
		})
	}

	view.Subtotal = subtotal.InexactFloat64()
	return view, nil
}
