package checkoutservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
	"gocart/internal/repository/cartrepo"
)

// CartStore é a fatia do Cart Store que o checkout usa.
type CartStore interface {
	Entries(userID string) []cartrepo.Entry
	Clear(userID string)
}

// CatalogStore é a fatia do Catalog Store que o checkout usa: resolução
// de variantes para preço/estoque e a baixa de estoque no commit.
type CatalogStore interface {
	FindVariant(sku string) (int, domain.Variant, bool)
	FindByID(id int) (domain.Product, bool)
	SetStock(sku string, stock int) bool
}

// PromoFinder resolve códigos promocionais já normalizados.
type PromoFinder interface {
	Find(code string) (domain.Promo, bool)
}

// TransactionLog grava o resultado do checkout no histórico do usuário.
type TransactionLog interface {
	NextID() int
	Append(userID string, tx domain.Transaction)
}

// Service é o Checkout Engine: orquestra validação do carrinho, cálculo
// de desconto, baixa de estoque, registro da transação e limpeza do
// carrinho como uma unidade lógica. Esta é a seção mais crítica do
// sistema: os três passes (pré-validação, precificação, commit) executam
// inteiros sob o write lock do Guard, então nenhuma mutação concorrente
// de carrinho ou estoque pode se intercalar entre validação e baixa.
type Service struct {
	guard   *memstore.Guard
	carts   CartStore
	catalog CatalogStore
	promos  PromoFinder
	txs     TransactionLog
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Checkout Engine.
func NewService(guard *memstore.Guard, carts CartStore, catalog CatalogStore, promos PromoFinder, txs TransactionLog, logger logger.Logger) *Service {
	return &Service{guard: guard, carts: carts, catalog: catalog, promos: promos, txs: txs, logger: logger}
}

// Checkout converte o carrinho do usuário em uma transação registrada.
//
// Passe 1 (pré-validação, sem mutação): carrinho não-vazio, promo
// resolvido, cada linha dentro do estoque atual. Passe 2 (precificação):
// subtotais, elegibilidade por linha e desconto, em aritmética decimal
// para que subtotal - desconto seja exato. Passe 3 (commit): baixa de
// estoque, transação anexada ao histórico, carrinho limpo. Uma falha em
// qualquer passe deixa todos os stores intocados.
func (s *Service) Checkout(ctx context.Context, userID, promoCode string) (domain.Transaction, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	entries := s.carts.Entries(userID)
	if len(entries) == 0 {
		return domain.Transaction{}, apperror.NewValidationError("Cart is empty")
	}

	var promo *domain.Promo
	if promoCode != "" {
		p, ok := s.promos.Find(strings.ToUpper(promoCode))
		if !ok {
			return domain.Transaction{}, apperror.NewNotFoundError("Promo code not found")
		}
		promo = &p
	}

	// Passe 1: pré-validação de estoque, nenhuma mutação.
	for _, entry := range entries {
		_, variant, ok := s.catalog.FindVariant(entry.SKU)
		if !ok {
			return domain.Transaction{}, apperror.NewNotFoundError("SKU not found")
		}
		if entry.Quantity > variant.Stock {
			s.logger.Warn("Checkout rejeitado: estoque insuficiente.", map[string]interface{}{"user_id": userID, "sku": entry.SKU, "quantity": entry.Quantity, "stock": variant.Stock})
			return domain.Transaction{}, apperror.NewValidationError(fmt.Sprintf("Insufficient stock for %s", entry.SKU))
		}
	}

	// Passe 2: precificação.
	hundred := decimal.NewFromInt(100)
	subtotalBefore := decimal.Zero
	discountTotal := decimal.Zero
	items := make([]domain.PurchasedItem, 0, len(entries))

	for _, entry := range entries {
		productID, variant, _ := s.catalog.FindVariant(entry.SKU)
		product, _ := s.catalog.FindByID(productID)

		lineBefore := decimal.NewFromFloat(variant.Price).Mul(decimal.NewFromInt(int64(entry.Quantity)))
		subtotalBefore = subtotalBefore.Add(lineBefore)

		lineDiscount := decimal.Zero
		if promo != nil && promo.AppliesTo(entry.SKU) {
			lineDiscount = lineBefore.Mul(decimal.NewFromFloat(promo.DiscountPercent)).Div(hundred)
		}
		discountTotal = discountTotal.Add(lineDiscount)
		lineAfter := lineBefore.Sub(lineDiscount)

		items = append(items, domain.PurchasedItem{
			SKU:                    entry.SKU,
			Name:                   product.Name,
			Size:                   variant.Size,
			Color:                  variant.Color,
			UnitPrice:              variant.Price,
			Quantity:               entry.Quantity,
			SubtotalBeforeDiscount: lineBefore.InexactFloat64(),
			DiscountApplied:        lineDiscount.InexactFloat64(),
			SubtotalAfterDiscount:  lineAfter.InexactFloat64(),
		})
	}

	totalPaid := subtotalBefore.Sub(discountTotal)

	// Passe 3: commit. A pré-validação já garantiu suficiência e o lock
	// impede qualquer mutação intermediária, então a baixa não falha.
	for _, item := range items {
		_, variant, _ := s.catalog.FindVariant(item.SKU)
		s.catalog.SetStock(item.SKU, variant.Stock-item.Quantity)
	}

	tx := domain.Transaction{
		ID:                     s.txs.NextID(),
		UserID:                 userID,
		Items:                  items,
		SubtotalBeforeDiscount: subtotalBefore.InexactFloat64(),
		DiscountTotal:          discountTotal.InexactFloat64(),
		TotalPaid:              totalPaid.InexactFloat64(),
		Timestamp:              time.Now().UTC(),
	}
	if promo != nil {
		tx.PromoCode = promo.Code
	}

	s.txs.Append(userID, tx)
	s.carts.Clear(userID)

	s.logger.Info("Checkout concluído.", map[string]interface{}{"user_id": userID, "tx_id": tx.ID, "items": len(items), "total_paid": tx.TotalPaid})
	return tx, nil
}
