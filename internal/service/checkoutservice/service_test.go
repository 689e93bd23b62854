package checkoutservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
	"gocart/internal/repository/cartrepo"
	"gocart/internal/repository/catalogrepo"
	"gocart/internal/repository/promorepo"
	"gocart/internal/repository/txrepo"
	"gocart/internal/service/catalogservice"
	"gocart/internal/service/checkoutservice"
)

// env agrupa os stores reais compartilhados por um cenário de checkout.
type env struct {
	guard   *memstore.Guard
	catalog *catalogrepo.Repository
	carts   *cartrepo.Repository
	promos  *promorepo.Repository
	txs     *txrepo.Repository
	svc     *checkoutservice.Service
}

func newEnv() *env {
	e := &env{
		guard:   memstore.NewGuard(),
		catalog: catalogrepo.NewRepository(),
		carts:   cartrepo.NewRepository(),
		promos:  promorepo.NewRepository(),
		txs:     txrepo.NewRepository(),
	}
	e.svc = checkoutservice.NewService(e.guard, e.carts, e.catalog, e.promos, e.txs, logger.NewLogger("error"))
	return e
}

// createProduct cadastra um produto pelo serviço de catálogo real.
func (e *env) createProduct(t *testing.T, name string, variants ...domain.VariantInput) domain.Product {
	t.Helper()
	catalogSvc := catalogservice.NewService(e.guard, e.catalog, e.carts, logger.NewLogger("error"))
	product, err := catalogSvc.CreateProduct(context.Background(), domain.ProductCreate{Name: name, Variants: variants})
	require.NoError(t, err)
	return product
}

// TestCheckout_EmptyCart verifica a falha para carrinho vazio, sem
// nenhuma mutação de estado.
func TestCheckout_EmptyCart(t *testing.T) {
	e := newEnv()

	_, err := e.svc.Checkout(context.Background(), "u1", "")
	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "empty")

	assert.Empty(t, e.txs.ListByUser("u1"))
}

// TestCheckout_UnknownPromo propaga NotFound e deixa carrinho e estoque
// intactos.
func TestCheckout_UnknownPromo(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam",
		domain.VariantInput{Size: domain.SizeS, Color: domain.ColorBiru, Price: 100, Stock: 10})
	sku := product.Variants[0].SKU
	e.carts.Set("u1", sku, 2)

	_, err := e.svc.Checkout(context.Background(), "u1", "NADA")
	require.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	_, variant, _ := e.catalog.FindVariant(sku)
	assert.Equal(t, 10, variant.Stock)
	assert.Equal(t, map[string]int{sku: 2}, e.carts.Get("u1"))
	assert.Empty(t, e.txs.ListByUser("u1"))
}

// TestCheckout_InsufficientStock verifica a pré-validação: se alguma
// linha excede o estoque atual, NADA é gravado (nem as linhas válidas).
func TestCheckout_InsufficientStock(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam",
		domain.VariantInput{Size: domain.SizeS, Color: domain.ColorBiru, Price: 100, Stock: 10},
		domain.VariantInput{Size: domain.SizeM, Color: domain.ColorBiru, Price: 120, Stock: 10})
	skuA := product.Variants[0].SKU
	skuB := product.Variants[1].SKU

	e.carts.Set("u1", skuA, 2)
	e.carts.Set("u1", skuB, 2)

	// Outro fluxo baixou o estoque de B depois que o item entrou no carrinho.
	e.catalog.SetStock(skuB, 1)

	_, err := e.svc.Checkout(context.Background(), "u1", "")
	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), skuB)

	_, variantA, _ := e.catalog.FindVariant(skuA)
	assert.Equal(t, 10, variantA.Stock)
	assert.Equal(t, map[string]int{skuA: 2, skuB: 2}, e.carts.Get("u1"))
	assert.Empty(t, e.txs.ListByUser("u1"))
}

// TestCheckout_PromoScenario cobre o cenário de referência: preço 150,
// estoque 10, promo de 10% restrito ao SKU, quantidade 2. O total pago
// deve ser EXATAMENTE 270.0 (aritmética decimal), o estoque cai para 8 e
// uma transação é registrada com o código do promo.
func TestCheckout_PromoScenario(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam Spesial",
		domain.VariantInput{Size: domain.SizeM, Color: domain.ColorHijau, Price: 150, Stock: 10})
	sku := product.Variants[0].SKU

	e.promos.Save(domain.Promo{Code: "SPESIAL10", DiscountPercent: 10, AppliesToSKUs: []string{sku}})
	e.carts.Set("u2", sku, 2)

	tx, err := e.svc.Checkout(context.Background(), "u2", "spesial10")
	require.NoError(t, err)

	assert.Equal(t, 1, tx.ID)
	assert.Equal(t, "u2", tx.UserID)
	assert.Equal(t, "SPESIAL10", tx.PromoCode)
	assert.Equal(t, 300.0, tx.SubtotalBeforeDiscount)
	assert.Equal(t, 30.0, tx.DiscountTotal)
	assert.Equal(t, 270.0, tx.TotalPaid)
	assert.Equal(t, tx.SubtotalBeforeDiscount-tx.DiscountTotal, tx.TotalPaid)
	assert.WithinDuration(t, time.Now().UTC(), tx.Timestamp, time.Minute)

	require.Len(t, tx.Items, 1)
	item := tx.Items[0]
	assert.Equal(t, sku, item.SKU)
	assert.Equal(t, "Tas Anyam Spesial", item.Name)
	assert.Equal(t, 150.0, item.UnitPrice)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 300.0, item.SubtotalBeforeDiscount)
	assert.Equal(t, 30.0, item.DiscountApplied)
	assert.Equal(t, 270.0, item.SubtotalAfterDiscount)

	// Estado pós-checkout: estoque baixado, carrinho vazio, histórico com
	// exatamente uma transação.
	_, variant, _ := e.catalog.FindVariant(sku)
	assert.Equal(t, 8, variant.Stock)
	assert.Empty(t, e.carts.Get("u2"))
	require.Len(t, e.txs.ListByUser("u2"), 1)
}

// TestCheckout_RestrictedPromoAppliesPerLine verifica a elegibilidade
// por linha: promo restrito a {A} desconta só a linha de A.
func TestCheckout_RestrictedPromoAppliesPerLine(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam Duo",
		domain.VariantInput{Size: domain.SizeS, Color: domain.ColorPink, Price: 100, Stock: 5},
		domain.VariantInput{Size: domain.SizeM, Color: domain.ColorPink, Price: 120, Stock: 5})
	skuA := product.Variants[0].SKU
	skuB := product.Variants[1].SKU

	e.promos.Save(domain.Promo{Code: "DUO15", DiscountPercent: 15, AppliesToSKUs: []string{skuA}})
	e.carts.Set("u3", skuA, 1)
	e.carts.Set("u3", skuB, 1)

	tx, err := e.svc.Checkout(context.Background(), "u3", "DUO15")
	require.NoError(t, err)

	// Desconto só na linha A: 100 * 15% = 15; total (100 + 120) - 15.
	assert.Equal(t, 15.0, tx.DiscountTotal)
	assert.Equal(t, 205.0, tx.TotalPaid)
	assert.Equal(t, 15.0, tx.Items[0].DiscountApplied)
	assert.Equal(t, 0.0, tx.Items[1].DiscountApplied)
	assert.Equal(t, 120.0, tx.Items[1].SubtotalAfterDiscount)
}

// TestCheckout_GlobalPromo verifica que lista vazia de SKUs aplica o
// desconto a todas as linhas.
func TestCheckout_GlobalPromo(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam",
		domain.VariantInput{Size: domain.SizeS, Color: domain.ColorBiru, Price: 100, Stock: 5},
		domain.VariantInput{Size: domain.SizeM, Color: domain.ColorBiru, Price: 120, Stock: 5})

	e.promos.Save(domain.Promo{Code: "ALL10", DiscountPercent: 10, AppliesToSKUs: []string{}})
	e.carts.Set("u4", product.Variants[0].SKU, 1)
	e.carts.Set("u4", product.Variants[1].SKU, 1)

	tx, err := e.svc.Checkout(context.Background(), "u4", "ALL10")
	require.NoError(t, err)
	assert.Equal(t, 22.0, tx.DiscountTotal) // 10% de 220
	assert.Equal(t, 198.0, tx.TotalPaid)
}

// TestCheckout_SequentialTransactionIDs verifica ids sequenciais entre
// checkouts de usuários diferentes.
func TestCheckout_SequentialTransactionIDs(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam",
		domain.VariantInput{Size: domain.SizeS, Color: domain.ColorBiru, Price: 100, Stock: 10})
	sku := product.Variants[0].SKU

	e.carts.Set("u1", sku, 1)
	first, err := e.svc.Checkout(context.Background(), "u1", "")
	require.NoError(t, err)

	e.carts.Set("u2", sku, 1)
	second, err := e.svc.Checkout(context.Background(), "u2", "")
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "", first.PromoCode)
}

// TestCheckout_SnapshotFrozen verifica que o snapshot da transação não
// muda quando o produto é alterado depois do checkout.
func TestCheckout_SnapshotFrozen(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam",
		domain.VariantInput{Size: domain.SizeS, Color: domain.ColorBiru, Price: 100, Stock: 10})
	sku := product.Variants[0].SKU

	e.carts.Set("u1", sku, 1)
	tx, err := e.svc.Checkout(context.Background(), "u1", "")
	require.NoError(t, err)

	// Mutação posterior do catálogo não pode afetar o histórico.
	e.catalog.UpdateInfo(product.ID, strPtr("Outro Nome"), nil)
	e.catalog.SetStock(sku, 0)

	recorded := e.txs.ListByUser("u1")
	require.Len(t, recorded, 1)
	assert.Equal(t, tx.Items[0].Name, recorded[0].Items[0].Name)
	assert.Equal(t, "Tas Anyam", recorded[0].Items[0].Name)
	assert.Equal(t, 100.0, recorded[0].Items[0].UnitPrice)
}

func strPtr(s string) *string { return &s }

// MockPromoFinder é uma implementação mock da interface PromoFinder.
type MockPromoFinder struct {
	mock.Mock
}

func (m *MockPromoFinder) Find(code string) (domain.Promo, bool) {
	args := m.Called(code)
	return args.Get(0).(domain.Promo), args.Bool(1)
}

// TestCheckout_NoPromoCodeSkipsLookup verifica que o Promo Store não é
// consultado quando o checkout vem sem código.
func TestCheckout_NoPromoCodeSkipsLookup(t *testing.T) {
	e := newEnv()
	product := e.createProduct(t, "Tas Anyam",
		domain.VariantInput{Size: domain.SizeS, Color: domain.ColorBiru, Price: 100, Stock: 10})

	mockPromos := new(MockPromoFinder)
	svc := checkoutservice.NewService(e.guard, e.carts, e.catalog, mockPromos, e.txs, logger.NewLogger("error"))

	e.carts.Set("u1", product.Variants[0].SKU, 1)
	_, err := svc.Checkout(context.Background(), "u1", "")
	require.NoError(t, err)

	mockPromos.AssertNotCalled(t, "Find", mock.Anything)
}
