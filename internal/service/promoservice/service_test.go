package promoservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocart/internal/domain"
	apperror "gocart/internal/errors"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
	"gocart/internal/repository/promorepo"
	"gocart/internal/service/promoservice"
)

func newService() *promoservice.Service {
	return promoservice.NewService(memstore.NewGuard(), promorepo.NewRepository(), logger.NewLogger("error"))
}

// TestCreatePromo_NormalizesCode verifica a normalização para maiúsculas
// e a busca insensível a maiúsculas.
func TestCreatePromo_NormalizesCode(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	promo, err := svc.CreatePromo(ctx, domain.PromoCreate{Code: "spesial10", DiscountPercent: 10})
	require.NoError(t, err)
	assert.Equal(t, "SPESIAL10", promo.Code)
	assert.NotNil(t, promo.AppliesToSKUs)
	assert.Empty(t, promo.AppliesToSKUs)

	found, err := svc.GetPromo(ctx, "Spesial10")
	require.NoError(t, err)
	assert.Equal(t, "SPESIAL10", found.Code)
}

// TestCreatePromo_DuplicateCode verifica o conflito mesmo com caixa
// diferente (o código é único por valor normalizado).
func TestCreatePromo_DuplicateCode(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreatePromo(ctx, domain.PromoCreate{Code: "DUO15", DiscountPercent: 15})
	require.NoError(t, err)

	_, err = svc.CreatePromo(ctx, domain.PromoCreate{Code: "duo15", DiscountPercent: 20})
	require.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
}

// TestCreatePromo_PercentBounds verifica a faixa (0, 100].
func TestCreatePromo_PercentBounds(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, percent := range []float64{0, -5, 100.1} {
		_, err := svc.CreatePromo(ctx, domain.PromoCreate{Code: "X", DiscountPercent: percent})
		require.Error(t, err, "percent %v deveria falhar", percent)
		assert.IsType(t, &apperror.ValidationError{}, err)
	}

	// 100 é o limite superior válido.
	promo, err := svc.CreatePromo(ctx, domain.PromoCreate{Code: "GRATIS", DiscountPercent: 100})
	require.NoError(t, err)
	assert.Equal(t, 100.0, promo.DiscountPercent)
}

// TestGetPromo_NotFound verifica o erro para código desconhecido.
func TestGetPromo_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetPromo(context.Background(), "NADA")
	require.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

// TestListPromos_CreationOrder verifica a ordem de listagem.
func TestListPromos_CreationOrder(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, code := range []string{"A10", "B20", "C30"} {
		_, err := svc.CreatePromo(ctx, domain.PromoCreate{Code: code, DiscountPercent: 10})
		require.NoError(t, err)
	}

	promos, err := svc.ListPromos(ctx)
	require.NoError(t, err)
	require.Len(t, promos, 3)
	assert.Equal(t, "A10", promos[0].Code)
	assert.Equal(t, "C30", promos[2].Code)
}

// TestPromoAppliesTo cobre a regra de elegibilidade: lista vazia vale
// para todos os SKUs, lista não-vazia exige pertencimento.
func TestPromoAppliesTo(t *testing.T) {
	global := domain.Promo{Code: "ALL", DiscountPercent: 5}
	assert.True(t, global.AppliesTo("P1-S-BIRU"))

	restricted := domain.Promo{Code: "ONE", DiscountPercent: 5, AppliesToSKUs: []string{"P1-S-BIRU"}}
	assert.True(t, restricted.AppliesTo("P1-S-BIRU"))
	assert.False(t, restricted.AppliesTo("P1-M-PINK"))
}
