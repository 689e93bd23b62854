package cartrepo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gocart/internal/repository/cartrepo"
)

// TestEntries_PreservesInsertionOrder verifica que a ordem dos itens é a
// ordem de primeira inserção, mesmo após atualizações de quantidade.
func TestEntries_PreservesInsertionOrder(t *testing.T) {
	repo := cartrepo.NewRepository()

	repo.Set("u1", "P1-S-BIRU", 1)
	repo.Set("u1", "P1-M-PINK", 2)
	repo.Set("u1", "P1-S-BIRU", 5) // atualização não reordena

	entries := repo.Entries("u1")
	assert.Equal(t, []cartrepo.Entry{
		{SKU: "P1-S-BIRU", Quantity: 5},
		{SKU: "P1-M-PINK", Quantity: 2},
	}, entries)
}

// TestSet_NonPositiveRemoves verifica que quantidade <= 0 nunca é
// armazenada.
func TestSet_NonPositiveRemoves(t *testing.T) {
	repo := cartrepo.NewRepository()

	repo.Set("u1", "P1-S-BIRU", 3)
	repo.Set("u1", "P1-S-BIRU", 0)
	assert.Empty(t, repo.Get("u1"))

	repo.Set("u1", "P1-M-PINK", -2)
	assert.Empty(t, repo.Get("u1"))
}

// TestSweep remove de todos os carrinhos os SKUs reprovados no predicado.
func TestSweep(t *testing.T) {
	repo := cartrepo.NewRepository()

	repo.Set("u1", "P1-S-BIRU", 1)
	repo.Set("u1", "P2-S-BIRU", 2)
	repo.Set("u2", "P1-M-PINK", 3)

	repo.Sweep(func(sku string) bool { return sku == "P2-S-BIRU" })

	assert.Equal(t, map[string]int{"P2-S-BIRU": 2}, repo.Get("u1"))
	assert.Empty(t, repo.Get("u2"))
}

// TestGet_ReturnsCopy garante que o chamador não compartilha memória com
// o store.
func TestGet_ReturnsCopy(t *testing.T) {
	repo := cartrepo.NewRepository()
	repo.Set("u1", "P1-S-BIRU", 1)

	items := repo.Get("u1")
	items["P1-S-BIRU"] = 99

	assert.Equal(t, map[string]int{"P1-S-BIRU": 1}, repo.Get("u1"))
}
