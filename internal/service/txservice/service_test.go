package txservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocart/internal/domain"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
	"gocart/internal/repository/txrepo"
	"gocart/internal/service/txservice"
)

// TestListTransactions verifica a ordem de inserção e a lista vazia para
// usuário sem histórico.
func TestListTransactions(t *testing.T) {
	repo := txrepo.NewRepository()
	svc := txservice.NewService(memstore.NewGuard(), repo, logger.NewLogger("error"))
	ctx := context.Background()

	repo.Append("u1", domain.Transaction{ID: repo.NextID(), UserID: "u1", TotalPaid: 100})
	repo.Append("u1", domain.Transaction{ID: repo.NextID(), UserID: "u1", TotalPaid: 200})

	txs, err := svc.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, 1, txs[0].ID)
	assert.Equal(t, 2, txs[1].ID)

	empty, err := svc.ListTransactions(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
