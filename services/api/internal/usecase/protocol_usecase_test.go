package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolUseCase_JoinReturnsPending(t *testing.T) {
	transactions, ledger := newSeededStores(t, "41597642")
	settler := NewSettler(transactions, ledger, 20*time.Millisecond, logger.New())
	uc := NewProtocolUseCase(transactions, settler, logger.New())
	ctx := context.Background()

	tx, err := uc.Join(ctx, JoinRequest{Protocol: "loop", UserID: "u1", Amount: "100"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, tx.Status)
	assert.Nil(t, tx.TxHash)

	settler.Wait()

	list, err := uc.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tx.ID, list[0].ID)
	assert.Equal(t, entity.StatusCompleted, list[0].Status)

	stats, _ := ledger.Get(ctx)
	assert.Equal(t, "41597742", stats.TotalLiquidity)
}

func TestProtocolUseCase_JoinRejectsBadInput(t *testing.T) {
	transactions, ledger := newSeededStores(t, "0")
	settler := NewSettler(transactions, ledger, time.Millisecond, logger.New())
	uc := NewProtocolUseCase(transactions, settler, logger.New())
	ctx := context.Background()

	cases := []struct {
		name string
		req  JoinRequest
		err  error
	}{
		{"unknown protocol", JoinRequest{Protocol: "staking", UserID: "u1", Amount: "1"}, entity.ErrInvalidProtocol},
		{"non numeric amount", JoinRequest{Protocol: "loop", UserID: "u1", Amount: "lots"}, entity.ErrInvalidAmount},
		{"zero amount", JoinRequest{Protocol: "loop", UserID: "u1", Amount: "0"}, entity.ErrInvalidAmount},
		{"negative amount", JoinRequest{Protocol: "dao", UserID: "u1", Amount: "-5"}, entity.ErrInvalidAmount},
		{"huge exponent", JoinRequest{Protocol: "loop", UserID: "u1", Amount: "1e50000000"}, entity.ErrInvalidAmount},
		{"tiny exponent", JoinRequest{Protocol: "loop", UserID: "u1", Amount: "1e-50000000"}, entity.ErrInvalidAmount},
		{"too many digits", JoinRequest{Protocol: "loop", UserID: "u1", Amount: "1" + strings.Repeat("0", 80)}, entity.ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Join(ctx, tc.req)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	list, _ := uc.ListTransactions(ctx, "u1")
	assert.Empty(t, list)
}

func TestProtocolUseCase_ListTransactionsEmpty(t *testing.T) {
	transactions, ledger := newSeededStores(t, "0")
	uc := NewProtocolUseCase(transactions, NewSettler(transactions, ledger, time.Millisecond, logger.New()), logger.New())

	list, err := uc.ListTransactions(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}
