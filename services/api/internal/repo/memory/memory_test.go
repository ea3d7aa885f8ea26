package memory

import (
	"context"
	"sync"
	"testing"

	"bitnest/services/api/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_CreatePending(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	tx, err := repo.Create(ctx, &entity.Transaction{UserID: "u1", Protocol: entity.ProtocolLoop, Amount: "100"})
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, entity.StatusPending, tx.Status)
	assert.Nil(t, tx.TxHash)
	assert.False(t, tx.CreatedAt.IsZero())

	got, err := repo.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx, got)
}

func TestTransactionRepository_UpdateStatus(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()
	tx, _ := repo.Create(ctx, &entity.Transaction{UserID: "u1", Protocol: entity.ProtocolDAO, Amount: "5"})

	updated, err := repo.UpdateStatus(ctx, tx.ID, entity.StatusCompleted, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
	require.NotNil(t, updated.TxHash)
	assert.Equal(t, "0xabc", *updated.TxHash)

	// An empty hash keeps the previous one.
	updated, err = repo.UpdateStatus(ctx, tx.ID, entity.StatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", *updated.TxHash)
	assert.Equal(t, tx.CreatedAt, updated.CreatedAt)
}

func TestTransactionRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewTransactionRepository()

	assert.NotPanics(t, func() {
		tx, err := repo.UpdateStatus(context.Background(), "missing", entity.StatusCompleted, "0x1")
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, entity.ErrTransactionNotFound)
	})
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()
	repo.Create(ctx, &entity.Transaction{UserID: "u1", Protocol: entity.ProtocolLoop, Amount: "1"})
	repo.Create(ctx, &entity.Transaction{UserID: "u1", Protocol: entity.ProtocolSavings, Amount: "2"})
	repo.Create(ctx, &entity.Transaction{UserID: "u2", Protocol: entity.ProtocolLoop, Amount: "3"})

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLiquidityRepository_EmptyUntilSeeded(t *testing.T) {
	repo := NewLiquidityRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, entity.ErrLiquidityNotFound)

	_, err = repo.Add(ctx, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, entity.ErrLiquidityNotFound)
}

func TestLiquidityRepository_ReplaceSwapsSnapshot(t *testing.T) {
	repo := NewLiquidityRepository()
	ctx := context.Background()

	first, err := repo.Replace(ctx, decimal.RequireFromString("41597642"))
	require.NoError(t, err)
	second, err := repo.Replace(ctx, decimal.RequireFromString("10"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	current, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "10", current.TotalLiquidity)
}

func TestLiquidityRepository_Add(t *testing.T) {
	repo := NewLiquidityRepository()
	ctx := context.Background()
	seed, _ := repo.Replace(ctx, decimal.RequireFromString("41597642"))

	stats, err := repo.Add(ctx, decimal.RequireFromString("100"))
	require.NoError(t, err)

	assert.Equal(t, "41597742", stats.TotalLiquidity)
	assert.NotEqual(t, seed.ID, stats.ID)
}

// Interleaved read-then-write loses one of the two updates. Add does not.
func TestLiquidityRepository_ReadModifyWriteLosesUpdate(t *testing.T) {
	repo := NewLiquidityRepository()
	ctx := context.Background()
	repo.Replace(ctx, decimal.NewFromInt(1000))

	a, _ := repo.Get(ctx)
	b, _ := repo.Get(ctx)
	repo.Replace(ctx, decimal.RequireFromString(a.TotalLiquidity).Add(decimal.NewFromInt(10)))
	repo.Replace(ctx, decimal.RequireFromString(b.TotalLiquidity).Add(decimal.NewFromInt(20)))

	stats, _ := repo.Get(ctx)
	assert.Equal(t, "1020", stats.TotalLiquidity)
}

func TestLiquidityRepository_ConcurrentAddIsExact(t *testing.T) {
	repo := NewLiquidityRepository()
	ctx := context.Background()
	repo.Replace(ctx, decimal.NewFromInt(1000))

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Add(ctx, decimal.NewFromInt(5))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stats, _ := repo.Get(ctx)
	assert.Equal(t, "2000", stats.TotalLiquidity)
}

func TestUserRepository_CreateAndResolve(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.ReferralCode)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Nil(t, user.WalletAddress)

	resolved, err := repo.GetByReferralCode(ctx, user.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)

	_, err = repo.GetByReferralCode(ctx, "REF_UNKNOWN")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	repo.Create(ctx, &entity.User{Username: "alice"})

	_, err := repo.Create(ctx, &entity.User{Username: "alice"})
	assert.ErrorIs(t, err, entity.ErrUsernameTaken)
}

func TestUserRepository_UpdateWallet(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	user, _ := repo.Create(ctx, &entity.User{Username: "bob"})

	updated, err := repo.UpdateWallet(ctx, user.ID, "0xCbBa4594A1abD7e8C1781EdDB0CaA526FA992e4C")
	require.NoError(t, err)
	require.NotNil(t, updated.WalletAddress)
	assert.Equal(t, user.ReferralCode, updated.ReferralCode)

	_, err = repo.UpdateWallet(ctx, "missing", "0x0")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	repo.Create(ctx, &entity.User{Username: "carol"})

	user, err := repo.GetByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)

	_, err = repo.GetByUsername(ctx, "dave")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
