package usecase

import (
	"context"
	"strings"
	"testing"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidityUseCase_SeedOnlyWhenEmpty(t *testing.T) {
	uc := NewLiquidityUseCase(memory.NewLiquidityRepository(), logger.New())
	ctx := context.Background()

	_, err := uc.Get(ctx)
	assert.ErrorIs(t, err, entity.ErrLiquidityNotFound)

	seeded, err := uc.Seed(ctx, "41597642")
	require.NoError(t, err)
	assert.Equal(t, "41597642", seeded.TotalLiquidity)

	again, err := uc.Seed(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, again.ID)
	assert.Equal(t, "41597642", again.TotalLiquidity)
}

func TestLiquidityUseCase_Update(t *testing.T) {
	uc := NewLiquidityUseCase(memory.NewLiquidityRepository(), logger.New())
	ctx := context.Background()

	stats, err := uc.Update(ctx, "123.45")
	require.NoError(t, err)
	assert.Equal(t, "123.45", stats.TotalLiquidity)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.ID, got.ID)
}

func TestLiquidityUseCase_UpdateRejectsInvalid(t *testing.T) {
	uc := NewLiquidityUseCase(memory.NewLiquidityRepository(), logger.New())

	for _, value := range []string{"", "abc", "-1", "1e50000000", "5e-19", "1" + strings.Repeat("0", 60)} {
		_, err := uc.Update(context.Background(), value)
		assert.ErrorIs(t, err, entity.ErrInvalidTotal, value)
	}
}

func TestLiquidityUseCase_UpdateAcceptsBounds(t *testing.T) {
	uc := NewLiquidityUseCase(memory.NewLiquidityRepository(), logger.New())

	for _, value := range []string{"1e58", "0.000000000000000001", strings.Repeat("9", 59)} {
		_, err := uc.Update(context.Background(), value)
		assert.NoError(t, err, value)
	}
}
