package usecase

import (
	"context"
	"testing"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralUseCase_GenerateLink(t *testing.T) {
	users := memory.NewUserRepository()
	user, _ := users.Create(context.Background(), &entity.User{Username: "alice"})
	uc := NewReferralUseCase(users, "https://bitnest.finance", logger.New())

	link, err := uc.GenerateLink(context.Background(), user.ID, "")
	require.NoError(t, err)
	assert.Equal(t, user.ReferralCode, link.ReferralCode)
	assert.Equal(t, "https://bitnest.finance/ref/"+user.ReferralCode, link.ReferralLink)

	link, err = uc.GenerateLink(context.Background(), user.ID, "http://localhost:5173/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/ref/"+user.ReferralCode, link.ReferralLink)
}

func TestReferralUseCase_GenerateLinkUnknownUser(t *testing.T) {
	uc := NewReferralUseCase(memory.NewUserRepository(), "https://bitnest.finance", logger.New())

	_, err := uc.GenerateLink(context.Background(), "missing", "")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestReferralUseCase_ResolveReturnsGeneratingUser(t *testing.T) {
	users := memory.NewUserRepository()
	alice, _ := users.Create(context.Background(), &entity.User{Username: "alice"})
	bob, _ := users.Create(context.Background(), &entity.User{Username: "bob"})
	uc := NewReferralUseCase(users, "https://bitnest.finance", logger.New())

	referrer, err := uc.Resolve(context.Background(), bob.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, &entity.Referrer{ID: bob.ID, Username: "bob"}, referrer)

	referrer, err = uc.Resolve(context.Background(), alice.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, referrer.ID)

	_, err = uc.Resolve(context.Background(), "REF_NOPE")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestReferralUseCase_LinkWallet(t *testing.T) {
	users := memory.NewUserRepository()
	user, _ := users.Create(context.Background(), &entity.User{Username: "alice"})
	uc := NewReferralUseCase(users, "https://bitnest.finance", logger.New())

	updated, err := uc.LinkWallet(context.Background(), user.ID, paymentWallet)
	require.NoError(t, err)
	require.NotNil(t, updated.WalletAddress)
	assert.Equal(t, paymentWallet, *updated.WalletAddress)

	_, err = uc.LinkWallet(context.Background(), user.ID, "not-a-wallet")
	assert.ErrorIs(t, err, entity.ErrInvalidAddress)

	_, err = uc.LinkWallet(context.Background(), "missing", paymentWallet)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
