package usecase

import (
	"context"
	"fmt"
	"strings"

	"bitnest/pkg/chain"
	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"
)

type ReferralLink struct {
	ReferralLink string `json:"referralLink"`
	ReferralCode string `json:"referralCode"`
}

type ReferralUseCase interface {
	// GenerateLink builds the user's referral link on origin, or on the default base URL when
	// origin is empty.
	GenerateLink(ctx context.Context, userID, origin string) (*ReferralLink, error)
	Resolve(ctx context.Context, code string) (*entity.Referrer, error)
	LinkWallet(ctx context.Context, userID, walletAddress string) (*entity.User, error)
}

type referralUseCase struct {
	users   repo.UserRepository
	baseURL string
	logger  *logger.Logger
}

func NewReferralUseCase(users repo.UserRepository, baseURL string, logger *logger.Logger) ReferralUseCase {
	return &referralUseCase{
		users:   users,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (uc *referralUseCase) GenerateLink(ctx context.Context, userID, origin string) (*ReferralLink, error) {
	user, err := uc.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	base := origin
	if base == "" {
		base = uc.baseURL
	}

	return &ReferralLink{
		ReferralLink: strings.TrimRight(base, "/") + "/ref/" + user.ReferralCode,
		ReferralCode: user.ReferralCode,
	}, nil
}

func (uc *referralUseCase) Resolve(ctx context.Context, code string) (*entity.Referrer, error) {
	user, err := uc.users.GetByReferralCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve referral code: %w", err)
	}
	return &entity.Referrer{ID: user.ID, Username: user.Username}, nil
}

func (uc *referralUseCase) LinkWallet(ctx context.Context, userID, walletAddress string) (*entity.User, error) {
	if !chain.IsAddress(walletAddress) {
		return nil, entity.ErrInvalidAddress
	}

	user, err := uc.users.UpdateWallet(ctx, userID, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to link wallet: %w", err)
	}
	uc.logger.Info("Wallet %s linked to user %s", walletAddress, userID)
	return user, nil
}
