package usecase

import (
	"context"
	"errors"
	"fmt"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	GenerateToken(userID, role string) (string, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, username, password, referredBy string) (*entity.User, string, error)
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	Me(ctx context.Context, userID string) (*entity.User, error)
	EnsureAdmin(ctx context.Context, password string) error
}

type authUseCase struct {
	users  repo.UserRepository
	tokens TokenIssuer
	logger *logger.Logger
}

func NewAuthUseCase(users repo.UserRepository, tokens TokenIssuer, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, username, password, referredBy string) (*entity.User, string, error) {
	var referrer *string
	if referredBy != "" {
		if _, err := uc.users.GetByReferralCode(ctx, referredBy); err != nil {
			if errors.Is(err, entity.ErrUserNotFound) {
				return nil, "", entity.ErrInvalidReferralCode
			}
			return nil, "", err
		}
		referrer = &referredBy
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.users.Create(ctx, &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		ReferredBy:   referrer,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("User %s registered (%s)", user.Username, user.ID)
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

func (uc *authUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (uc *authUseCase) EnsureAdmin(ctx context.Context, password string) error {
	if _, err := uc.users.GetByUsername(ctx, "admin"); err == nil {
		return nil
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := uc.users.Create(ctx, &entity.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	uc.logger.Info("Admin user created")
	return nil
}
