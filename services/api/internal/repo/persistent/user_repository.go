package persistent

import (
	"context"
	"errors"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/model"
	"bitnest/services/api/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, err := r.GetByUsername(ctx, user.Username); err == nil {
		return nil, entity.ErrUsernameTaken
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, err
	}

	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if userModel.Role == "" {
		userModel.Role = string(entity.RoleUser)
	}
	userModel.ReferralCode = r.GenerateReferralCode()
	userModel.WalletAddress = nil
	userModel.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrUsernameTaken
		}
		return nil, err
	}
	return ToUserEntity(userModel), nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*entity.User, error) {
	if !isUUID(id) {
		return nil, entity.ErrUserNotFound
	}
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userRepository) GetByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	if code == "" {
		return nil, entity.ErrUserNotFound
	}
	return r.first(ctx, "referral_code = ?", code)
}

func (r *userRepository) UpdateWallet(ctx context.Context, id, walletAddress string) (*entity.User, error) {
	if !isUUID(id) {
		return nil, entity.ErrUserNotFound
	}
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("wallet_address", walletAddress)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrUserNotFound
	}
	return r.Get(ctx, id)
}

func (r *userRepository) GenerateReferralCode() string {
	return entity.NewReferralCode()
}

func (r *userRepository) first(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}
