package memory

import (
	"context"
	"sync"
	"time"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"github.com/google/uuid"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

func NewUserRepository() repo.UserRepository {
	return &userRepository{users: make(map[string]entity.User)}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, entity.ErrUsernameTaken
		}
	}

	created := *user
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	if created.Role == "" {
		created.Role = entity.RoleUser
	}
	created.ReferralCode = r.GenerateReferralCode()
	created.WalletAddress = nil
	created.CreatedAt = time.Now()
	r.users[created.ID] = created

	return &created, nil
}

func (r *userRepository) Get(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *userRepository) GetByReferralCode(_ context.Context, code string) (*entity.User, error) {
	if code == "" {
		return nil, entity.ErrUserNotFound
	}
	return r.find(func(u *entity.User) bool { return u.ReferralCode == code })
}

func (r *userRepository) UpdateWallet(_ context.Context, id, walletAddress string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	user.WalletAddress = &walletAddress
	r.users[id] = user

	return &user, nil
}

func (r *userRepository) GenerateReferralCode() string {
	return entity.NewReferralCode()
}

func (r *userRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		u := u
		if match(&u) {
			return &u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}
