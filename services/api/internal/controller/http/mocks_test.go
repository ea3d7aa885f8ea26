package http

import (
	"context"

	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockProtocolUseCase struct {
	mock.Mock
}

func (m *MockProtocolUseCase) Join(ctx context.Context, req usecase.JoinRequest) (*entity.Transaction, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockProtocolUseCase) ListTransactions(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

type MockLiquidityUseCase struct {
	mock.Mock
}

func (m *MockLiquidityUseCase) Get(ctx context.Context) (*entity.LiquidityStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LiquidityStats), args.Error(1)
}

func (m *MockLiquidityUseCase) Update(ctx context.Context, totalLiquidity string) (*entity.LiquidityStats, error) {
	args := m.Called(totalLiquidity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LiquidityStats), args.Error(1)
}

func (m *MockLiquidityUseCase) Seed(ctx context.Context, total string) (*entity.LiquidityStats, error) {
	args := m.Called(total)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LiquidityStats), args.Error(1)
}

type MockReferralUseCase struct {
	mock.Mock
}

func (m *MockReferralUseCase) GenerateLink(ctx context.Context, userID, origin string) (*usecase.ReferralLink, error) {
	args := m.Called(userID, origin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ReferralLink), args.Error(1)
}

func (m *MockReferralUseCase) Resolve(ctx context.Context, code string) (*entity.Referrer, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Referrer), args.Error(1)
}

func (m *MockReferralUseCase) LinkWallet(ctx context.Context, userID, walletAddress string) (*entity.User, error) {
	args := m.Called(userID, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockBlockchainUseCase struct {
	mock.Mock
}

func (m *MockBlockchainUseCase) Balance(ctx context.Context, address string) (*entity.WalletBalance, error) {
	args := m.Called(address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WalletBalance), args.Error(1)
}

func (m *MockBlockchainUseCase) Liquidity(ctx context.Context) (*entity.BlockchainLiquidity, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlockchainLiquidity), args.Error(1)
}

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, username, password, referredBy string) (*entity.User, string, error) {
	args := m.Called(username, password, referredBy)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) EnsureAdmin(ctx context.Context, password string) error {
	args := m.Called(password)
	return args.Error(0)
}

var (
	_ usecase.ProtocolUseCase   = (*MockProtocolUseCase)(nil)
	_ usecase.LiquidityUseCase  = (*MockLiquidityUseCase)(nil)
	_ usecase.ReferralUseCase   = (*MockReferralUseCase)(nil)
	_ usecase.BlockchainUseCase = (*MockBlockchainUseCase)(nil)
	_ usecase.AuthUseCase       = (*MockAuthUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
