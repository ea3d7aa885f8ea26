package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"bitnest/pkg/chain"
	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/repo"

	"github.com/shopspring/decimal"
)

// BalanceReader returns an address balance in wei.
type BalanceReader interface {
	BalanceAt(ctx context.Context, address string) (*big.Int, error)
}

type BlockchainUseCase interface {
	Balance(ctx context.Context, address string) (*entity.WalletBalance, error)
	// Liquidity reads the payment wallet and writes its display value into the ledger.
	Liquidity(ctx context.Context) (*entity.BlockchainLiquidity, error)
}

type blockchainUseCase struct {
	reader        BalanceReader
	ledger        repo.LiquidityRepository
	walletAddress string
	ethUSDPrice   decimal.Decimal
	logger        *logger.Logger
}

func NewBlockchainUseCase(reader BalanceReader, ledger repo.LiquidityRepository, walletAddress string, ethUSDPrice decimal.Decimal, logger *logger.Logger) BlockchainUseCase {
	return &blockchainUseCase{
		reader:        reader,
		ledger:        ledger,
		walletAddress: walletAddress,
		ethUSDPrice:   ethUSDPrice,
		logger:        logger,
	}
}

func (uc *blockchainUseCase) Balance(ctx context.Context, address string) (*entity.WalletBalance, error) {
	if !chain.IsAddress(address) {
		return nil, entity.ErrInvalidAddress
	}

	wei, err := uc.balanceAt(ctx, address)
	if err != nil {
		return nil, err
	}

	return &entity.WalletBalance{
		Address:    address,
		Balance:    chain.WeiToEther(wei).String(),
		BalanceWei: wei.String(),
	}, nil
}

func (uc *blockchainUseCase) Liquidity(ctx context.Context) (*entity.BlockchainLiquidity, error) {
	wei, err := uc.balanceAt(ctx, uc.walletAddress)
	if err != nil {
		return nil, err
	}

	eth := chain.WeiToEther(wei)
	total := eth.Mul(uc.ethUSDPrice).Round(0)

	stats, err := uc.ledger.Replace(ctx, total)
	if err != nil {
		uc.logger.Error("Failed to store on-chain liquidity: %v", err)
		return nil, fmt.Errorf("failed to store liquidity: %w", err)
	}

	return &entity.BlockchainLiquidity{
		WalletAddress: uc.walletAddress,
		EthBalance:    eth.String(),
		TotalValue:    stats.TotalLiquidity,
		LastUpdated:   stats.LastUpdated,
		TokenBalances: []entity.TokenBalance{},
	}, nil
}

func (uc *blockchainUseCase) balanceAt(ctx context.Context, address string) (*big.Int, error) {
	if uc.reader == nil {
		return nil, fmt.Errorf("%w: ethereum rpc not configured", entity.ErrUpstream)
	}

	wei, err := uc.reader.BalanceAt(ctx, address)
	if err != nil {
		if errors.Is(err, chain.ErrInvalidAddress) {
			return nil, entity.ErrInvalidAddress
		}
		uc.logger.Error("Ethereum balance lookup for %s failed: %v", address, err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return wei, nil
}
