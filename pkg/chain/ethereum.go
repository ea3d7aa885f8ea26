// Package chain is a read-only Ethereum JSON-RPC client used for wallet balance lookups.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

const weiDecimals = 18

var ErrInvalidAddress = errors.New("invalid ethereum address")

type Client struct {
	eth *ethclient.Client
}

func Dial(ctx context.Context, rpcURL string) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}
	return &Client{eth: eth}, nil
}

// BalanceAt returns the latest balance of address in wei.
func (c *Client) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if !IsAddress(address) {
		return nil, ErrInvalidAddress
	}
	balance, err := c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("eth_getBalance %s: %w", address, err)
	}
	return balance, nil
}

func (c *Client) Close() {
	c.eth.Close()
}

func IsAddress(address string) bool {
	return common.IsHexAddress(address)
}

func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -weiDecimals)
}
