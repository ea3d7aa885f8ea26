package entity

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrLiquidityNotFound   = errors.New("liquidity stats not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidTotal        = errors.New("total liquidity must be a non-negative number")
	ErrInvalidProtocol     = errors.New("unknown protocol")
	ErrInvalidAddress      = errors.New("invalid wallet address")
	ErrUpstream            = errors.New("upstream dependency failed")
)
