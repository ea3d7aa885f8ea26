package entity

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	WalletAddress *string   `json:"walletAddress"`
	ReferralCode  string    `json:"referralCode"`
	ReferredBy    *string   `json:"referredBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Referrer is the public view of a user resolved from a referral code.
type Referrer struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// NewReferralCode builds a code from the first 48 random bits of a fresh uuid. Uniqueness rests
// on the uuid generator and is not checked against existing users.
func NewReferralCode() string {
	id := uuid.New()
	return "REF_" + strings.ToUpper(hex.EncodeToString(id[:6]))
}
