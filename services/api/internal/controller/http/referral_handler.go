package http

import (
	"errors"
	"net/http"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/entity"
	"bitnest/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referralUseCase usecase.ReferralUseCase
	logger          *logger.Logger
}

func NewReferralHandler(referralUseCase usecase.ReferralUseCase, logger *logger.Logger) *ReferralHandler {
	return &ReferralHandler{
		referralUseCase: referralUseCase,
		logger:          logger,
	}
}

type GenerateReferralRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type LinkWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// Generate godoc
// @Summary      Generate referral link
// @Description  Referral link for a user, built on the request Origin when present
// @Tags         referral
// @Accept       json
// @Produce      json
// @Param        request body GenerateReferralRequest true "User"
// @Success      200  {object}  usecase.ReferralLink
// @Failure      404  {object}  map[string]string
// @Router       /referral/generate [post]
func (h *ReferralHandler) Generate(c *gin.Context) {
	var req GenerateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	link, err := h.referralUseCase.GenerateLink(c.Request.Context(), req.UserID, c.GetHeader("Origin"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate referral link")
		return
	}

	c.JSON(http.StatusOK, link)
}

// Resolve godoc
// @Summary      Resolve referral code
// @Tags         referral
// @Produce      json
// @Param        code path string true "Referral code"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /referral/{code} [get]
func (h *ReferralHandler) Resolve(c *gin.Context) {
	referrer, err := h.referralUseCase.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid referral code"})
			return
		}
		respondError(c, h.logger, err, "Failed to validate referral code")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"referrer": referrer,
	})
}

// LinkWallet godoc
// @Summary      Link wallet
// @Description  Attach a wallet address to a user. Only the user or an admin may do this.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body LinkWalletRequest true "Wallet"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/wallet [put]
func (h *ReferralHandler) LinkWallet(c *gin.Context) {
	userID := c.Param("id")
	if c.GetString("user_id") != userID && c.GetString("user_role") != string(entity.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
		return
	}

	var req LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.referralUseCase.LinkWallet(c.Request.Context(), userID, req.WalletAddress)
	if err != nil {
		respondError(c, h.logger, err, "Failed to link wallet")
		return
	}

	c.JSON(http.StatusOK, user)
}
