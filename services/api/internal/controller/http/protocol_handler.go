package http

import (
	"encoding/json"
	"net/http"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProtocolHandler struct {
	protocolUseCase usecase.ProtocolUseCase
	logger          *logger.Logger
}

func NewProtocolHandler(protocolUseCase usecase.ProtocolUseCase, logger *logger.Logger) *ProtocolHandler {
	return &ProtocolHandler{
		protocolUseCase: protocolUseCase,
		logger:          logger,
	}
}

// JoinRequest accepts amount as a JSON number or a numeric string.
type JoinRequest struct {
	Protocol string     `json:"protocol" example:"loop"`
	UserID   string     `json:"userId" example:"user-123"`
	Amount   JoinAmount `json:"amount" swaggertype:"string" example:"100"`
}

// JoinAmount keeps the literal text of a string or number amount. null decodes to empty.
type JoinAmount string

func (a *JoinAmount) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = JoinAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = JoinAmount(n)
	return nil
}

type JoinResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

// Join godoc
// @Summary      Join protocol
// @Description  Record a pending payment and settle it in the background
// @Tags         protocol
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "Join request"
// @Success      200  {object}  JoinResponse
// @Failure      400  {object}  map[string]string
// @Router       /protocol/join [post]
func (h *ProtocolHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if req.Protocol == "" || req.UserID == "" || req.Amount == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	tx, err := h.protocolUseCase.Join(c.Request.Context(), usecase.JoinRequest{
		Protocol: req.Protocol,
		UserID:   req.UserID,
		Amount:   string(req.Amount),
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to process protocol join")
		return
	}

	c.JSON(http.StatusOK, JoinResponse{
		Success:       true,
		TransactionID: tx.ID,
		Message:       "Payment processing for " + string(tx.Protocol) + " protocol",
	})
}

// GetTransactions godoc
// @Summary      List transactions
// @Description  All transactions of a user, any status
// @Tags         protocol
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}  entity.Transaction
// @Router       /transactions/{userId} [get]
func (h *ProtocolHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.protocolUseCase.ListTransactions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}
