package http

import (
	"net/http"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BlockchainHandler struct {
	blockchainUseCase usecase.BlockchainUseCase
	logger            *logger.Logger
}

func NewBlockchainHandler(blockchainUseCase usecase.BlockchainUseCase, logger *logger.Logger) *BlockchainHandler {
	return &BlockchainHandler{
		blockchainUseCase: blockchainUseCase,
		logger:            logger,
	}
}

// Liquidity godoc
// @Summary      On-chain liquidity
// @Description  Payment wallet balance valued in USD. Also refreshes the liquidity snapshot.
// @Tags         blockchain
// @Produce      json
// @Success      200  {object}  entity.BlockchainLiquidity
// @Failure      500  {object}  map[string]string
// @Router       /blockchain/liquidity [get]
func (h *BlockchainHandler) Liquidity(c *gin.Context) {
	liquidity, err := h.blockchainUseCase.Liquidity(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch blockchain data")
		return
	}

	c.JSON(http.StatusOK, liquidity)
}

// Balance godoc
// @Summary      Wallet balance
// @Tags         blockchain
// @Produce      json
// @Param        address path string true "Wallet address"
// @Success      200  {object}  entity.WalletBalance
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blockchain/balance/{address} [get]
func (h *BlockchainHandler) Balance(c *gin.Context) {
	balance, err := h.blockchainUseCase.Balance(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch blockchain data")
		return
	}

	c.JSON(http.StatusOK, balance)
}
