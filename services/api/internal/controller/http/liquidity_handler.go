package http

import (
	"net/http"

	"bitnest/pkg/logger"
	"bitnest/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LiquidityHandler struct {
	liquidityUseCase usecase.LiquidityUseCase
	logger           *logger.Logger
}

func NewLiquidityHandler(liquidityUseCase usecase.LiquidityUseCase, logger *logger.Logger) *LiquidityHandler {
	return &LiquidityHandler{
		liquidityUseCase: liquidityUseCase,
		logger:           logger,
	}
}

type UpdateLiquidityRequest struct {
	TotalLiquidity string `json:"totalLiquidity" binding:"required"`
}

// GetLiquidity godoc
// @Summary      Get liquidity
// @Description  Current total-liquidity snapshot
// @Tags         liquidity
// @Produce      json
// @Success      200  {object}  entity.LiquidityStats
// @Failure      404  {object}  map[string]string
// @Router       /liquidity [get]
func (h *LiquidityHandler) GetLiquidity(c *gin.Context) {
	stats, err := h.liquidityUseCase.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch liquidity stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdateLiquidity godoc
// @Summary      Replace liquidity
// @Description  Replace the liquidity snapshot with a new total
// @Tags         liquidity
// @Accept       json
// @Produce      json
// @Param        request body UpdateLiquidityRequest true "New total"
// @Success      200  {object}  entity.LiquidityStats
// @Failure      400  {object}  map[string]string
// @Router       /liquidity [post]
func (h *LiquidityHandler) UpdateLiquidity(c *gin.Context) {
	var req UpdateLiquidityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid liquidity stats data"})
		return
	}

	stats, err := h.liquidityUseCase.Update(c.Request.Context(), req.TotalLiquidity)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update liquidity stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
