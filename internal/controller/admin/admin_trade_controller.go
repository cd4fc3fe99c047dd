package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/itimock/internal/controller"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/service"
)

type AdminTradeController struct {
	tradeService service.TradeService
}

func NewAdminTradeController(tradeService service.TradeService) *AdminTradeController {
	return &AdminTradeController{tradeService: tradeService}
}

// RegisterRoutes mounts trade admin endpoints on an /api/v1/admin group.
func (c *AdminTradeController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/trades", c.CreateTrade)
}

// CreateTrade godoc
// @Summary (Admin) Register a trade
// @Tags Admin - Trades
// @Accept json
// @Produce json
// @Param trade body dto.TradeCreateDTO true "Trade name and description"
// @Success 201 {object} dto.TradeResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate name"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /admin/trades [post]
func (c *AdminTradeController) CreateTrade(ctx *gin.Context) {
	var req dto.TradeCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin CreateTrade", err)
		return
	}
	trade, err := c.tradeService.CreateTrade(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateTrade", err)
		return
	}
	ctx.JSON(http.StatusCreated, trade)
}
