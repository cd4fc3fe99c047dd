package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/itimock/internal/controller"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/service"
)

// CatalogController serves the read-only trade list and leaderboards.
type CatalogController struct {
	tradeService       service.TradeService
	leaderboardService service.LeaderboardService
}

func NewCatalogController(ts service.TradeService, ls service.LeaderboardService) *CatalogController {
	return &CatalogController{tradeService: ts, leaderboardService: ls}
}

func (c *CatalogController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/trades", c.ListTrades)
	rg.GET("/trades/:id", c.GetTrade)
	rg.GET("/leaderboard", c.GetLeaderboard)
}

// ListTrades godoc
// @Summary (User) List trades
// @Tags User - Catalog
// @Produce json
// @Success 200 {array} dto.TradeResponseDTO
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /trades [get]
func (c *CatalogController) ListTrades(ctx *gin.Context) {
	trades, err := c.tradeService.ListTrades(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "ListTrades", err)
		return
	}
	ctx.JSON(http.StatusOK, trades)
}

// GetTrade godoc
// @Summary (User) Get a trade
// @Tags User - Catalog
// @Produce json
// @Param id path int true "Trade ID"
// @Success 200 {object} dto.TradeResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Trade not found"
// @Router /trades/{id} [get]
func (c *CatalogController) GetTrade(ctx *gin.Context) {
	id, ok := controller.ParseUintParam(ctx, "id")
	if !ok {
		return
	}
	trade, err := c.tradeService.GetTrade(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "GetTrade", err)
		return
	}
	ctx.JSON(http.StatusOK, trade)
}

// GetLeaderboard godoc
// @Summary (User) Leaderboard of submitted papers
// @Description Ranks submitted papers by score, earliest submission first among equals. Equal scores share a rank.
// @Tags User - Catalog
// @Produce json
// @Param paper_code query string false "Paper code"
// @Param trade_id query int false "Trade ID (required without paper_code)"
// @Param year query int false "Year"
// @Param limit query int false "Max entries, default 10, max 100"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 400 {object} dto.ErrorResponse "Missing filter or malformed paper code"
// @Router /leaderboard [get]
func (c *CatalogController) GetLeaderboard(ctx *gin.Context) {
	var q dto.LeaderboardQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, "GetLeaderboard", err)
		return
	}
	entries, err := c.leaderboardService.GetLeaderboard(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, "GetLeaderboard", err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
