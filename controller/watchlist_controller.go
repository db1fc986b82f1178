package controller

import (
	"net/http"

	"github.com/dafahentra/stocks-dashboard/model"
	"github.com/dafahentra/stocks-dashboard/service"
	"github.com/dafahentra/stocks-dashboard/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type WatchlistController struct {
	watchlistService service.WatchlistService
}

func NewWatchlistController(ws service.WatchlistService) *WatchlistController {
	return &WatchlistController{
		watchlistService: ws,
	}
}

// RegisterRoutes sets up the watchlist route group.
func (ctrl *WatchlistController) RegisterRoutes(router *gin.RouterGroup) {
	watchGroup := router.Group("/watchlist")
	{
		watchGroup.GET("", ctrl.GetWatchlist)
		watchGroup.POST("", ctrl.AddSymbol)
		watchGroup.DELETE("/:group/:symbol", ctrl.RemoveSymbol)
	}
}

// GetWatchlist returns all groups with live quotes.
// @Summary      Get Watchlist
// @Description  Returns the watchlist groups expanded with quick quotes.
// @Tags         Watchlist
// @Produce      json
// @Success      200  {object}  model.Response{data=[]model.WatchGroupQuotes}
// @Router       /watchlist [get]
func (ctrl *WatchlistController) GetWatchlist(c *gin.Context) {
	groups := ctrl.watchlistService.GroupsWithQuotes(c.Request.Context())
	handleSuccess(c, "Fetch Success", groups)
}

// AddSymbol adds a symbol to a group.
// @Summary      Add Watchlist Symbol
// @Description  Adds a symbol to the named group, creating the group when new.
// @Tags         Watchlist
// @Accept       json
// @Produce      json
// @Param        request  body      model.WatchItemRequest  true  "Group and symbol"
// @Success      200      {object}  model.Response
// @Failure      400      {object}  model.Response
// @Failure      500      {object}  model.Response
// @Router       /watchlist [post]
func (ctrl *WatchlistController) AddSymbol(c *gin.Context) {
	var req model.WatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := zog.Struct(validator.WatchItemShape).Validate(&req); err != nil {
		log.Warn().Interface("issues", err).Msg("watchlist add validation failed")
		handleError(c, http.StatusBadRequest, "Invalid request", nil)
		return
	}

	if err := ctrl.watchlistService.AddSymbol(c.Request.Context(), req.Group, req.Symbol); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to update watchlist", err)
		return
	}

	handleSuccess(c, "Symbol added", nil)
}

// RemoveSymbol removes a symbol from a group.
// @Summary      Remove Watchlist Symbol
// @Description  Removes a symbol from the named group.
// @Tags         Watchlist
// @Produce      json
// @Param        group   path      string  true  "Group name"
// @Param        symbol  path      string  true  "Symbol"
// @Success      200     {object}  model.Response
// @Failure      404     {object}  model.Response
// @Router       /watchlist/{group}/{symbol} [delete]
func (ctrl *WatchlistController) RemoveSymbol(c *gin.Context) {
	group := c.Param("group")
	symbol := c.Param("symbol")

	if err := ctrl.watchlistService.RemoveSymbol(c.Request.Context(), group, symbol); err != nil {
		handleError(c, http.StatusNotFound, "Failed to update watchlist", err)
		return
	}

	handleSuccess(c, "Symbol removed", nil)
}
