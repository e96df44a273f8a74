package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/adithyasudev/entry-voucher-forge/internal/core/ports/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/dto"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler serves the item lookup table.
type itemHandler struct {
	store portssvc.RecordStoreSvcFacade
}

func registerItemRoutes(rg *gin.RouterGroup, store portssvc.RecordStoreSvcFacade) {
	h := &itemHandler{store: store}

	items := rg.Group("/items")
	{
		items.GET("", h.listItems)
		items.PUT("", h.setItems)
		items.POST("/refresh", h.refreshItems)
	}
}

// listItems godoc
// @Summary List the item lookup table
// @Tags items
// @Produce json
// @Success 200 {object} dto.ItemListResponse
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewItemListResponse(h.store.Items()))
}

// setItems godoc
// @Summary Replace the item lookup table
// @Description Existing rows keep their item names; only later item code edits use the new table.
// @Tags items
// @Accept json
// @Produce json
// @Param items body dto.SetItemsRequest true "Catalog entries"
// @Success 200 {object} dto.ItemListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /items [put]
func (h *itemHandler) setItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	h.store.SetReferenceData(req.ToDomain())
	logger.Info("Item lookup table replaced", slog.Int("count", len(req.Items)))
	c.JSON(http.StatusOK, dto.NewItemListResponse(h.store.Items()))
}

// refreshItems godoc
// @Summary Reload the item catalog from the backend
// @Description On failure the previous lookup table is kept and the error is recorded on the voucher state.
// @Tags items
// @Produce json
// @Success 200 {object} dto.ItemListResponse
// @Failure 502 {object} dto.ErrorResponse "Failed to fetch item master"
// @Router /items/refresh [post]
func (h *itemHandler) refreshItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.store.RefreshReferenceData(c.Request.Context()); err != nil {
		respondWithError(c, logger, err, "Failed to fetch item master")
		return
	}
	c.JSON(http.StatusOK, dto.NewItemListResponse(h.store.Items()))
}
