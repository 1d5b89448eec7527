package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createMenuItemRequest struct {
	ItemName  string `json:"item_name" binding:"required"`
	ItemPrice int64  `json:"item_price"`
}

func (h *handlers) listMenu(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.deps.Menu.List(c.Request.Context(), category)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "items fetched", "items": items})
	}
}

func (h *handlers) createMenuItem(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createMenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_name is required"})
			return
		}
		item, err := h.deps.Menu.Create(c.Request.Context(), category, req.ItemName, req.ItemPrice)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "item added", "item": item})
	}
}

func (h *handlers) deleteMenuItem(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.deps.Menu.Delete(c.Request.Context(), category, c.Param("id")); err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
	}
}
