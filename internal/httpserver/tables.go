package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listTables(c *gin.Context) {
	tables, err := h.deps.Tables.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *handlers) createTable(c *gin.Context) {
	table, err := h.deps.Tables.Create(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "table added", "table": table})
}

func (h *handlers) deleteTable(c *gin.Context) {
	if err := h.deps.Tables.Delete(c.Request.Context(), c.Param("name")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "table deleted"})
}
