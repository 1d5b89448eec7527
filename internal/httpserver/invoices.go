package httpserver

import (
	"net/http"

	"foodrepublic/internal/domain"
	invoicerepo "foodrepublic/internal/repository/invoice"
	"github.com/gin-gonic/gin"
)

type createInvoiceRequest struct {
	TableName     string               `json:"table_name"`
	Items         []domain.InvoiceLine `json:"items"`
	TotalBill     int64                `json:"total_bill"`
	TotalDiscount int64                `json:"total_discount"`
}

func (h *handlers) listInvoices(c *gin.Context) {
	invoices, err := h.deps.Invoices.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *handlers) getInvoice(c *gin.Context) {
	inv, err := h.deps.Invoices.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}

func (h *handlers) createInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id, err := h.deps.Invoices.Create(c.Request.Context(), invoicerepo.CreateInvoiceInput{
		TableName:     req.TableName,
		Items:         req.Items,
		TotalBill:     req.TotalBill,
		TotalDiscount: req.TotalDiscount,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}
