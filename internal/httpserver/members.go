package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createMemberRequest struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	DiscountValue int64  `json:"discountValue"`
}

// getMembers lists all members, or resolves a single member when the
// ?search= query carries a mobile number.
func (h *handlers) getMembers(c *gin.Context) {
	if mobile, ok := c.GetQuery("search"); ok {
		m, err := h.deps.Members.Lookup(c.Request.Context(), mobile)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"member": m})
		return
	}
	members, err := h.deps.Members.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *handlers) createMember(c *gin.Context) {
	var req createMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	m, err := h.deps.Members.Create(c.Request.Context(), req.Name, req.Mobile, req.DiscountValue)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "member added", "member": m})
}

func (h *handlers) deleteMember(c *gin.Context) {
	if err := h.deps.Members.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}
