package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type ItemTypeHandler struct {
	items services.ItemTypeService
}

func NewItemTypeHandler(items services.ItemTypeService) *ItemTypeHandler {
	return &ItemTypeHandler{items: items}
}

// GET /api/item-types
func (h *ItemTypeHandler) List(c *gin.Context) {
	rows, err := h.items.List(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"item_types": rows})
}

// GET /api/item-types/:id
func (h *ItemTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	it, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"item_type": it})
}

// POST /api/item-types
// body: { "name": "Axe", "durability": 100 }
func (h *ItemTypeHandler) Create(c *gin.Context) {
	var req services.ItemTypeInput
	if !bindJSON(c, &req) {
		return
	}
	it, err := h.items.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"item_type": it})
}

// PATCH /api/item-types/:id
func (h *ItemTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.ItemTypePatch
	if !bindJSON(c, &req) {
		return
	}
	it, err := h.items.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"item_type": it})
}

// DELETE /api/item-types/:id
func (h *ItemTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.items.Delete(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
