package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type StructureTypeHandler struct {
	structures services.StructureTypeService
}

func NewStructureTypeHandler(structures services.StructureTypeService) *StructureTypeHandler {
	return &StructureTypeHandler{structures: structures}
}

// GET /api/structure-types
func (h *StructureTypeHandler) List(c *gin.Context) {
	rows, err := h.structures.List(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"structure_types": rows})
}

// GET /api/structure-types/:id
func (h *StructureTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.structures.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"structure_type": row})
}

// POST /api/structure-types
// body: { "name": "Tree", "health": 50, "item_type_id": "...", "max_items": 8, "item_to_engage_id": "..." }
func (h *StructureTypeHandler) Create(c *gin.Context) {
	var req services.StructureTypeInput
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.structures.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"structure_type": row})
}

// PATCH /api/structure-types/:id
func (h *StructureTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.StructureTypePatch
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.structures.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"structure_type": row})
}

// DELETE /api/structure-types/:id
func (h *StructureTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.structures.Delete(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
