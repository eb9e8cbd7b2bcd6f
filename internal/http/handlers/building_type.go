package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type BuildingTypeHandler struct {
	buildings services.BuildingTypeService
}

func NewBuildingTypeHandler(buildings services.BuildingTypeService) *BuildingTypeHandler {
	return &BuildingTypeHandler{buildings: buildings}
}

// GET /api/building-types
func (h *BuildingTypeHandler) List(c *gin.Context) {
	rows, err := h.buildings.List(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"building_types": rows})
}

// GET /api/building-types/:id
func (h *BuildingTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.buildings.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"building_type": row})
}

// POST /api/building-types
// body: { "name": "Sawmill", "health": 200, "recipes": [{ "item_type_id": "...", "amount": 10 }] }
func (h *BuildingTypeHandler) Create(c *gin.Context) {
	var req services.BuildingTypeInput
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.buildings.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"building_type": row})
}

// PATCH /api/building-types/:id
func (h *BuildingTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.BuildingTypePatch
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.buildings.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"building_type": row})
}

// DELETE /api/building-types/:id
func (h *BuildingTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.buildings.Delete(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
