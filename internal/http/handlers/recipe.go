package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type RecipeHandler struct {
	recipes services.RecipeService
}

func NewRecipeHandler(recipes services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// GET /api/recipes?building_type_id=...
func (h *RecipeHandler) List(c *gin.Context) {
	var buildingTypeID uuid.UUID
	if raw := strings.TrimSpace(c.Query("building_type_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
			return
		}
		buildingTypeID = id
	}
	rows, err := h.recipes.List(c.Request.Context(), buildingTypeID)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipes": rows})
}

// GET /api/recipes/:id
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe": row})
}

// POST /api/recipes
// body: { "name": "Saw Planks", "building_type_id": "...", "output_item_type_id": "...", "output_amount": 4, "ingredients": [...] }
func (h *RecipeHandler) Create(c *gin.Context) {
	var req services.RecipeInput
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.recipes.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"recipe": row})
}

// PATCH /api/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.RecipePatch
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.recipes.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe": row})
}

// DELETE /api/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
