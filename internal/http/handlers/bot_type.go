package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type BotTypeHandler struct {
	bots services.BotTypeService
}

func NewBotTypeHandler(bots services.BotTypeService) *BotTypeHandler {
	return &BotTypeHandler{bots: bots}
}

// GET /api/bot-types
func (h *BotTypeHandler) List(c *gin.Context) {
	rows, err := h.bots.List(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"bot_types": rows})
}

// GET /api/bot-types/:id
func (h *BotTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.bots.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"bot_type": row})
}

// POST /api/bot-types
// body: { "name": "Worker", "health": 100, "strength": 5, "speed": 2, "vision": 3, "recipes": [{ "item_type_id": "...", "amount": 5 }] }
func (h *BotTypeHandler) Create(c *gin.Context) {
	var req services.BotTypeInput
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.bots.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"bot_type": row})
}

// PATCH /api/bot-types/:id
func (h *BotTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.BotTypePatch
	if !bindJSON(c, &req) {
		return
	}
	row, err := h.bots.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"bot_type": row})
}

// DELETE /api/bot-types/:id
func (h *BotTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.bots.Delete(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
