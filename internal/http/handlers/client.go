package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type ClientHandler struct {
	clients services.ClientService
}

func NewClientHandler(clients services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type clientNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/clients
// body: { "name": "..." }
// The token is only ever returned here.
func (h *ClientHandler) Register(c *gin.Context) {
	var req clientNameRequest
	if !bindJSON(c, &req) {
		return
	}
	client, token, err := h.clients.Register(c.Request.Context(), req.Name)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"client": client, "token": token})
}

// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	rows, err := h.clients.List(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"clients": rows})
}

// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"client": client})
}

// PATCH /api/clients/:id
func (h *ClientHandler) Rename(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req clientNameRequest
	if !bindJSON(c, &req) {
		return
	}
	client, err := h.clients.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"client": client})
}

// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
