package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

type SeedHandler struct {
	ledger services.SeedLedgerService
}

func NewSeedHandler(ledger services.SeedLedgerService) *SeedHandler {
	return &SeedHandler{ledger: ledger}
}

// GET /api/seed/applications
func (h *SeedHandler) ListApplications(c *gin.Context) {
	rows, err := h.ledger.ListApplications(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"applications": rows})
}
