package api

import (
	"net/http"

	"np-reserve/internal/kiosk"

	"github.com/gin-gonic/gin"
)

type KioskHandler struct {
	manager *kiosk.Manager
}

func NewKioskHandler(manager *kiosk.Manager) *KioskHandler {
	return &KioskHandler{manager: manager}
}

// @Summary Current kiosk slide
// @Description The slide the in-store screen should display right now
// @Tags kiosk
// @Produce json
// @Param boutiqueId path string true "Boutique ID"
// @Success 200 {object} kiosk.Slide
// @Success 204 "No produits to display"
// @Failure 404 {object} map[string]string
// @Router /kiosk/{boutiqueId}/slide [get]
func (h *KioskHandler) Slide(c *gin.Context) {
	boutiqueID, ok := pathUUID(c, "boutiqueId")
	if !ok {
		return
	}

	slide, ok, err := h.manager.Slide(c.Request.Context(), boutiqueID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, slide)
}
