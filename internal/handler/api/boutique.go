package api

import (
	"net/http"

	reqdto "np-reserve/internal/handler/dto/request"
	resdto "np-reserve/internal/handler/dto/response"
	"np-reserve/internal/handler/middleware"
	"np-reserve/internal/usecase/commands"
	"np-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoutiqueHandler struct {
	commands *commands.BoutiqueCommands
	queries  *queries.BoutiqueQueries
}

func NewBoutiqueHandler(cmd *commands.BoutiqueCommands, q *queries.BoutiqueQueries) *BoutiqueHandler {
	return &BoutiqueHandler{commands: cmd, queries: q}
}

// @Summary List boutiques
// @Tags boutiques
// @Produce json
// @Success 200 {array} resdto.BoutiqueResponse
// @Router /boutiques [get]
func (h *BoutiqueHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoutiqueViews(views))
}

// @Summary Get a boutique
// @Tags boutiques
// @Produce json
// @Param id path string true "Boutique ID"
// @Success 200 {object} resdto.BoutiqueResponse
// @Failure 404 {object} map[string]string
// @Router /boutiques/{id} [get]
func (h *BoutiqueHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoutiqueView(view))
}

// @Summary Create a boutique
// @Tags boutiques
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BoutiqueRequest true "Boutique"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /boutiques [post]
func (h *BoutiqueHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.BoutiqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update a boutique
// @Tags boutiques
// @Security BearerAuth
// @Accept json
// @Param id path string true "Boutique ID"
// @Param request body reqdto.BoutiqueRequest true "Boutique"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /boutiques/{id} [put]
func (h *BoutiqueHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.BoutiqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.Update(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a boutique
// @Tags boutiques
// @Security BearerAuth
// @Param id path string true "Boutique ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /boutiques/{id} [delete]
func (h *BoutiqueHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathUUID parses a uuid path parameter, answering 400 itself on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
