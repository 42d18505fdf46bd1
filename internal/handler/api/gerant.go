package api

import (
	"net/http"

	reqdto "np-reserve/internal/handler/dto/request"
	"np-reserve/internal/handler/middleware"
	"np-reserve/internal/usecase/commands"
	"np-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GerantHandler struct {
	commands *commands.GerantCommands
	queries  *queries.UserQueries
}

func NewGerantHandler(cmd *commands.GerantCommands, q *queries.UserQueries) *GerantHandler {
	return &GerantHandler{commands: cmd, queries: q}
}

// @Summary List shop managers
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Router /admin/gerants [get]
func (h *GerantHandler) List(c *gin.Context) {
	views, err := h.queries.ListGerants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Provision a shop manager
// @Description Creates the manager account for a boutique, or rotates its credentials when the email already exists
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ProvisionGerantRequest true "Manager"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/gerants [post]
func (h *GerantHandler) Provision(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.ProvisionGerantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Provision(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Revoke a shop manager
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/gerants/{id} [delete]
func (h *GerantHandler) Revoke(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Revoke(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
