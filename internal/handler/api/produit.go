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

type ProduitHandler struct {
	commands     *commands.ProduitCommands
	reservations *commands.ReservationCommands
	queries      *queries.ProduitQueries
}

func NewProduitHandler(cmd *commands.ProduitCommands, res *commands.ReservationCommands, q *queries.ProduitQueries) *ProduitHandler {
	return &ProduitHandler{commands: cmd, reservations: res, queries: q}
}

// @Summary List produits
// @Description Public catalog; filter by boutique with ?boutique_id=
// @Tags produits
// @Produce json
// @Param boutique_id query string false "Boutique ID"
// @Success 200 {array} resdto.ProduitResponse
// @Router /produits [get]
func (h *ProduitHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("boutique_id"); raw != "" {
		boutiqueID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid boutique_id format"})
			return
		}
		views, err := h.queries.ListByBoutique(ctx, boutiqueID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromProduitViews(views))
		return
	}

	views, err := h.queries.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduitViews(views))
}

// @Summary Get a produit
// @Tags produits
// @Produce json
// @Param id path string true "Produit ID"
// @Success 200 {object} resdto.ProduitResponse
// @Failure 404 {object} map[string]string
// @Router /produits/{id} [get]
func (h *ProduitHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduitView(view))
}

// @Summary Create a produit
// @Tags produits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ProduitRequest true "Produit"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /produits [post]
func (h *ProduitHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.ProduitRequest
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

// @Summary Update a produit
// @Tags produits
// @Security BearerAuth
// @Accept json
// @Param id path string true "Produit ID"
// @Param request body reqdto.ProduitRequest true "Produit"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /produits/{id} [put]
func (h *ProduitHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.ProduitRequest
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

// @Summary Delete a produit
// @Tags produits
// @Security BearerAuth
// @Param id path string true "Produit ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /produits/{id} [delete]
func (h *ProduitHandler) Delete(c *gin.Context) {
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

// @Summary Reserve a produit
// @Description Public reservation against a produit; no account needed
// @Tags produits
// @Accept json
// @Produce json
// @Param id path string true "Produit ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /produits/{id}/reservations [post]
func (h *ProduitHandler) Reserve(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reservationID, err := h.reservations.CreatePublic(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": reservationID})
}
