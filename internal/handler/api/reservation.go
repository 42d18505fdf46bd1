package api

import (
	"context"
	"net/http"

	"np-reserve/internal/domain/user"
	reqdto "np-reserve/internal/handler/dto/request"
	resdto "np-reserve/internal/handler/dto/response"
	"np-reserve/internal/handler/middleware"
	"np-reserve/internal/usecase/commands"
	"np-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands  *commands.ReservationCommands
	shipments *commands.ShipmentCommands
	queries   *queries.ReservationQueries
}

func NewReservationHandler(cmd *commands.ReservationCommands, ship *commands.ShipmentCommands, q *queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{commands: cmd, shipments: ship, queries: q}
}

// @Summary List reservations
// @Description Admins see every shop; managers see their own
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param include_archived query bool false "Include refused and delivered reservations"
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var scope *uuid.UUID
	if actor.Role == user.RoleGerant {
		if actor.BoutiqueID == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Manager account has no boutique"})
			return
		}
		scope = actor.BoutiqueID
	}
	includeArchived := c.Query("include_archived") == "true"

	views, err := h.queries.List(c.Request.Context(), scope, includeArchived)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get a reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if actor.Role == user.RoleGerant && (actor.BoutiqueID == nil || *actor.BoutiqueID != view.BoutiqueID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Create a walk-in reservation
// @Description Reservation taken at the counter by staff
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /produits/{id}/walk-in [post]
func (h *ReservationHandler) CreateWalkIn(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	produitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.CreateWalkIn(c.Request.Context(), actor, produitID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Validate a reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/validate [post]
func (h *ReservationHandler) Validate(c *gin.Context) {
	h.transition(c, h.commands.Validate)
}

// @Summary Refuse a reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/refuse [post]
func (h *ReservationHandler) Refuse(c *gin.Context) {
	h.transition(c, h.commands.Refuse)
}

// @Summary Mark a reservation delivered
// @Description Requires an explicit confirmation flag; archives the reservation
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DeliverRequest true "Confirmation"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/deliver [post]
func (h *ReservationHandler) Deliver(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.DeliverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.MarkDelivered(c.Request.Context(), actor, id, req.Confirm); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Grouped shippable reservations
// @Description Validated reservations grouped by produit, boutique and taille
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ProductGroup
// @Router /reservations/groups [get]
func (h *ReservationHandler) Groups(c *gin.Context) {
	groups, err := h.queries.Groups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// @Summary Send a shipment batch
// @Description Moves a batch of validated reservations into delivery under one tracking code
// @Tags shipments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SendShipmentRequest true "Shipment"
// @Success 200 {object} resdto.ShipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /shipments [post]
func (h *ReservationHandler) SendShipment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.SendShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.shipments.Send(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShipmentResult(result))
}

func (h *ReservationHandler) transition(c *gin.Context, apply func(ctx context.Context, actor commands.Actor, id uuid.UUID) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := apply(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
