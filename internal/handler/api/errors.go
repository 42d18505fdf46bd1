package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"np-reserve/internal/domain/boutique"
	"np-reserve/internal/domain/produit"
	"np-reserve/internal/domain/reservation"
	"np-reserve/internal/domain/user"
	"np-reserve/internal/handler/httperr"
	"np-reserve/internal/infra"
	"np-reserve/internal/pkg/password"
	"np-reserve/internal/usecase/commands"
)

// respondError maps domain and infrastructure errors to their HTTP shape.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, commands.ErrCategorieLimitReached):
		httperr.AbortWithError(c, http.StatusConflict, err, "Categorie listing limit reached", nil)
	case errors.Is(err, reservation.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is not in a state allowing this change", nil)
	case errors.Is(err, commands.ErrDeliveryNotConfirmed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Delivery must be confirmed", nil)
	case errors.Is(err, commands.ErrEmptyShipment):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Shipment must contain at least one reservation", nil)
	case errors.Is(err, commands.ErrReservationOutsideGroup):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation does not belong to the shipment group", nil)
	case errors.Is(err, commands.ErrProduitNotSoldAtBoutique):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Produit is not sold at the requested boutique", nil)
	case isValidationError(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case infra.IsKind(err, infra.KindDuplicateKey):
		httperr.AbortWithError(c, http.StatusConflict, err, "Resource already exists", nil)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		httperr.AbortWithError(c, http.StatusConflict, err, "Resource is referenced by other data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

var validationErrors = []error{
	boutique.ErrEmptyName,
	boutique.ErrEmptyCity,
	produit.ErrEmptyName,
	produit.ErrNegativePrice,
	produit.ErrNegativeStock,
	produit.ErrInvalidStatus,
	produit.ErrInvalidCategorie,
	produit.ErrNoBoutique,
	reservation.ErrEmptyCustomerName,
	reservation.ErrEmptyCustomerEmail,
	reservation.ErrEmptyTaille,
	reservation.ErrInvalidQuantite,
	reservation.ErrNegativeAcompte,
	reservation.ErrEmptyTracking,
	reservation.ErrMissingPushToken,
	user.ErrInvalidEmail,
	user.ErrEmptyPassword,
	user.ErrInvalidRole,
	password.ErrInvalidPassword,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
