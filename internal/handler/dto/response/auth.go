package response

import (
	"github.com/google/uuid"

	"np-reserve/internal/usecase/commands"
)

type AuthResponse struct {
	AccessToken string     `json:"access_token"`
	UserID      uuid.UUID  `json:"user_id"`
	Role        string     `json:"role"`
	BoutiqueID  *uuid.UUID `json:"boutique_id,omitempty"`
}

func FromAuthResult(result commands.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken: result.Token,
		UserID:      result.UserID,
		Role:        result.Role.String(),
		BoutiqueID:  result.BoutiqueID,
	}
}
