package request

import (
	"github.com/google/uuid"

	"np-reserve/internal/usecase/commands"
)

type ProvisionGerantRequest struct {
	Email       string    `json:"email" binding:"required"`
	Password    string    `json:"password" binding:"required"`
	BoutiqueID  uuid.UUID `json:"boutique_id" binding:"required"`
	DisplayName *string   `json:"display_name,omitempty"`
}

func (r ProvisionGerantRequest) ToInput() commands.ProvisionGerantInput {
	return commands.ProvisionGerantInput{
		Email:       r.Email,
		Password:    r.Password,
		BoutiqueID:  r.BoutiqueID,
		DisplayName: r.DisplayName,
	}
}
