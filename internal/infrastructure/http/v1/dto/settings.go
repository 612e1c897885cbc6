package dto

import (
	"protheo/internal/core/entity"
	"protheo/internal/core/types"
	"protheo/internal/domain/settings"
)

// SaveSettingsRequest replaces the company settings wholesale.
type SaveSettingsRequest struct {
	Name           string         `json:"name" binding:"required"`
	TaxID          *string        `json:"taxId"`
	Address        *string        `json:"address"`
	Phone          *string        `json:"phone"`
	Email          *string        `json:"email"`
	GlobalDiscount *types.Percent `json:"globalDiscount"`
}

// ToEntity converts the request to the settings entity. Identity fields
// are reconciled by the service against the stored row.
func (r SaveSettingsRequest) ToEntity() *settings.CompanySettings {
	return &settings.CompanySettings{
		Base:           entity.NewBase(),
		Name:           r.Name,
		TaxID:          r.TaxID,
		Address:        r.Address,
		Phone:          r.Phone,
		Email:          r.Email,
		GlobalDiscount: r.GlobalDiscount,
	}
}
