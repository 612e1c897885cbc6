package dto

import (
	"protheo/internal/core/entity"
	"protheo/internal/core/types"
	"protheo/internal/domain/catalogs/procedure"
)

// CreateProcedureRequest for creating a catalog procedure. Code may be
// left empty to have one generated.
type CreateProcedureRequest struct {
	Code         string      `json:"code"`
	Name         string      `json:"name" binding:"required"`
	BasePrice    types.Money `json:"basePrice"`
	Category     *string     `json:"category"`
	DisplayOrder int         `json:"displayOrder"`
}

// ToEntity converts the request to a domain entity.
func (r CreateProcedureRequest) ToEntity() *procedure.Procedure {
	return &procedure.Procedure{
		Base:         entity.NewBase(),
		Code:         r.Code,
		Name:         r.Name,
		BasePrice:    r.BasePrice,
		Category:     r.Category,
		DisplayOrder: r.DisplayOrder,
	}
}

// UpdateProcedureRequest for updating a catalog procedure.
type UpdateProcedureRequest struct {
	Code         string      `json:"code" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	BasePrice    types.Money `json:"basePrice"`
	Category     *string     `json:"category"`
	DisplayOrder int         `json:"displayOrder"`
}

// ApplyTo applies the request to an existing entity.
func (r UpdateProcedureRequest) ApplyTo(p *procedure.Procedure) {
	p.Code = r.Code
	p.Name = r.Name
	p.BasePrice = r.BasePrice
	p.Category = r.Category
	p.DisplayOrder = r.DisplayOrder
	p.Touch()
}
