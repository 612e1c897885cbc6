package dto

import (
	"protheo/internal/core/entity"
	"protheo/internal/domain/catalogs/client"
)

// CreateClientRequest for creating a client.
type CreateClientRequest struct {
	Name         string        `json:"name" binding:"required"`
	Contact      string        `json:"contact" binding:"required"`
	Email        *string       `json:"email"`
	TaxID        *string       `json:"taxId"`
	Registration *string       `json:"registration"`
	Specialty    *string       `json:"specialty"`
	Address      *string       `json:"address"`
	Status       client.Status `json:"status"`
}

// ToEntity converts the request to a domain entity.
func (r CreateClientRequest) ToEntity() *client.Client {
	return &client.Client{
		Base:         entity.NewBase(),
		Name:         r.Name,
		Contact:      r.Contact,
		Email:        r.Email,
		TaxID:        r.TaxID,
		Registration: r.Registration,
		Specialty:    r.Specialty,
		Address:      r.Address,
		Status:       r.Status,
	}
}

// UpdateClientRequest for updating a client.
type UpdateClientRequest struct {
	Name         string        `json:"name" binding:"required"`
	Contact      string        `json:"contact" binding:"required"`
	Email        *string       `json:"email"`
	TaxID        *string       `json:"taxId"`
	Registration *string       `json:"registration"`
	Specialty    *string       `json:"specialty"`
	Address      *string       `json:"address"`
	Status       client.Status `json:"status"`
}

// ApplyTo applies the request to an existing entity.
func (r UpdateClientRequest) ApplyTo(c *client.Client) {
	c.Name = r.Name
	c.Contact = r.Contact
	c.Email = r.Email
	c.TaxID = r.TaxID
	c.Registration = r.Registration
	c.Specialty = r.Specialty
	c.Address = r.Address
	c.Status = r.Status
	c.Touch()
}
