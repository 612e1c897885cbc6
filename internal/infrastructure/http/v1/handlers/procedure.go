package handlers

import (
	"protheo/internal/domain/catalogs/procedure"
	"protheo/internal/infrastructure/http/v1/dto"
)

// ProcedureHandler handles the procedure catalog endpoints.
type ProcedureHandler struct {
	*CrudHandler[*procedure.Procedure, dto.CreateProcedureRequest, dto.UpdateProcedureRequest]
}

// NewProcedureHandler creates a new procedure handler.
func NewProcedureHandler(base *BaseHandler, service *procedure.Service) *ProcedureHandler {
	return &ProcedureHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[
			*procedure.Procedure,
			dto.CreateProcedureRequest,
			dto.UpdateProcedureRequest,
		]{
			Service: service.CrudService,
			MapCreate: func(req dto.CreateProcedureRequest) *procedure.Procedure {
				return req.ToEntity()
			},
			MapUpdate: func(req dto.UpdateProcedureRequest, existing *procedure.Procedure) *procedure.Procedure {
				req.ApplyTo(existing)
				return existing
			},
		}),
	}
}
