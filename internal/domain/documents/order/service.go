package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
	"protheo/internal/core/types"
	"protheo/internal/domain"
	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/domain/catalogs/procedure"
	"protheo/internal/domain/pricing"
	"protheo/internal/domain/records"
)

// ProcedureCatalog supplies the procedure snapshot used to prefill prices.
type ProcedureCatalog interface {
	List(ctx context.Context) ([]*procedure.Procedure, error)
}

// MethodSource resolves payment methods referenced by id.
type MethodSource interface {
	GetByID(ctx context.Context, methodID id.ID) (*paymentmethod.PaymentMethod, error)
}

// SettingsSource supplies the configured global discount, if any.
type SettingsSource interface {
	GlobalDiscount(ctx context.Context) (*types.Percent, error)
}

// Service provides business logic for service orders. Pricing runs as a
// before-create / before-update hook so stored totals are always
// consistent with the inputs being written.
type Service struct {
	*domain.CrudService[*Order]
	repo       Repository
	procedures ProcedureCatalog
	methods    MethodSource
	settings   SettingsSource
}

// NewService creates a new Order service.
func NewService(repo Repository, procs ProcedureCatalog, methods MethodSource, settings SettingsSource) *Service {
	base := domain.NewCrudService(domain.CrudServiceConfig[*Order]{
		Repo:       repo,
		EntityName: "order",
	})

	svc := &Service{
		CrudService: base,
		repo:        repo,
		procedures:  procs,
		methods:     methods,
		settings:    settings,
	}

	base.Hooks().OnBeforeCreate(func(ctx context.Context, o *Order) error {
		return svc.price(ctx, o, false)
	})
	base.Hooks().OnBeforeUpdate(func(ctx context.Context, o *Order) error {
		return svc.price(ctx, o, true)
	})

	return svc
}

// price fills the unit value from the catalog when left at zero and
// recomputes the frozen totals. editing toggles the global discount
// fallback off.
func (s *Service) price(ctx context.Context, o *Order, editing bool) error {
	if o.UnitValue.IsZero() {
		catalog, err := s.procedures.List(ctx)
		if err != nil {
			return err
		}
		if p := pricing.FindProcedureByName(catalog, o.ServiceType); p != nil {
			o.UnitValue = p.BasePrice
		}
	}

	method, err := s.resolveMethod(ctx, o.PaymentMethodID)
	if err != nil {
		return err
	}

	global, err := s.settings.GlobalDiscount(ctx)
	if err != nil {
		return err
	}

	totals := pricing.Quote{
		Quantity:  o.Quantity,
		UnitValue: o.UnitValue,
		Method:    method,
		Global:    global,
		Editing:   editing,
	}.Totals()

	o.DiscountValue = totals.DiscountValue
	o.TotalValue = totals.TotalValue

	if o.Status == StatusDelivered && o.Delivered == nil {
		now := time.Now().UTC()
		o.Delivered = &now
	}
	if o.Status != StatusDelivered {
		o.Delivered = nil
	}

	return nil
}

// resolveMethod tolerates a dangling method id: the order keeps the
// stored reference, pricing just sees no method discount.
func (s *Service) resolveMethod(ctx context.Context, methodID *id.ID) (*paymentmethod.PaymentMethod, error) {
	if methodID == nil || id.IsNil(*methodID) {
		return nil, nil
	}
	m, err := s.methods.GetByID(ctx, *methodID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Quote prices a draft without persisting anything, mirroring the live
// recomputation shown while an order is being filled in.
func (s *Service) Quote(ctx context.Context, draft *Order, editing bool) (pricing.Totals, error) {
	if err := s.price(ctx, draft, editing); err != nil {
		return pricing.Totals{}, err
	}
	return pricing.Totals{
		Subtotal:      draft.UnitValue.Mul(decimal.NewFromInt(int64(draft.Quantity))),
		DiscountValue: draft.DiscountValue,
		TotalValue:    draft.TotalValue,
	}, nil
}

// ListFilter holds the order list view filter dimensions.
type ListFilter struct {
	Search  string
	Status  Status
	DueFrom *time.Time
	DueTo   *time.Time
}

// Search returns orders matching the filter, preserving store order.
func (s *Service) Search(ctx context.Context, f ListFilter) ([]*Order, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return records.Filter(all,
		records.TextPredicate(f.Search, func(o *Order) []string {
			return []string{o.DentistName, o.PatientName, o.ServiceType}
		}),
		records.Equals(string(f.Status), func(o *Order) string { return string(o.Status) }),
		records.DateRangePredicate(f.DueFrom, f.DueTo, func(o *Order) time.Time { return o.DueDate }),
	), nil
}
