package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"protheo/internal/domain/documents/order"
	"protheo/internal/domain/documents/task"
	"protheo/internal/domain/documents/transaction"
	"protheo/internal/domain/records"
)

// OrderSource supplies the order snapshot.
type OrderSource interface {
	List(ctx context.Context) ([]*order.Order, error)
}

// LedgerSource supplies the transaction snapshot.
type LedgerSource interface {
	List(ctx context.Context) ([]*transaction.Transaction, error)
}

// TaskSource supplies the task snapshot.
type TaskSource interface {
	List(ctx context.Context) ([]*task.Task, error)
}

// SummarizeMonth totals the ledger for one calendar month.
func SummarizeMonth(txns []*transaction.Transaction, month time.Month, year int) MonthlySummary {
	s := MonthlySummary{
		Month:          month,
		Year:           year,
		RealIncome:     decimal.Zero,
		RealExpense:    decimal.Zero,
		PendingIncome:  decimal.Zero,
		PendingExpense: decimal.Zero,
		Balance:        decimal.Zero,
	}

	for _, t := range txns {
		if !records.SameMonth(t.Date, month, year) {
			continue
		}

		paid := t.Status == transaction.StatusPaid
		switch t.Type {
		case transaction.TypeIncome:
			if paid {
				s.RealIncome = s.RealIncome.Add(t.Amount)
			} else {
				s.PendingIncome = s.PendingIncome.Add(t.Amount)
			}
		case transaction.TypeExpense:
			if paid {
				s.RealExpense = s.RealExpense.Add(t.Amount)
			} else {
				s.PendingExpense = s.PendingExpense.Add(t.Amount)
			}
		}
	}

	s.Balance = s.RealIncome.Sub(s.RealExpense)
	return s
}

// WeeklyRevenue sums settled income with a timestamp after the trailing
// seven-day cutoff. There is no upper bound: a paid receipt dated ahead
// of now still counts.
func WeeklyRevenue(txns []*transaction.Transaction, now time.Time) decimal.Decimal {
	cutoff := now.Add(-7 * 24 * time.Hour)
	sum := decimal.Zero
	for _, t := range txns {
		if t.Type != transaction.TypeIncome || t.Status != transaction.StatusPaid {
			continue
		}
		if t.Date.Before(cutoff) {
			continue
		}
		sum = sum.Add(t.Amount)
	}
	return sum
}

// BuildDashboard derives the landing page rollup from full snapshots.
func BuildDashboard(orders []*order.Order, txns []*transaction.Transaction, tasks []*task.Task, now time.Time) Dashboard {
	d := Dashboard{
		TotalOrders:   len(orders),
		WeeklyRevenue: WeeklyRevenue(txns, now),
		CurrentMonth:  SummarizeMonth(txns, now.UTC().Month(), now.UTC().Year()),
	}

	for _, o := range orders {
		// active means still being worked on: pending or in production;
		// finished orders just await delivery
		switch o.Status {
		case order.StatusDelivered:
			d.DeliveredOrders++
		case order.StatusPending:
			d.PendingStart++
			d.ActiveOrders++
		case order.StatusInProduction:
			d.ActiveOrders++
		}
		if o.Status != order.StatusDelivered && records.SameDate(o.DueDate, now) {
			d.DueToday++
		}
	}

	for _, t := range tasks {
		if !t.Completed {
			d.OpenTasks++
		}
	}

	return d
}

// Service exposes the reports over live snapshots.
type Service struct {
	orders OrderSource
	ledger LedgerSource
	tasks  TaskSource
}

// NewService creates a new reports service.
func NewService(orders OrderSource, ledger LedgerSource, tasks TaskSource) *Service {
	return &Service{orders: orders, ledger: ledger, tasks: tasks}
}

// Monthly returns the finance summary for the given month.
func (s *Service) Monthly(ctx context.Context, month time.Month, year int) (MonthlySummary, error) {
	txns, err := s.ledger.List(ctx)
	if err != nil {
		return MonthlySummary{}, err
	}
	return SummarizeMonth(txns, month, year), nil
}

// Dashboard returns the landing page rollup as of now.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	txns, err := s.ledger.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(orders, txns, tasks, time.Now().UTC()), nil
}
