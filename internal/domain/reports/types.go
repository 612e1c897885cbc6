// Package reports derives read-only views from full document snapshots.
// Nothing here is stored; every figure is recomputed on demand.
package reports

import (
	"time"

	"protheo/internal/core/types"
)

// MonthlySummary aggregates the ledger for one calendar month. Settled
// and pending entries are totalled separately; the balance considers
// settled entries only.
type MonthlySummary struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`

	RealIncome     types.Money `json:"realIncome"`
	RealExpense    types.Money `json:"realExpense"`
	PendingIncome  types.Money `json:"pendingIncome"`
	PendingExpense types.Money `json:"pendingExpense"`

	Balance types.Money `json:"balance"`
}

// Dashboard is the landing page rollup.
type Dashboard struct {
	TotalOrders     int `json:"totalOrders"`
	DeliveredOrders int `json:"deliveredOrders"`
	ActiveOrders    int `json:"activeOrders"`
	PendingStart    int `json:"pendingStart"`
	DueToday        int `json:"dueToday"`
	OpenTasks       int `json:"openTasks"`

	// WeeklyRevenue sums settled income over the trailing seven days
	WeeklyRevenue types.Money `json:"weeklyRevenue"`

	CurrentMonth MonthlySummary `json:"currentMonth"`
}
