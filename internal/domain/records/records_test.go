package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	Name   string
	Status string
	Date   time.Time
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFilter_PreservesOrderAndIsIdempotent(t *testing.T) {
	items := []rec{
		{Name: "Coroa", Status: "Pending"},
		{Name: "Protocolo", Status: "Delivered"},
		{Name: "Faceta", Status: "Pending"},
		{Name: "Placa", Status: "InProduction"},
	}
	pending := Predicate[rec](func(r rec) bool { return r.Status == "Pending" })

	once := Filter(items, pending)
	require.Len(t, once, 2)
	assert.Equal(t, "Coroa", once[0].Name)
	assert.Equal(t, "Faceta", once[1].Name)

	twice := Filter(once, pending)
	assert.Equal(t, once, twice)
}

func TestFilter_NoPredicatesReturnsCopy(t *testing.T) {
	items := []rec{{Name: "a"}, {Name: "b"}}

	out := Filter(items)
	require.Equal(t, items, out)

	out[0].Name = "changed"
	assert.Equal(t, "a", items[0].Name)
}

func TestFilter_NilPredicatesSkipped(t *testing.T) {
	items := []rec{{Name: "a"}, {Name: "b"}}
	out := Filter(items, nil, nil)
	assert.Equal(t, items, out)
}

func TestFilter_PredicatesAreANDCombined(t *testing.T) {
	items := []rec{
		{Name: "Coroa Zircônia", Status: "Pending"},
		{Name: "Coroa Metal", Status: "Delivered"},
		{Name: "Faceta", Status: "Pending"},
	}

	out := Filter(items,
		TextPredicate("coroa", func(r rec) []string { return []string{r.Name} }),
		Equals("Pending", func(r rec) string { return r.Status }),
	)

	require.Len(t, out, 1)
	assert.Equal(t, "Coroa Zircônia", out[0].Name)
}

func TestTextMatch(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty term matches everything", "", []string{"whatever"}, true},
		{"case insensitive", "COROA", []string{"Coroa Zircônia"}, true},
		{"substring", "zirc", []string{"Coroa Zircônia"}, true},
		{"OR across fields", "maria", []string{"Coroa", "Dra. Maria"}, true},
		{"no match", "inlay", []string{"Coroa", "Faceta"}, false},
		{"no fields", "x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextMatch(tt.term, tt.fields...))
		})
	}
}

func TestInDateRange(t *testing.T) {
	from := day("2026-03-01")
	to := day("2026-03-31")

	assert.True(t, InDateRange(day("2026-03-01"), &from, &to), "lower bound inclusive")
	assert.True(t, InDateRange(day("2026-03-31"), &from, &to), "upper bound inclusive")
	assert.True(t, InDateRange(day("2026-03-15"), &from, &to))
	assert.False(t, InDateRange(day("2026-02-28"), &from, &to))
	assert.False(t, InDateRange(day("2026-04-01"), &from, &to))

	// one-sided ranges leave the other side open
	assert.True(t, InDateRange(day("2030-01-01"), &from, nil))
	assert.True(t, InDateRange(day("2020-01-01"), nil, &to))
	assert.True(t, InDateRange(day("2026-03-15"), nil, nil))
}

func TestInDateRange_ComparesByCalendarDate(t *testing.T) {
	to := day("2026-03-31")
	lateInDay := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	assert.True(t, InDateRange(lateInDay, nil, &to))
}

func TestDateRangePredicate_NilWhenUnbounded(t *testing.T) {
	assert.Nil(t, DateRangePredicate[rec](nil, nil, func(r rec) time.Time { return r.Date }))
}

func TestSortStable_DoesNotMutateInput(t *testing.T) {
	items := []rec{{Name: "b"}, {Name: "a"}, {Name: "c"}}

	out := SortStable(items, func(x, y rec) bool { return x.Name < y.Name })

	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", items[0].Name, "input untouched")
}

func TestSortStable_KeepsEqualElementsInOrder(t *testing.T) {
	items := []rec{
		{Name: "first", Status: "x"},
		{Name: "second", Status: "x"},
		{Name: "third", Status: "x"},
	}

	out := SortStable(items, func(a, b rec) bool { return a.Status < b.Status })

	assert.Equal(t, "first", out[0].Name)
	assert.Equal(t, "second", out[1].Name)
	assert.Equal(t, "third", out[2].Name)
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(day("2026-03-15"), time.March, 2026))
	assert.False(t, SameMonth(day("2026-04-01"), time.March, 2026))
	assert.False(t, SameMonth(day("2025-03-15"), time.March, 2026))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 15, 22, 30, 0, 0, time.UTC)
	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, day("2026-03-16")))
}
