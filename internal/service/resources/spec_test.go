package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/format"
	"github.com/m04kA/SMC-GymConsole/internal/listing"
)

func assertColumns[T any](t *testing.T, spec Spec[T]) {
	t.Helper()
	var zero T

	fields := append([]string{}, spec.SearchFields...)
	fields = append(fields, spec.FilterFields...)
	for _, c := range spec.Columns {
		fields = append(fields, c.Field)
	}
	for _, field := range fields {
		_, ok := listing.Lookup(zero, field)
		assert.True(t, ok, "%s: unknown field %q", spec.Name, field)
	}
}

func TestEquipmentSpec_Analytics(t *testing.T) {
	f, _ := format.New("en", "USD")
	spec := EquipmentSpec(f)

	analytics := spec.Analytics([]domain.Equipment{
		{Name: "Dumbbell", Quantity: 10, Price: 20, Status: "working"},
		{Name: "Treadmill", Quantity: 2, Price: 1000, Status: "maintenance"},
		{Name: "Kettlebell", Quantity: 4, Price: 25, Status: "working"},
	}).(EquipmentAnalytics)

	assert.Equal(t, 14, analytics.Units["working"])
	assert.Equal(t, 2, analytics.Units["maintenance"])
	assert.Equal(t, 2300.0, analytics.TotalValue)
}

func TestBroadcastSpec_NewBroadcastIsDraft(t *testing.T) {
	spec := BroadcastSpec()
	b := &domain.Broadcast{Title: "Новогодние скидки"}

	spec.Normalize(b)
	assert.Equal(t, domain.BroadcastDraft, b.Status)
}

func TestDayPassSpec_AmountAnalytics(t *testing.T) {
	f, _ := format.New("en", "USD")
	spec := DayPassSpec(f)

	analytics := spec.Analytics([]domain.DayPass{{Price: 10}, {Price: 12.5}}).(AmountAnalytics)
	assert.Equal(t, 2, analytics.Count)
	assert.Equal(t, 22.5, analytics.TotalAmount)
	assert.Contains(t, analytics.FormattedTotal, "22.5")
}
