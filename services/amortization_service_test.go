package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func newTestAmortization(t *testing.T) (*HomeService, InterfaceAmortizationService, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	home := NewHomeService(store, nil)
	return home, NewAmortizationService(store, home), store
}

func TestAmortizationInitialisesFromDevices(t *testing.T) {
	ctx := context.Background()
	_, svc, store := newTestAmortization(t)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 7)
	assert.Equal(t, 6, views[0].DeviceID)
	assert.Equal(t, "Initial data for Bedside Lamp", views[0].Notes)
	assert.Equal(t, "Bedroom", views[0].RoomName)

	var stored []models.AmortizationData
	require.True(t, LoadJSON(ctx, store, KeyAmortizationData, &stored))
	assert.Len(t, stored, 7)
}

func TestAmortizationSummary(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestAmortization(t)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.TotalDevices)
	assert.Equal(t, 7, summary.AmortizedDevices)
	assert.InDelta(t, 11950, summary.TotalInvestment, 1e-9)
	assert.InDelta(t, 150.5, summary.TotalMonthlySavings, 1e-9)
	assert.InDelta(t, 87.09, summary.AveragePaybackPeriod, 0.01)
}

func TestAmortizationUpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestAmortization(t)

	view, err := svc.Upsert(ctx, models.AmortizationData{DeviceID: 5, InitialCost: 30, MonthlySavings: 2})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLifespanMonths, view.Lifespan)
	assert.Equal(t, 15.0, view.PaybackPeriod)
	assert.True(t, view.IsAmortized)

	view, err = svc.Upsert(ctx, models.AmortizationData{DeviceID: 5, InitialCost: 300, MonthlySavings: 2, Lifespan: 120})
	require.NoError(t, err)
	assert.False(t, view.IsAmortized)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 8)

	require.NoError(t, svc.Delete(ctx, 5))
	assert.ErrorIs(t, svc.Delete(ctx, 5), ErrAmortizationNotFound)

	_, err = svc.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrAmortizationNotFound)
}

func TestAmortizationUpsertValidates(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestAmortization(t)

	cases := []models.AmortizationData{
		{DeviceID: 5, InitialCost: 0, MonthlySavings: 2},
		{DeviceID: 5, InitialCost: 10, MonthlySavings: 0},
		{DeviceID: 5, InitialCost: 10, MonthlySavings: 2, Lifespan: 6},
		{DeviceID: 5, InitialCost: 10, MonthlySavings: 2, Lifespan: 121},
	}
	for _, c := range cases {
		_, err := svc.Upsert(ctx, c)
		assert.ErrorIs(t, err, ErrInvalidAmortization)
	}

	_, err := svc.Upsert(ctx, models.AmortizationData{DeviceID: 999, InitialCost: 10, MonthlySavings: 2})
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestAmortizationCalculate(t *testing.T) {
	_, svc, _ := newTestAmortization(t)

	result, err := svc.Calculate(models.AmortizationData{InitialCost: 1000, InstallationCost: 200, MonthlySavings: 25, Lifespan: 60})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, result.TotalCost)
	assert.Equal(t, 48.0, result.PaybackPeriod)
	assert.Equal(t, 4.0, result.PaybackYears)
	assert.Equal(t, 300.0, result.AnnualSavings)
	assert.Equal(t, 300.0, result.LifetimeValue)
	assert.True(t, result.IsAmortized)

	result, err = svc.Calculate(models.AmortizationData{InitialCost: 1000})
	require.NoError(t, err)
	assert.Zero(t, result.PaybackPeriod)
	assert.False(t, result.IsAmortized)
}

func TestAmortizationChartsAndUnamortized(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newTestAmortization(t)

	charts, err := svc.Charts(ctx)
	require.NoError(t, err)
	require.Len(t, charts.Distribution, 7)
	assert.Equal(t, "Solar Inverter", charts.Distribution[0].Name)
	assert.InDelta(t, 75.3, charts.Distribution[0].Percentage, 0.05)
	assert.Equal(t, "Bedside Lamp", charts.Payback[0].Name)
	assert.Equal(t, 1140.0, charts.Savings[0].AnnualSavings)

	var total float64
	for _, p := range charts.Distribution {
		total += p.Percentage
	}
	assert.InDelta(t, 100, total, 0.5)

	devices, err := svc.UnamortizedDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 10)
}

func TestAmortizationKeepsDeletedDeviceRecords(t *testing.T) {
	ctx := context.Background()
	home, svc, _ := newTestAmortization(t)

	_, err := svc.List(ctx)
	require.NoError(t, err)
	require.NoError(t, home.DeleteDevice(ctx, 17))

	view, err := svc.Get(ctx, 17)
	require.NoError(t, err)
	assert.Equal(t, UnknownDeviceName, view.DeviceName)
}

func TestAmortizationRecoversFromCorruptData(t *testing.T) {
	ctx := context.Background()
	_, svc, store := newTestAmortization(t)
	require.NoError(t, store.Set(ctx, KeyAmortizationData, []byte("{not json")))

	views, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 7)

	_, err = svc.Upsert(ctx, models.AmortizationData{DeviceID: 5, InitialCost: 30, MonthlySavings: 2})
	require.NoError(t, err)
	views, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 8)

	var stored []models.AmortizationData
	require.True(t, LoadJSON(ctx, store, KeyAmortizationData, &stored))
	assert.Len(t, stored, 8)
}

func TestAmortizationKeepsEmptyList(t *testing.T) {
	ctx := context.Background()
	_, svc, store := newTestAmortization(t)
	require.NoError(t, store.Set(ctx, KeyAmortizationData, []byte("[]")))

	views, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
}
