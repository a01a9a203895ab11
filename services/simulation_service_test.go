package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func TestSimulationTickPublishesTelemetry(t *testing.T) {
	ctx := context.Background()
	hub := NewEventHub()
	home := NewHomeService(NewMemoryStore(), hub)
	climate := NewClimateService(home, hub)
	sim := NewSimulationService(NewEnergyService(home), NewWeatherService(), climate, hub, time.Minute)

	id, ch := hub.Subscribe(16)
	defer hub.Unsubscribe(id)

	telemetry := sim.Tick(ctx)
	require.NotNil(t, telemetry.Energy)
	require.NotNil(t, telemetry.Weather)

	// 种子数据中卧室温度低于下限，首次执行会打开暖气
	heater, err := home.GetDevice(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, heater.Status)

	var types []EventType
	for len(ch) > 0 {
		e := <-ch
		types = append(types, e.Type)
	}
	assert.Contains(t, types, EventTelemetry)
	assert.Contains(t, types, EventClimate)
}

func TestSimulationStartStop(t *testing.T) {
	hub := NewEventHub()
	home := NewHomeService(NewMemoryStore(), nil)
	sim := NewSimulationService(NewEnergyService(home), nil, nil, hub, 10*time.Millisecond)

	id, ch := hub.Subscribe(64)
	defer hub.Unsubscribe(id)

	sim.Start(context.Background())
	sim.Start(context.Background())

	select {
	case e := <-ch:
		assert.Equal(t, EventTelemetry, e.Type)
	case <-time.After(time.Second):
		t.Fatal("no telemetry event within 1s")
	}

	sim.Stop()
	sim.Stop()
	for len(ch) > 0 {
		<-ch
	}
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, len(ch))
}

func TestSimulationStopsWithContext(t *testing.T) {
	home := NewHomeService(NewMemoryStore(), nil)
	sim := NewSimulationService(NewEnergyService(home), nil, nil, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	sim.Start(ctx)
	cancel()
	sim.Stop()
}
