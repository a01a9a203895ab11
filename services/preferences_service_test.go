package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/models"
)

func TestPreferencesDefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferencesService(NewMemoryStore())

	prefs, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), *prefs)

	prefs, err = svc.Update(ctx, "1", models.Preferences{DevicesView: models.DevicesViewRoom})
	require.NoError(t, err)
	assert.Equal(t, models.DevicesViewRoom, prefs.DevicesView)
	assert.Equal(t, "system", prefs.Theme)

	_, err = svc.Update(ctx, "1", models.Preferences{Theme: "neon"})
	assert.ErrorIs(t, err, ErrValidation)

	other, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, models.DevicesViewGrid, other.DevicesView)

	again, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.DevicesViewRoom, again.DevicesView)
}
