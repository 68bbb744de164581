package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade_queue/internal/client"
	"arcade_queue/internal/geofence"
	"arcade_queue/internal/handlers"
	"arcade_queue/internal/models"
	"arcade_queue/internal/queue"
	"arcade_queue/internal/testsupport"
)

func newClient(t *testing.T, prefix string) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := queue.NewService(testsupport.NewDB(t), nil)
	gate := geofence.Gate{Venue: geofence.Coordinate{Lat: -7.782357, Lon: 110.401167}, RadiusKm: 0.5}
	h := handlers.New(svc, gate, func(context.Context) error { return nil })

	r := gin.New()
	h.SetRoutes(r.Group(prefix))
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL+prefix, nil)
	require.NoError(t, err)
	return c
}

func TestClient_RoundTrip(t *testing.T) {
	c := newClient(t, "/api")
	ctx := context.Background()

	cab, err := c.CreateCabinet(ctx, "Pac-Man")
	require.NoError(t, err)
	other, err := c.CreateCabinet(ctx, "Galaga")
	require.NoError(t, err)

	alice, err := c.AddEntry(ctx, cab.ID, models.EntryTypeSolo, []string{"Alice"})
	require.NoError(t, err)
	duo, err := c.AddEntry(ctx, cab.ID, models.EntryTypeDuo, []string{"Bob", "Cara"})
	require.NoError(t, err)

	view, err := c.Cabinet(ctx, cab.ID)
	require.NoError(t, err)
	require.NotNil(t, view.CurrentSession)
	assert.Equal(t, alice.ID, view.CurrentSession.ID)

	require.NoError(t, c.Cycle(ctx, alice.ID))
	view, err = c.Cabinet(ctx, cab.ID)
	require.NoError(t, err)
	assert.Equal(t, duo.ID, view.CurrentSession.ID)

	require.NoError(t, c.Reorder(ctx, cab.ID, []uint{alice.ID, duo.ID}))
	view, err = c.Cabinet(ctx, cab.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, view.CurrentSession.ID)

	updated, err := c.UpdatePlayers(ctx, duo.ID, []string{"Bob", "Dana"})
	require.NoError(t, err)
	assert.Equal(t, "Bob & Dana", updated.PlayerNames())

	require.NoError(t, c.Move(ctx, duo.ID, other.ID))
	entries, err := c.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	renamed, err := c.RenameCabinet(ctx, other.ID, "Galaga '88")
	require.NoError(t, err)
	assert.Equal(t, "Galaga '88", renamed.Name)

	require.NoError(t, c.DeleteEntry(ctx, alice.ID))
	require.NoError(t, c.DeleteCabinet(ctx, other.ID))
	entries, err = c.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, c.Health(ctx))
	d, err := c.Geofence(ctx, geofence.Coordinate{Lat: -7.782357, Lon: 110.401167})
	require.NoError(t, err)
	assert.True(t, d.CanEdit)
}

func TestClient_Errors(t *testing.T) {
	c := newClient(t, "")
	ctx := context.Background()

	_, err := c.RenameCabinet(ctx, 42, "Nope")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "CABINET_NOT_FOUND", apiErr.Code)

	_, err = c.Cabinet(ctx, 42)
	assert.True(t, client.IsNotFound(err))

	_, err = c.AddEntry(ctx, 42, models.EntryTypeSolo, []string{"Alice"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
}

func TestClient_HealthFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"db unreachable"}`))
	}))
	defer ts.Close()

	c, err := client.New(ts.URL, nil)
	require.NoError(t, err)
	err = c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db unreachable")
}

func TestNew_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "localhost:8080", "://nope"} {
		_, err := client.New(raw, nil)
		assert.Error(t, err, raw)
	}
}
