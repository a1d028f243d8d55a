package resources_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/jrsteele09/greenos-console/credentials/storefake"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/jrsteele09/greenos-console/resources"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	mux   *http.ServeMux
	store *storefake.FakeStore
	res   *resources.Resources

	lock  sync.Mutex
	paths []string
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	f := &testFixture{
		mux: http.NewServeMux(),
		store: storefake.NewFakeStoreWith(map[credentials.Key]string{
			credentials.AccessTokenKey:  "A1",
			credentials.RefreshTokenKey: "R1",
		}),
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		f.paths = append(f.paths, r.Method+" "+r.URL.RequestURI())
		f.lock.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	f.res = resources.New(apiclient.New(server.URL, f.store))
	return f
}

func (f *testFixture) requested() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.paths...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestSensors_SummaryAndReadings(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("GET /api/v1/farms/f1/sensors/summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"sensor_id": "s1", "sensor_type": "temperature", "name": "Air", "latest_value": 21.5, "latest_reading_at": "2025-05-01T08:00:00", "status": "normal"},
		})
	})
	f.mux.HandleFunc("GET /api/v1/farms/f1/sensors/s1/readings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "sensor_id": "s1", "value": 6.1, "recorded_at": "2025-05-01T08:00:00Z", "received_at": "2025-05-01T08:00:01Z"},
		})
	})

	summary, err := f.res.Sensors.Summary(context.Background(), "f1")
	require.NoError(t, err)
	require.Len(t, summary, 1)
	require.InDelta(t, 21.5, *summary[0].LatestValue, 0.001)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	readings, err := f.res.Sensors.Readings(context.Background(), "f1", "s1", resources.ReadingQuery{Start: start, Limit: 50})
	require.NoError(t, err)
	require.Len(t, readings, 1)

	paths := f.requested()
	require.Equal(t, "GET /api/v1/farms/f1/sensors/s1/readings?limit=50&start=2025-05-01T00%3A00%3A00Z", paths[1])
}

func TestAlerts_ListAcknowledgeCount(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("GET /api/v1/farms/f1/alerts/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"items": []map[string]any{{"id": "a1", "severity": "critical", "title": "pH high", "status": r.URL.Query().Get("status"), "triggered_value": 8.2, "created_at": "2025-05-01T08:00:00"}},
			"total": 1, "skip": 0, "limit": 20,
		})
	})
	f.mux.HandleFunc("POST /api/v1/farms/f1/alerts/a1/acknowledge", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, map[string]any{"id": "a1", "status": "acknowledged", "message": body["notes"], "created_at": "2025-05-01T08:00:00"})
	})
	f.mux.HandleFunc("GET /api/v1/farms/f1/alerts/count/active", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"count": 4})
	})

	page, err := f.res.Alerts.List(context.Background(), "f1", apiclient.Params("status", "active", "zone", ""))
	require.NoError(t, err)
	require.Equal(t, "active", page.Items[0].Status)

	alert, err := f.res.Alerts.Acknowledge(context.Background(), "f1", "a1", "checked probe")
	require.NoError(t, err)
	require.Equal(t, "acknowledged", alert.Status)
	require.Equal(t, "checked probe", alert.Message)

	count, err := f.res.Alerts.CountActive(context.Background(), "f1")
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestCrops_CyclesScopedByQuery(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("GET /api/v1/crops/cycles", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"items": []map[string]any{{
				"id": "c1", "farm_id": r.URL.Query().Get("farm_id"), "batch_code": "LET-001",
				"seeded_at": "2025-04-01", "expected_harvest_at": "2025-05-10", "status": "growing",
				"crop_profile": map[string]any{"id": "p1", "name": "Lettuce"},
			}},
			"total": 1, "skip": 0, "limit": 20,
		})
	})

	page, err := f.res.Crops.Cycles(context.Background(), "f1", url.Values{"status": {"growing"}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	cycle := page.Items[0]
	require.Equal(t, "f1", cycle.FarmID)
	require.Equal(t, "Lettuce", cycle.CropName())
	require.Equal(t, "2025-05-10", cycle.ExpectedHarvestAt.String())
}

func TestHarvests_CreateSendsCalendarDate(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("POST /api/v1/farms/f1/harvests/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusCreated, map[string]any{
			"id": "h1", "crop_cycle_id": body["crop_cycle_id"], "harvest_date": body["harvest_date"],
			"weight_kg": body["weight_kg"], "grade": "A", "waste_kg": 0, "created_at": "2025-05-10T12:00:00",
		})
	})

	harvest, err := f.res.Harvests.Create(context.Background(), "f1", resources.HarvestInput{
		CropCycleID: "c1",
		HarvestDate: apiclient.NewDate(2025, time.May, 10),
		WeightKG:    12.5,
	})
	require.NoError(t, err)
	require.Equal(t, "2025-05-10", harvest.HarvestDate.String())
	require.InDelta(t, 12.5, harvest.WeightKG, 0.001)
}

func TestFinance_PeriodBoundsQueries(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("GET /api/v1/farms/f1/finance/revenue-summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"total_revenue": 1200, "total_costs": 300, "net_profit": 900, "profit_margin": 75})
	})
	f.mux.HandleFunc("GET /api/v1/farms/f1/finance/costs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"items": []any{}, "total": 0, "skip": 0, "limit": 20})
	})

	start := apiclient.NewDate(2025, time.April, 1)
	end := apiclient.NewDate(2025, time.April, 30)
	summary, err := f.res.Finance.RevenueSummary(context.Background(), "f1", resources.Period{Start: &start, End: &end})
	require.NoError(t, err)
	require.InDelta(t, 900, summary.NetProfit, 0.001)

	_, err = f.res.Finance.RevenueSummary(context.Background(), "f1", resources.Period{})
	require.NoError(t, err)

	filter := resources.Period{Start: &start}.Values()
	filter.Set("category", "energy")
	_, err = f.res.Finance.Costs(context.Background(), "f1", filter)
	require.NoError(t, err)

	require.Equal(t, []string{
		"GET /api/v1/farms/f1/finance/revenue-summary?end_date=2025-04-30&start_date=2025-04-01",
		"GET /api/v1/farms/f1/finance/revenue-summary",
		"GET /api/v1/farms/f1/finance/costs?category=energy&start_date=2025-04-01",
	}, f.requested())
}

func TestLightingAndDosingCommands(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("POST /api/v1/farms/f1/lighting/zones/lz1/command", func(w http.ResponseWriter, r *http.Request) {
		var cmd resources.LightCommand
		_ = json.NewDecoder(r.Body).Decode(&cmd)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Light command '" + cmd.Action + "' sent successfully"})
	})
	f.mux.HandleFunc("POST /api/v1/farms/f1/dosing/pumps/p1/dose", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]float64
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusCreated, map[string]any{
			"id": "e1", "pump_id": "p1", "trigger": "manual", "volume_ml": body["volume_ml"],
			"duration_seconds": 5, "sensor_reading_before": 6.2, "status": "completed", "created_at": "2025-05-01T08:00:00",
		})
	})

	msg, err := f.res.Lighting.Command(context.Background(), "f1", "lz1", resources.LightCommand{Action: "on"})
	require.NoError(t, err)
	require.Equal(t, "Light command 'on' sent successfully", msg)

	event, err := f.res.Dosing.Dose(context.Background(), "f1", "p1", 25)
	require.NoError(t, err)
	require.Equal(t, "manual", event.Trigger)
	require.InDelta(t, 25, event.VolumeML, 0.001)
}

func TestResourceCallsShareTheRefreshPipeline(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "A2", "refresh_token": "R2", "token_type": "bearer"})
	})
	f.mux.HandleFunc("GET /api/v1/farms/f1/tasks/overdue", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer A2" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token expired"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"id": "t1", "title": "Flush lines", "status": "pending", "due_date": "2025-04-30", "created_at": "2025-04-01T00:00:00"}})
	})

	tasks, err := f.res.Tasks.Overdue(context.Background(), "f1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "A2", f.store.Snapshot()[credentials.AccessTokenKey])
	require.Equal(t, []string{
		"GET /api/v1/farms/f1/tasks/overdue",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/farms/f1/tasks/overdue",
	}, f.requested())
}

func TestBackendRejectionCarriesDetail(t *testing.T) {
	f := setupTestFixture(t)
	f.mux.HandleFunc("POST /api/v1/farms/f1/inventory/items/i1/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Insufficient stock", "error_code": "INSUFFICIENT_STOCK"})
	})

	_, err := f.res.Inventory.CreateTransaction(context.Background(), "f1", "i1", resources.StockTransactionInput{TransactionType: "usage", Quantity: 99})
	require.ErrorIs(t, err, autherrors.ErrBackendRejected)
	var re *apiclient.ResponseError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "Insufficient stock", re.Message())
	require.Equal(t, "INSUFFICIENT_STOCK", re.ErrorCode)
}

func TestInventoryItem_LowStock(t *testing.T) {
	threshold := 10.0
	require.True(t, resources.InventoryItem{CurrentStock: 10, ReorderThreshold: &threshold}.LowStock())
	require.False(t, resources.InventoryItem{CurrentStock: 11, ReorderThreshold: &threshold}.LowStock())
	require.False(t, resources.InventoryItem{CurrentStock: 0}.LowStock())
}
