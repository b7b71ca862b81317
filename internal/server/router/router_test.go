package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/barstock/internal/cache"
	"github.com/mamadbah2/barstock/internal/events"
	"github.com/mamadbah2/barstock/internal/events/eventstest"
	"github.com/mamadbah2/barstock/internal/repository/memory"
	"github.com/mamadbah2/barstock/internal/server/handlers"
	"github.com/mamadbah2/barstock/internal/server/middleware"
	"github.com/mamadbah2/barstock/internal/service/inventory"
	"github.com/mamadbah2/barstock/internal/service/orders"
	"github.com/mamadbah2/barstock/internal/service/purchases"
	"github.com/mamadbah2/barstock/internal/service/reporting"
	"github.com/mamadbah2/barstock/internal/service/sessions"
)

func newTestEngine(t *testing.T, reportCache cache.Store) (*gin.Engine, *eventstest.Recorder) {
	t.Helper()

	store := memory.NewStore()
	recorder := &eventstest.Recorder{}
	reportingSvc := reporting.NewService(store, nil, nil)

	h := Handlers{
		Inventory: handlers.NewInventoryHandler(inventory.NewService(store, recorder, nil), nil),
		Sessions:  handlers.NewSessionHandler(sessions.NewService(store, recorder, nil), nil),
		Purchases: handlers.NewPurchaseHandler(purchases.NewService(store, recorder, nil), nil),
		Reports:   handlers.NewReportHandler(reportingSvc, nil),
		Orders:    handlers.NewOrderHandler(orders.NewService(store, reportingSvc, nil), nil),
	}
	return New(h, Options{ReportCache: reportCache}, nil), recorder
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func createBeer(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	rec := do(t, engine, http.MethodPost, "/api/items", map[string]any{
		"name":             "Big Leo",
		"category":         "B",
		"units_per_case":   12,
		"min_stock":        24,
		"max_stock":        96,
		"primary_supplier": "Singha99",
		"cost_per_unit":    45,
		"cost_per_case":    540,
		"bought_by_case":   true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var item struct {
		ID           string `json:"id"`
		CategoryName string `json:"category_name"`
	}
	decode(t, rec, &item)
	require.NotEmpty(t, item.ID)
	assert.Equal(t, "Beer", item.CategoryName)
	return item.ID
}

func TestHealthz(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	rec := do(t, engine, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWebhookRoutesAbsentWithoutHandler(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	rec := do(t, engine, http.MethodGet, "/webhook", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemLifecycle(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	id := createBeer(t, engine)

	rec := do(t, engine, http.MethodGet, "/api/items/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, engine, http.MethodGet, "/api/items/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Item not found"}`, rec.Body.String())

	rec = do(t, engine, http.MethodPost, "/api/items", map[string]any{
		"name": "Mystery", "category": "X", "primary_supplier": "Makro",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, engine, http.MethodDelete, "/api/items/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Item deleted successfully"}`, rec.Body.String())

	rec = do(t, engine, http.MethodDelete, "/api/items/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCountsDriveShoppingListAndRestock(t *testing.T) {
	engine, recorder := newTestEngine(t, nil)
	id := createBeer(t, engine)

	rec := do(t, engine, http.MethodPost, "/api/stock-counts", map[string]any{
		"item_id": id, "main_bar": 4, "beer_bar": 6,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var count struct {
		TotalCount int `json:"total_count"`
	}
	decode(t, rec, &count)
	assert.Equal(t, 10, count.TotalCount)
	assert.Contains(t, recorder.Types(), events.StockLow)

	rec = do(t, engine, http.MethodGet, "/api/shopping-list", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list map[string]struct {
		Items []struct {
			NeedToBuy int `json:"need_to_buy"`
		} `json:"items"`
	}
	decode(t, rec, &list)
	require.Contains(t, list, "Singha99")
	require.Len(t, list["Singha99"].Items, 1)
	assert.Equal(t, 86, list["Singha99"].Items[0].NeedToBuy)

	rec = do(t, engine, http.MethodGet, "/api/quick-restock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var low []map[string]any
	decode(t, rec, &low)
	assert.Len(t, low, 1)

	rec = do(t, engine, http.MethodGet, "/api/shopping-list-text/Makro", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Supplier not found in shopping list"}`, rec.Body.String())
}

func TestCaseCountEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	id := createBeer(t, engine)

	rec := do(t, engine, http.MethodPost, "/api/stock-counts-enhanced/"+id, map[string]any{
		"main_bar":     map[string]int{"cases": 2, "singles": 3},
		"storage_room": map[string]int{"cases": 1},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var count struct {
		MainBar     int `json:"main_bar"`
		StorageRoom int `json:"storage_room"`
		TotalCount  int `json:"total_count"`
	}
	decode(t, rec, &count)
	assert.Equal(t, 27, count.MainBar)
	assert.Equal(t, 12, count.StorageRoom)
	assert.Equal(t, 39, count.TotalCount)
}

func TestSessionsAndUsageSummary(t *testing.T) {
	engine, recorder := newTestEngine(t, nil)
	id := createBeer(t, engine)

	rec := do(t, engine, http.MethodGet, "/api/stock-sessions/current", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())

	rec = do(t, engine, http.MethodPost, "/api/stock-sessions", map[string]any{"session_name": "Monday count"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session struct {
		ID       string `json:"id"`
		IsActive bool   `json:"is_active"`
	}
	decode(t, rec, &session)
	assert.True(t, session.IsActive)

	rec = do(t, engine, http.MethodPost, "/api/stock-sessions/"+session.ID+"/save-counts", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, engine, http.MethodPost, "/api/stock-counts", map[string]any{"item_id": id, "main_bar": 50})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, engine, http.MethodPost, "/api/stock-sessions/"+session.ID+"/save-counts", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t,
		`{"message":"Saved 1 stock counts to session","session_id":"`+session.ID+`","count":1}`,
		rec.Body.String())
	assert.Contains(t, recorder.Types(), events.SessionCountsSaved)

	rec = do(t, engine, http.MethodPost, "/api/stock-sessions/missing/save-counts", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, engine, http.MethodGet, "/api/reports/usage-summary", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Need at least 2 sessions with saved counts to generate a usage report"}`, rec.Body.String())

	rec = do(t, engine, http.MethodPost, "/api/reports/session-comparison/"+session.ID+"/"+session.ID+"/export", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPurchasesAndOrders(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	id := createBeer(t, engine)

	rec := do(t, engine, http.MethodPost, "/api/stock-sessions", map[string]any{"session_name": "Restock run"})
	require.Equal(t, http.StatusOK, rec.Code)
	var session struct {
		ID string `json:"id"`
	}
	decode(t, rec, &session)

	rec = do(t, engine, http.MethodPost, "/api/purchases", map[string]any{
		"session_id": session.ID, "item_id": id, "planned_quantity": 24, "actual_quantity": 24,
		"cost_per_unit": 45, "total_cost": 1080, "supplier": "Singha99",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var purchase struct {
		ID string `json:"id"`
	}
	decode(t, rec, &purchase)

	rec = do(t, engine, http.MethodGet, "/api/purchases/session/"+session.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bySession []map[string]any
	decode(t, rec, &bySession)
	assert.Len(t, bySession, 1)

	rec = do(t, engine, http.MethodDelete, "/api/purchases/"+purchase.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, engine, http.MethodGet, "/api/purchases/"+purchase.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, engine, http.MethodPost, "/api/shopping-orders", map[string]any{"supplier": "Singha99"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var order struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, rec, &order)
	assert.Equal(t, "planned", order.Status)

	rec = do(t, engine, http.MethodPut, "/api/shopping-orders/"+order.ID+"/status?status=ordered&notes=called", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, engine, http.MethodPut, "/api/shopping-orders/"+order.ID+"/status?status=planned", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, engine, http.MethodPut, "/api/shopping-orders/missing/status?status=ordered", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportCacheInvalidatedByWrites(t *testing.T) {
	store := cache.NewMemoryStore()
	engine, _ := newTestEngine(t, store)
	createBeer(t, engine)

	rec := do(t, engine, http.MethodGet, "/api/quick-restock", nil)
	assert.Equal(t, "MISS", rec.Header().Get(middleware.CacheHeader))

	rec = do(t, engine, http.MethodGet, "/api/quick-restock", nil)
	assert.Equal(t, "HIT", rec.Header().Get(middleware.CacheHeader))

	rec = do(t, engine, http.MethodPost, "/api/initialize-real-data", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, engine, http.MethodGet, "/api/quick-restock", nil)
	assert.Equal(t, "MISS", rec.Header().Get(middleware.CacheHeader))
}
