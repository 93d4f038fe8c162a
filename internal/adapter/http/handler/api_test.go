package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleka/teleka-taxi/internal/adapter/jsonstore"
	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/internal/domain/types"
	"github.com/teleka/teleka-taxi/internal/service/assignment"
	"github.com/teleka/teleka-taxi/internal/service/auth"
	"github.com/teleka/teleka-taxi/internal/service/driverreg"
	"github.com/teleka/teleka-taxi/internal/service/notify"
	"github.com/teleka/teleka-taxi/internal/service/request"
	"github.com/teleka/teleka-taxi/internal/service/seed"
	"github.com/teleka/teleka-taxi/pkg/logger"
	"github.com/teleka/teleka-taxi/pkg/wsbus"
)

// newTestAPI wires handlers over real services and a jsonstore in a temp
// dir, with the same route patterns the server registers.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	log := logger.InitLogger("test", logger.LevelError)
	store, err := jsonstore.New(t.TempDir(), log)
	require.NoError(t, err)

	requests := jsonstore.NewRequestRepo(store)
	drivers := jsonstore.NewDriverRepo(store)
	trips := jsonstore.NewTripRepo(store)
	notifications := jsonstore.NewNotificationRepo(store)
	stats := jsonstore.NewStatsRepo(store)

	hub := wsbus.NewHub(log)
	t.Cleanup(hub.Close)

	notifySvc := notify.NewService(notifications, hub, nil, log)
	requestSvc := request.NewService(requests, trips, drivers, notifySvc, log)
	assignSvc := assignment.NewService(requests, drivers, trips, notifySvc, 25.50, log)
	driverSvc := driverreg.NewService(drivers, log)
	authSvc := auth.NewService("admin", "admin123", "test-secret", time.Hour, log)
	seedSvc := seed.NewService(requests, drivers, trips, stats, log)

	requestH := NewRequest(requestSvc, assignSvc, log)
	tripH := NewTrip(trips, requestSvc, log)
	driverH := NewDriver(driverSvc, stats, log)
	notificationH := NewNotification(notifySvc, log)
	authH := NewAuth(authSvc, log)
	seedH := NewSeed(seedSvc, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/requests", requestH.List)
	mux.HandleFunc("POST /api/requests", requestH.Create)
	mux.HandleFunc("GET /api/requests/{id}", requestH.Get)
	mux.HandleFunc("PUT /api/requests/{id}", requestH.Update)
	mux.HandleFunc("POST /api/requests/{id}/assign", requestH.Assign)
	mux.HandleFunc("POST /api/requests/{id}/decline", requestH.Decline)
	mux.HandleFunc("POST /api/requests/{id}/start", requestH.Start)
	mux.HandleFunc("POST /api/requests/{id}/cancel", requestH.Cancel)
	mux.HandleFunc("GET /api/trips/active", tripH.ListActive)
	mux.HandleFunc("POST /api/trips/{id}/complete", tripH.Complete)
	mux.HandleFunc("GET /api/drivers", driverH.List)
	mux.HandleFunc("POST /api/drivers", driverH.Register)
	mux.HandleFunc("POST /api/drivers/{id}/approve", driverH.Approve)
	mux.HandleFunc("POST /api/drivers/{id}/reject", driverH.Reject)
	mux.HandleFunc("GET /api/driver-stats", driverH.Stats)
	mux.HandleFunc("GET /api/notifications", notificationH.ListOps)
	mux.HandleFunc("PUT /api/notifications/{id}/read", notificationH.MarkOpsRead)
	mux.HandleFunc("GET /api/driver-notifications/{driverName}", notificationH.ListDriver)
	mux.HandleFunc("PUT /api/driver-notifications/{id}/read", notificationH.MarkDriverRead)
	mux.HandleFunc("POST /api/auth/login", authH.Login)
	mux.HandleFunc("POST /api/initialize", seedH.Initialize)
	return mux
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func createRequest(t *testing.T, h http.Handler) models.RideRequest {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/requests", map[string]any{
		"pickup":         "Garden City Mall",
		"dropoff":        "Entebbe Airport",
		"passengerName":  "Alice",
		"passengerPhone": "+256700000000",
		"serviceType":    "standard",
		"passengers":     2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.RideRequest](t, rec)
}

func registerActiveDriver(t *testing.T, h http.Handler) models.Driver {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/drivers", map[string]any{
		"name":    "John Smith",
		"email":   "john@example.com",
		"phone":   "+256700000001",
		"license": "UAA 123X",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	driver := decode[models.Driver](t, rec)

	rec = do(t, h, http.MethodPost, "/api/drivers/"+driver.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[models.Driver](t, rec)
}

func TestRequestLifecycle(t *testing.T) {
	h := newTestAPI(t)

	created := createRequest(t, h)
	assert.Equal(t, types.RequestPending, created.Status)
	assert.Nil(t, created.AssignedDriver)

	driver := registerActiveDriver(t, h)
	assert.Equal(t, types.DriverActive, driver.Status)

	rec := do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/assign", map[string]string{"driverId": driver.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assigned := decode[models.RideRequest](t, rec)
	assert.Equal(t, types.RequestAssigned, assigned.Status)
	require.NotNil(t, assigned.AssignedDriver)
	assert.Equal(t, "John Smith", *assigned.AssignedDriver)

	rec = do(t, h, http.MethodGet, "/api/trips/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	trips := decode[[]models.Trip](t, rec)
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)
	assert.Equal(t, "Garden City Mall → Entebbe Airport", trips[0].Route)
	assert.Equal(t, "$25.50", trips[0].Amount)

	rec = do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	started := decode[models.RideRequest](t, rec)
	assert.Equal(t, types.RequestInProgress, started.Status)

	rec = do(t, h, http.MethodPost, "/api/trips/"+created.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/requests/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	final := decode[models.RideRequest](t, rec)
	assert.Equal(t, types.RequestCompleted, final.Status)

	rec = do(t, h, http.MethodGet, "/api/trips/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Trip](t, rec))

	// Completing the same trip again reports it gone.
	rec = do(t, h, http.MethodPost, "/api/trips/"+created.ID+"/complete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeclineReturnsRequestToPending(t *testing.T) {
	h := newTestAPI(t)

	created := createRequest(t, h)
	driver := registerActiveDriver(t, h)

	rec := do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/assign", map[string]string{"driverId": driver.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/decline", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	declined := decode[models.RideRequest](t, rec)
	assert.Equal(t, types.RequestPending, declined.Status)
	assert.Nil(t, declined.AssignedDriver)
}

func TestCreateRequest_Validation(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/requests", map[string]any{
		"pickup":      "",
		"serviceType": "luxury",
		"passengers":  0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode[map[string]map[string]string](t, rec)
	errs := body["error"]
	assert.Contains(t, errs, "pickup")
	assert.Contains(t, errs, "serviceType")
	assert.Contains(t, errs, "passengers")
}

func TestCreateRequest_MalformedJSON(t *testing.T) {
	h := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRequest_NotFound(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodGet, "/api/requests/REQ404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssign_Conflicts(t *testing.T) {
	h := newTestAPI(t)

	created := createRequest(t, h)
	driver := registerActiveDriver(t, h)

	rec := do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/assign", map[string]string{"driverId": driver.ID})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAssign_UnapprovedDriver(t *testing.T) {
	h := newTestAPI(t)

	created := createRequest(t, h)

	rec := do(t, h, http.MethodPost, "/api/drivers", map[string]any{
		"name":    "Mike Johnson",
		"email":   "mike@example.com",
		"phone":   "+256700000002",
		"license": "UBB 456Y",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	pending := decode[models.Driver](t, rec)

	rec = do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/assign", map[string]string{"driverId": pending.ID})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListRequests_StatusFilter(t *testing.T) {
	h := newTestAPI(t)

	created := createRequest(t, h)

	rec := do(t, h, http.MethodGet, "/api/requests?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pending := decode[[]models.RideRequest](t, rec)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)

	rec = do(t, h, http.MethodGet, "/api/requests?status=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestNotificationFeeds(t *testing.T) {
	h := newTestAPI(t)

	created := createRequest(t, h)
	driver := registerActiveDriver(t, h)

	rec := do(t, h, http.MethodPost, "/api/requests/"+created.ID+"/assign", map[string]string{"driverId": driver.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ops := decode[[]models.Notification](t, rec)
	require.Len(t, ops, 1)
	assert.Equal(t, "New ride request from Alice", ops[0].Message)

	rec = do(t, h, http.MethodGet, "/api/driver-notifications/John%20Smith", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	driverFeed := decode[[]models.Notification](t, rec)
	require.Len(t, driverFeed, 1)
	assert.Equal(t, "New trip assigned: "+created.ID, driverFeed[0].Message)

	rec = do(t, h, http.MethodPut, "/api/notifications/"+ops[0].ID+"/read", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ops = decode[[]models.Notification](t, rec)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].Read)
}

func TestLogin(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session := decode[auth.Session](t, rec)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, types.RoleOperator.String(), session.Role)

	rec = do(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInitialize(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/initialize", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message": "Sample data initialized successfully"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/drivers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Driver](t, rec), 3)

	rec = do(t, h, http.MethodGet, "/api/driver-stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[models.DriverStats](t, rec)
	assert.Equal(t, "john@example.com", stats.Email)
}
