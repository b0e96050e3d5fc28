package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"norhamtrans/internal/config"
	"norhamtrans/internal/middleware"
	"norhamtrans/internal/models"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	s := store.New(nil)
	if err := s.Load(); err != nil {
		t.Fatalf("loading store: %v", err)
	}
	return SetupRouter(s, rules.New(s)), s
}

func request(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}

func dispatcherToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken(config.DispatcherEmail())
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return token
}

func TestLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := request(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": config.DispatcherEmail(), "password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status %d, want 401", w.Code)
	}

	w = request(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": config.DispatcherEmail(), "password": config.DispatcherPassword(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatalf("login returned no token")
	}
	if _, err := middleware.ValidateToken(resp.Token); err != nil {
		t.Errorf("issued token does not validate: %v", err)
	}
}

func TestRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)
	for _, path := range []string{"/drivers/", "/inventory/", "/vehicles/", "/tours/", "/complaints/"} {
		if w := request(t, r, http.MethodGet, path, "", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status %d, want 401", path, w.Code)
		}
	}
	if w := request(t, r, http.MethodGet, "/drivers/", "not-a-jwt", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", w.Code)
	}
}

func TestDriverVehicleFlow(t *testing.T) {
	r, s := newTestServer(t)
	token := dispatcherToken(t)

	w := request(t, r, http.MethodPost, "/drivers/", token, gin.H{
		"first_name": "Erik", "last_name": "Nolte",
		"gls_number": "GLS-100", "phone": "+49 1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create driver: status %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		Driver models.Driver `json:"driver"`
	}
	decode(t, w, &created)
	driverID := created.Driver.ID
	if driverID == "" || created.Driver.Status != models.DriverAvailable {
		t.Fatalf("created driver wrong: %+v", created.Driver)
	}

	w = request(t, r, http.MethodPost, "/vehicles/", token, gin.H{
		"name": "Crafter", "plate": "ha-gl 77",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create vehicle: status %d, body %s", w.Code, w.Body.String())
	}
	var vehicle struct {
		Vehicle models.InventoryItem `json:"vehicle"`
	}
	decode(t, w, &vehicle)
	if vehicle.Vehicle.Vehicle.Plate != "HA-GL 77" {
		t.Errorf("plate not normalized: %q", vehicle.Vehicle.Vehicle.Plate)
	}

	w = request(t, r, http.MethodPost, "/drivers/"+driverID+"/vehicle", token, gin.H{
		"vehicle_id": vehicle.Vehicle.ID, "signature": "data:image/png;base64,xx",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("assign vehicle: status %d, body %s", w.Code, w.Body.String())
	}

	w = request(t, r, http.MethodGet, "/drivers/"+driverID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get driver: status %d", w.Code)
	}
	var got struct {
		Driver models.Driver `json:"driver"`
	}
	decode(t, w, &got)
	if got.Driver.VehicleID != vehicle.Vehicle.ID || got.Driver.Plate != "HA-GL 77" {
		t.Errorf("driver not linked: %+v", got.Driver)
	}

	w = request(t, r, http.MethodDelete, "/drivers/"+driverID+"/vehicle", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("release vehicle: status %d, body %s", w.Code, w.Body.String())
	}
	for _, item := range s.Inventory() {
		if item.ID == vehicle.Vehicle.ID && item.Vehicle.Status != models.VehicleActive {
			t.Errorf("vehicle not back in the pool: %+v", item.Vehicle)
		}
	}

	// A second release has nothing to release.
	w = request(t, r, http.MethodDelete, "/drivers/"+driverID+"/vehicle", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("double release: status %d, want 404", w.Code)
	}
}

func TestVacationNeedsVehicleDecision(t *testing.T) {
	r, _ := newTestServer(t)
	token := dispatcherToken(t)

	var created struct {
		Driver models.Driver `json:"driver"`
	}
	w := request(t, r, http.MethodPost, "/drivers/", token, gin.H{
		"first_name": "Lea", "last_name": "Brandt",
		"gls_number": "GLS-101", "phone": "+49 2",
	})
	decode(t, w, &created)

	var vehicle struct {
		Vehicle models.InventoryItem `json:"vehicle"`
	}
	w = request(t, r, http.MethodPost, "/vehicles/", token, gin.H{
		"name": "Sprinter", "plate": "HA-LB 1",
	})
	decode(t, w, &vehicle)

	request(t, r, http.MethodPost, "/drivers/"+created.Driver.ID+"/vehicle", token, gin.H{
		"vehicle_id": vehicle.Vehicle.ID, "signature": "sig",
	})

	w = request(t, r, http.MethodPut, "/drivers/"+created.Driver.ID+"/status", token, gin.H{
		"status": "Vacation", "vacation_start": "2026-09-07", "vacation_end": "2026-09-18",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("vacation without decision: status %d, want 409", w.Code)
	}

	w = request(t, r, http.MethodPut, "/drivers/"+created.Driver.ID+"/status", token, gin.H{
		"status": "Vacation", "vacation_start": "2026-09-07", "vacation_end": "2026-09-18",
		"vehicle": "base",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("vacation with decision: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestInventoryAssignAndReturn(t *testing.T) {
	r, _ := newTestServer(t)
	token := dispatcherToken(t)

	var item struct {
		Item models.InventoryItem `json:"item"`
	}
	w := request(t, r, http.MethodPost, "/inventory/", token, gin.H{
		"kind": "Clothing", "name": "Warnweste", "size": "XL", "quantity": 12,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create item: status %d, body %s", w.Code, w.Body.String())
	}
	decode(t, w, &item)

	w = request(t, r, http.MethodPost, "/inventory/"+item.Item.ID+"/assign", token, gin.H{
		"driver_id": "dr-seed-1", "quantity": 2, "signature": "sig",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("assign item: status %d, body %s", w.Code, w.Body.String())
	}
	var assigned struct {
		Record models.Assignment `json:"record"`
	}
	decode(t, w, &assigned)
	if assigned.Record.Quantity != 2 || assigned.Record.DriverID != "dr-seed-1" {
		t.Fatalf("ledger record wrong: %+v", assigned.Record)
	}

	w = request(t, r, http.MethodPost, "/inventory/"+item.Item.ID+"/return/"+assigned.Record.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("return: status %d, body %s", w.Code, w.Body.String())
	}
	w = request(t, r, http.MethodPost, "/inventory/"+item.Item.ID+"/return/"+assigned.Record.ID, token, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("double return: status %d, want 409", w.Code)
	}

	w = request(t, r, http.MethodGet, "/inventory/"+item.Item.ID+"/history", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history: status %d", w.Code)
	}
	var history struct {
		Data []map[string]interface{} `json:"data"`
	}
	decode(t, w, &history)
	if len(history.Data) != 1 {
		t.Fatalf("history entries = %d, want 1", len(history.Data))
	}
	if name, _ := history.Data[0]["driver_name"].(string); name != "John Doe" {
		t.Errorf("driver_name = %q, want John Doe", name)
	}
}

func TestTourCopyEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	token := dispatcherToken(t)

	var tour struct {
		Tour models.Tour `json:"tour"`
	}
	w := request(t, r, http.MethodPost, "/tours/", token, gin.H{
		"tour_number": "T-12", "city": "Hamm", "driver_id": "dr-seed-1",
		"vehicle_id": "it-seed-3", "date": "2026-08-31",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create tour: status %d, body %s", w.Code, w.Body.String())
	}
	decode(t, w, &tour)
	if tour.Tour.VehiclePlate != "B-XY 1234" || tour.Tour.Status != models.TourPending {
		t.Fatalf("created tour wrong: %+v", tour.Tour)
	}

	w = request(t, r, http.MethodPost, "/tours/copy", token, gin.H{
		"source_date": "2026-08-31", "target_date": "2026-09-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("copy tours: status %d, body %s", w.Code, w.Body.String())
	}
	var copied struct {
		Copied int `json:"copied"`
	}
	decode(t, w, &copied)
	if copied.Copied != 1 {
		t.Errorf("copied = %d, want 1", copied.Copied)
	}

	w = request(t, r, http.MethodPost, "/tours/copy", token, gin.H{
		"source_date": "2026-01-01", "target_date": "2026-01-02",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("copy from empty date: status %d, want 400", w.Code)
	}
}

func TestTourRejectsNonActiveVehicle(t *testing.T) {
	r, _ := newTestServer(t)
	token := dispatcherToken(t)

	tourBody := gin.H{
		"tour_number": "T-30", "city": "Hamm", "driver_id": "dr-seed-1",
		"vehicle_id": "it-seed-3", "date": "2026-08-31",
	}

	// Hand the seed van to a driver; it leaves the free pool.
	w := request(t, r, http.MethodPost, "/drivers/dr-seed-1/vehicle", token, gin.H{
		"vehicle_id": "it-seed-3", "signature": "sig",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("assign vehicle: status %d, body %s", w.Code, w.Body.String())
	}

	w = request(t, r, http.MethodPost, "/tours/", token, tourBody)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("tour with allocated vehicle: status %d, want 400", w.Code)
	}

	// Back in the pool it is assignable again.
	w = request(t, r, http.MethodDelete, "/drivers/dr-seed-1/vehicle", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("release vehicle: status %d", w.Code)
	}
	w = request(t, r, http.MethodPost, "/tours/", token, tourBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("tour with active vehicle: status %d, body %s", w.Code, w.Body.String())
	}
	var tour struct {
		Tour models.Tour `json:"tour"`
	}
	decode(t, w, &tour)

	// A tour keeps its current vehicle across edits even when that one has
	// since left the pool; switching to another non-active vehicle is out.
	w = request(t, r, http.MethodPut, "/vehicles/it-seed-3/status", token, gin.H{
		"status": "Service", "location": "Orhan",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("send to service: status %d, body %s", w.Code, w.Body.String())
	}
	tourBody["city"] = "Dortmund"
	w = request(t, r, http.MethodPut, "/tours/"+tour.Tour.ID, token, tourBody)
	if w.Code != http.StatusOK {
		t.Errorf("edit keeping current vehicle: status %d, body %s", w.Code, w.Body.String())
	}

	var other struct {
		Vehicle models.InventoryItem `json:"vehicle"`
	}
	w = request(t, r, http.MethodPost, "/vehicles/", token, gin.H{
		"name": "Vito", "plate": "HA-NA 2",
	})
	decode(t, w, &other)
	request(t, r, http.MethodPost, "/drivers/dr-seed-2/vehicle", token, gin.H{
		"vehicle_id": other.Vehicle.ID, "signature": "sig",
	})
	tourBody["vehicle_id"] = other.Vehicle.ID
	w = request(t, r, http.MethodPut, "/tours/"+tour.Tour.ID, token, tourBody)
	if w.Code != http.StatusBadRequest {
		t.Errorf("switch to allocated vehicle: status %d, want 400", w.Code)
	}
}

func TestGlobalMiddlewareAheadOfRoutes(t *testing.T) {
	r, _ := newTestServer(t)

	// Recovery and request logging are registered before any route, so every
	// route's frozen handler chain must carry them.
	if len(r.Handlers) < 2 {
		t.Fatalf("global middleware chain has %d handlers, want at least 2", len(r.Handlers))
	}
	for _, route := range r.Routes() {
		if route.HandlerFunc == nil {
			t.Errorf("route %s %s has no handler", route.Method, route.Path)
		}
	}
}

func TestStopPlanWritesBackTourTotals(t *testing.T) {
	r, s := newTestServer(t)
	token := dispatcherToken(t)

	var tour struct {
		Tour models.Tour `json:"tour"`
	}
	w := request(t, r, http.MethodPost, "/tours/", token, gin.H{
		"tour_number": "T-5", "city": "Dortmund", "driver_id": "dr-seed-2",
		"vehicle_id": "it-seed-3", "date": "2026-08-31",
	})
	decode(t, w, &tour)

	w = request(t, r, http.MethodPost, "/stops/", token, gin.H{
		"date": "2026-08-31", "tour_id": tour.Tour.ID, "packages": 140, "stops": 52,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create stop entry: status %d, body %s", w.Code, w.Body.String())
	}
	var entry struct {
		Entry models.StopPlan `json:"entry"`
	}
	decode(t, w, &entry)
	if entry.Entry.Addresses != "T-5 - Dortmund" {
		t.Errorf("entry label = %q", entry.Entry.Addresses)
	}

	for _, got := range s.Tours() {
		if got.ID == tour.Tour.ID && (got.TotalPackages != 140 || got.TotalStops != 52) {
			t.Errorf("tour totals not written back: %+v", got)
		}
	}
}

func TestMaintenanceEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	token := dispatcherToken(t)

	w := request(t, r, http.MethodPost, "/vehicles/", token, gin.H{
		"name": "Vito", "plate": "HA-HU 9", "hu_expiration": "2020-01-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create vehicle: status %d", w.Code)
	}

	w = request(t, r, http.MethodGet, "/vehicles/maintenance", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("maintenance: status %d", w.Code)
	}
	var resp struct {
		Data []rules.MaintenanceAlert `json:"data"`
	}
	decode(t, w, &resp)
	found := false
	for _, alert := range resp.Data {
		if alert.Plate == "HA-HU 9" {
			found = true
			if !alert.Expired {
				t.Errorf("long-expired HU not flagged: %+v", alert)
			}
		}
	}
	if !found {
		t.Errorf("expired vehicle missing from alerts: %+v", resp.Data)
	}
}
