package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space_ships/internal/app/ds"
	"space_ships/internal/app/handler"
	"space_ships/internal/app/repository"
	"space_ships/internal/app/service"
	"space_ships/internal/app/utils"
)

const testJwtKey = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, jwtKey string) *gin.Engine {
	t.Helper()
	h := handler.NewHandler(service.NewShipService(repository.NewMemory()), 3, jwtKey)
	router := gin.New()
	h.SetupRoutes(router)
	return router
}

func do(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func yearMillis(year int) int64 {
	return time.Date(year, time.March, 3, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func shipBody(name string, speed float64, used bool) map[string]any {
	return map[string]any{
		"name":     name,
		"planet":   "Earth",
		"shipType": "MERCHANT",
		"prodDate": yearMillis(3009),
		"isUsed":   used,
		"speed":    speed,
		"crewSize": 25,
	}
}

func decodeShip(t *testing.T, w *httptest.ResponseRecorder) ds.Ship {
	t.Helper()
	var ship ds.Ship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ship))
	return ship
}

func TestCreateShip(t *testing.T) {
	t.Parallel()
	router := newRouter(t, "")

	body := shipBody("Nostromo", 0.456, false)
	delete(body, "isUsed")
	w := do(router, http.MethodPost, "/rest/ships", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ship := decodeShip(t, w)
	assert.Equal(t, int64(1), ship.ID)
	assert.Equal(t, 0.46, ship.Speed)
	assert.False(t, ship.IsUsed)
	assert.Equal(t, service.Rating(false, 0.46, 3009), ship.Rating)
	assert.Equal(t, yearMillis(3009), ship.ProdDate.UnixMilli())
}

func TestCreateShip_BadRequests(t *testing.T) {
	t.Parallel()
	router := newRouter(t, "")

	tooFast := shipBody("Nostromo", 1.0, false)
	unknownType := shipBody("Nostromo", 0.5, false)
	unknownType["shipType"] = "YACHT"
	noCrew := shipBody("Nostromo", 0.5, false)
	delete(noCrew, "crewSize")

	for name, body := range map[string]any{
		"speed out of range": tooFast,
		"unknown ship type":  unknownType,
		"crew missing":       noCrew,
		"malformed json":     "{name:",
	} {
		w := do(router, http.MethodPost, "/rest/ships", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}

	w := do(router, http.MethodGet, "/rest/ships/count", nil, nil)
	assert.Equal(t, "0", w.Body.String())
}

func TestGetShip(t *testing.T) {
	t.Parallel()
	router := newRouter(t, "")
	require.Equal(t, http.StatusOK, do(router, http.MethodPost, "/rest/ships", shipBody("Serenity", 0.5, true), nil).Code)

	w := do(router, http.MethodGet, "/rest/ships/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Serenity", decodeShip(t, w).Name)

	tests := []struct {
		path string
		code int
	}{
		{"/rest/ships/0", http.StatusBadRequest},
		{"/rest/ships/-4", http.StatusBadRequest},
		{"/rest/ships/abc", http.StatusBadRequest},
		{"/rest/ships/1.5", http.StatusBadRequest},
		{"/rest/ships/999", http.StatusNotFound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, do(router, http.MethodGet, tt.path, nil, nil).Code, tt.path)
	}
}

func TestUpdateShip(t *testing.T) {
	t.Parallel()
	router := newRouter(t, "")
	w := do(router, http.MethodPost, "/rest/ships", shipBody("Serenity", 0.5, false), nil)
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeShip(t, w)

	w = do(router, http.MethodPost, "/rest/ships/1", map[string]any{}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeShip(t, w))

	w = do(router, http.MethodPost, "/rest/ships/1", map[string]any{"isUsed": true, "crewSize": 30}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeShip(t, w)
	assert.True(t, updated.IsUsed)
	assert.Equal(t, 30, updated.CrewSize)
	assert.Equal(t, service.Rating(true, 0.5, 3009), updated.Rating)

	w = do(router, http.MethodPut, "/rest/ships/1", map[string]any{"name": "Firefly"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Firefly", decodeShip(t, w).Name)

	tests := []struct {
		name string
		path string
		body any
		code int
	}{
		{"negative crew", "/rest/ships/1", map[string]any{"crewSize": -1}, http.StatusBadRequest},
		{"empty name", "/rest/ships/1", map[string]any{"name": ""}, http.StatusBadRequest},
		{"year out of range", "/rest/ships/1", map[string]any{"prodDate": yearMillis(3020)}, http.StatusBadRequest},
		{"unknown ship type", "/rest/ships/1", map[string]any{"shipType": "YACHT"}, http.StatusBadRequest},
		{"zero id", "/rest/ships/0", map[string]any{"name": "x"}, http.StatusBadRequest},
		{"missing ship", "/rest/ships/42", map[string]any{"name": "x"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, do(router, http.MethodPost, tt.path, tt.body, nil).Code, tt.name)
	}

	w = do(router, http.MethodGet, "/rest/ships/1", nil, nil)
	stored := decodeShip(t, w)
	assert.Equal(t, 30, stored.CrewSize, "failed updates leave the ship unmodified")
	assert.Equal(t, "Firefly", stored.Name)
}

func TestDeleteShip(t *testing.T) {
	t.Parallel()
	router := newRouter(t, "")
	require.Equal(t, http.StatusOK, do(router, http.MethodPost, "/rest/ships", shipBody("Galactica", 0.5, false), nil).Code)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodDelete, "/rest/ships/0", nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/rest/ships/7", nil, nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodDelete, "/rest/ships/1", nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/rest/ships/1", nil, nil).Code)
}

func TestListAndCountShips(t *testing.T) {
	t.Parallel()
	router := newRouter(t, "")

	speeds := []float64{0.2, 0.5, 0.6, 0.7, 0.8, 0.9}
	for i, v := range speeds {
		w := do(router, http.MethodPost, "/rest/ships", shipBody(fmt.Sprintf("ship-%d", i), v, i%2 == 1), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := do(router, http.MethodGet, "/rest/ships", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var firstPage []ds.Ship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &firstPage))
	require.Len(t, firstPage, 3, "default page size")
	assert.Equal(t, int64(1), firstPage[0].ID)

	w = do(router, http.MethodGet, "/rest/ships?minSpeed=0.5&maxSpeed=0.8&pageSize=10&order=SPEED", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inRange []ds.Ship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inRange))
	require.Len(t, inRange, 4)
	assert.Equal(t, 0.5, inRange[0].Speed)
	assert.Equal(t, 0.8, inRange[3].Speed)

	w = do(router, http.MethodGet, "/rest/ships?minSpeed=0.5&maxSpeed=0.8&isUsed=true&pageSize=10", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var used []ds.Ship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &used))
	require.Len(t, used, 2)
	for _, s := range used {
		assert.True(t, s.IsUsed)
	}

	w = do(router, http.MethodGet, "/rest/ships/count?minSpeed=0.5&maxSpeed=0.8&isUsed=true", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Body.String())

	w = do(router, http.MethodGet, "/rest/ships?pageNumber=1&pageSize=4&name=ship", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var second []ds.Ship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Len(t, second, 2)

	for _, q := range []string{"minSpeed=fast", "shipType=YACHT", "order=NAME", "isUsed=maybe", "pageSize=0", "after=yesterday"} {
		assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/rest/ships?"+q, nil, nil).Code, q)
	}
}

func TestWriteRoutesRequireToken(t *testing.T) {
	t.Parallel()
	router := newRouter(t, testJwtKey)

	w := do(router, http.MethodPost, "/rest/ships", shipBody("Enterprise", 0.5, false), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/rest/ships", shipBody("Enterprise", 0.5, false),
		map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	viewer, err := utils.GenerateJWT([]byte(testJwtKey), "bob", "viewer", time.Hour)
	require.NoError(t, err)
	w = do(router, http.MethodPost, "/rest/ships", shipBody("Enterprise", 0.5, false),
		map[string]string{"Authorization": "Bearer " + viewer})
	assert.Equal(t, http.StatusForbidden, w.Code)

	operator, err := utils.GenerateJWT([]byte(testJwtKey), "alice", utils.RoleOperator, time.Hour)
	require.NoError(t, err)
	w = do(router, http.MethodPost, "/rest/ships", shipBody("Enterprise", 0.5, false),
		map[string]string{"Authorization": "Bearer " + operator})
	assert.Equal(t, http.StatusOK, w.Code)

	// reads stay public
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/rest/ships/1", nil, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodDelete, "/rest/ships/1", nil, nil).Code)
}

func TestListShips_HugePageNumber(t *testing.T) {
	t.Parallel()
	router := newRouter(t, "")
	for _, name := range []string{"Aurora", "Borealis"} {
		require.Equal(t, http.StatusOK, do(router, http.MethodPost, "/rest/ships", shipBody(name, 0.5, false), nil).Code)
	}

	for _, size := range []string{"3", "4"} {
		w := do(router, http.MethodGet, "/rest/ships?pageNumber=4611686018427387904&pageSize="+size, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "pageSize=%s", size)
	}
}

type failingPinger struct{}

func (failingPinger) Ping() error { return fmt.Errorf("connection refused") }

func TestHealth(t *testing.T) {
	t.Parallel()
	h := handler.NewHandler(service.NewShipService(repository.NewMemory()), 3, "")
	router := gin.New()
	h.SetupRoutes(router)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", nil, nil).Code)

	h.Pinger = failingPinger{}
	assert.Equal(t, http.StatusServiceUnavailable, do(router, http.MethodGet, "/health", nil, nil).Code)
}
