package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/database"
	"agrisense/entities"
	"agrisense/pkg/farm/repositoryImp"
	"agrisense/pkg/farm/serviceImp"
	"agrisense/pkg/logger"
	"agrisense/pkg/middleware"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.Farm{
		FarmID:          "farm-1",
		OwnerID:         "U_1",
		Name:            "North plot",
		GreenPoints:     20,
		IrrigationZones: []entities.IrrigationZone{{ZoneID: "z1", Name: "Zone A", CropType: "Onion"}},
	}).Error)

	ctrl := New(serviceImp.NewFarmService(repositoryImp.New(db), logger.Discard()))
	e := echo.New()
	e.Use(middleware.Identity(false))
	e.POST("/api/farm/dashboard", ctrl.Dashboard)
	g := e.Group("/api/farms", middleware.RequireIdentity())
	g.POST("", ctrl.Create)
	g.GET("", ctrl.List)
	g.GET("/:id", ctrl.Get)
	return e
}

func call(e *echo.Echo, method, path, uid, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if uid != "" {
		req.Header.Set(middleware.UserIDHeader, uid)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type callableResponse struct {
	Result *entities.FarmDashboard `json:"result"`
	Error  *callableError          `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) callableResponse {
	t.Helper()
	var r callableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	return r
}

func TestCallableErrors(t *testing.T) {
	e := newServer(t)
	cases := []struct {
		name   string
		uid    string
		body   string
		code   int
		status string
	}{
		{"anonymous", "", `{"data":{"farmId":"farm-1"}}`, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"no farm id", "U_1", `{"data":{}}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"unknown farm", "U_1", `{"data":{"farmId":"ghost"}}`, http.StatusNotFound, "NOT_FOUND"},
		{"malformed", "U_1", `{"data":`, http.StatusBadRequest, "INVALID_ARGUMENT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := call(e, http.MethodPost, "/api/farm/dashboard", tc.uid, tc.body)
			assert.Equal(t, tc.code, rec.Code)
			r := decode(t, rec)
			require.NotNil(t, r.Error)
			assert.Equal(t, tc.status, r.Error.Status)
			assert.Nil(t, r.Result)
		})
	}
}

func TestCallableAwardsPointsEachCall(t *testing.T) {
	e := newServer(t)

	first := decode(t, call(e, http.MethodPost, "/api/farm/dashboard", "U_9", `{"data":{"farmId":"farm-1"}}`))
	require.NotNil(t, first.Result)
	assert.Equal(t, 25, first.Result.GreenPoints)
	assert.Equal(t, "North plot", first.Result.FarmData.Name)
	require.Len(t, first.Result.IrrigationZones, 1)
	assert.Equal(t, "Onion", first.Result.IrrigationZones[0].CropType)
	assert.NotEmpty(t, first.Result.IrrigationZones[0].NextIrrigation)

	second := decode(t, call(e, http.MethodPost, "/api/farm/dashboard", "U_9", `{"data":{"farmId":"farm-1"}}`))
	require.NotNil(t, second.Result)
	assert.Equal(t, 30, second.Result.GreenPoints)
}

func TestFarmCRUD(t *testing.T) {
	e := newServer(t)

	rec := call(e, http.MethodPost, "/api/farms", "U_2", `{"name":"Hill farm","size_acres":3,"irrigation_zones":[{"name":"Zone A","crop_type":"Grapes"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entities.Farm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "U_2", created.OwnerID)

	rec = call(e, http.MethodGet, "/api/farms/"+created.FarmID, "U_2", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodGet, "/api/farms/"+created.FarmID, "U_1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(e, http.MethodGet, "/api/farms", "U_2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []entities.Farm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)

	rec = call(e, http.MethodPost, "/api/farms", "U_2", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(e, http.MethodGet, "/api/farms", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
