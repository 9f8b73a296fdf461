package controllerImp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"agrisense/pkg/logger"
	"agrisense/pkg/market/service"
	"agrisense/pkg/market/serviceImp"
	"agrisense/pkg/market/source"
)

func newServer() *echo.Echo {
	ctrl := New(serviceImp.NewMarketService(source.Static(), logger.Discard()))
	e := echo.New()
	e.GET("/api/market/prices", ctrl.Prices)
	e.GET("/api/market/prices.xlsx", ctrl.Export)
	return e
}

func TestPrices(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/market/prices?q=grape&market=Nashik", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap service.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap.Prices, 1)
	assert.Equal(t, "Grapes (Thompson)", snap.Prices[0].Crop)
	assert.Equal(t, "down", snap.Prices[0].Trend)
	assert.Equal(t, "static", snap.Source)
}

func TestExportDownload(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/market/prices.xlsx?market=Karnataka", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "market-prices.xlsx")

	x, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows(serviceImp.ExportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
