package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aufin/calc-engine/internal/config"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg, err := config.LoadDefaultRegistry()
	require.NoError(t, err)
	srv := httptest.NewServer(New(nil, reg).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTaxYearsEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/taxyears")
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Contains(t, decoded["taxYears"], "2024-25")
}

func TestPayEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, body := postJSON(t, srv, "/api/pay", `{
		"taxYear": "2024-25",
		"annualSalary": 100000,
		"frequency": "monthly"
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	annual, ok := body["annual"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "22788", annual["totalWithheld"])
}

func TestPayEndpointUnknownYear(t *testing.T) {
	srv := testServer(t)
	resp, body := postJSON(t, srv, "/api/pay", `{
		"taxYear": "1999-00",
		"annualSalary": 100000,
		"frequency": "monthly"
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["error"], "unknown tax year")
}

func TestLoanEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, body := postJSON(t, srv, "/api/loan", `{
		"amount": 500000,
		"annualRate": 5,
		"termYears": 30,
		"frequency": "monthly",
		"startDate": "2025-01-01"
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	summary, ok := body["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2684.11", summary["regularPayment"])
	assert.Equal(t, float64(360), summary["totalPeriods"])
}

func TestBorrowingEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, body := postJSON(t, srv, "/api/borrowing", `{
		"incomes": [{"annualAmount": 120000}],
		"monthlyLivingExpense": 3000,
		"baseRate": 6,
		"bufferRate": 3,
		"termYears": 30
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "7000", body["availableMonthly"])
}

func TestCompareEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, body := postJSON(t, srv, "/api/compare", `{
		"mortgageAmount": 440000,
		"mortgageRate": 6,
		"mortgageTermYears": 30,
		"personalAmount": 40000,
		"personalRate": 10,
		"personalTermYears": 5,
		"frequency": "monthly",
		"startDate": "2025-01-01"
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	summary, ok := body["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "480000", summary["totalAmount"])
}

func TestMethodNotAllowed(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/pay")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMalformedBody(t *testing.T) {
	srv := testServer(t)
	resp, body := postJSON(t, srv, "/api/loan", `{"amount": "lots"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "invalid request body")
}
