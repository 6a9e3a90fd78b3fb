package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

type testServer struct {
	handler http.Handler
	metrics *Metrics
}

func newTestServer(t *testing.T, capacity int, health HealthCheck) testServer {
	t.Helper()

	cache, err := repository.NewMemoryCache(100, time.Minute)
	require.NoError(t, err)
	engine := service.NewEngine(cache, zap.NewNop())
	limiter := newRateLimiter(capacity, time.Minute, time.Now)
	metrics := NewMetrics()

	return testServer{
		handler: NewRouter(engine, limiter, metrics, health, zap.NewNop()),
		metrics: metrics,
	}
}

func (s testServer) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

const referenceQuoteBody = `{"loanAmount": 400000, "rate": 7, "termYears": 30}`

func TestCalculateLoanHandler_OK(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	w := srv.post("/v1/loan/quote", referenceQuoteBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	var quote domain.LoanQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 2661.21, quote.MonthlyPayment)
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/loan/quote", nil)
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateLoanHandler_UnsupportedMediaType(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/loan/quote", bytes.NewBufferString(referenceQuoteBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	for name, body := range map[string]string{
		"malformed":     `{invalid-json}`,
		"unknown field": `{"monto": 10000, "tasa_anual": 12}`,
		"wrong type":    `{"loanAmount": "lots"}`,
	} {
		w := srv.post("/v1/loan/quote", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestCalculateLoanHandler_InvalidScenario(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	w := srv.post("/v1/loan/quote", `{"loanAmount": 400000, "rate": 7, "termYears": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrInvalidScenario.Error())
}

func TestRouter_AllCalculations(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	tests := []struct {
		path string
		body string
	}{
		{"/v1/loan/recommend-term", `{"loanAmount": 400000, "rate": 7, "maxMonthlyPayment": 3000}`},
		{"/v1/buydown", `{"loanAmount": 400000, "noteRate": 7, "termYears": 30, "buydownType": "2-1"}`},
		{"/v1/buydown/subsidy", `{"loanAmount": 400000, "noteRate": 7, "termYears": 30, "buydownType": "3-2-1"}`},
		{"/v1/buydown/seller-concession", `{"loanAmount": 400000, "noteRate": 7, "termYears": 30, "buydownType": "2-1", "sellerConcession": 12000}`},
		{"/v1/buydown/compare", `{"loanAmount": 400000, "noteRate": 7, "termYears": 30}`},
		{"/v1/buydown/payment-shock", `{"currentPayment": 2147.29, "newPayment": 2661.21}`},
		{"/v1/points/break-even", `{"loanAmount": 400000, "baseRate": 7, "pointsRate": 6.75, "pointsCost": 1, "termYears": 30}`},
		{"/v1/points/cost", `{"loanAmount": 400000, "points": 1.25}`},
		{"/v1/points/vs-credits", `{"loanAmount": 400000, "termYears": 30, "pointsRate": 6.75, "pointsCost": 1, "creditRate": 7.25, "lenderCredit": 1}`},
		{"/v1/rate-lock/fee", `{"loanAmount": 400000, "lockDays": 45}`},
		{"/v1/rate-lock/extension", `{"loanAmount": 400000, "extensionDays": 10, "currentLockExpired": true}`},
		{"/v1/rate-lock/compare", `{"loanAmount": 400000, "termYears": 30, "currentRate": 7, "lockDays": 45, "expectedRateChange": 0.5}`},
		{"/v1/rate-lock/float-down", `{"loanAmount": 400000, "termYears": 30, "lockedRate": 7, "floatDownFee": 0.5, "expectedRateDrop": 0.5, "holdingPeriodYears": 5}`},
		{"/v1/closing-costs", `{"loanAmount": 400000, "homePrice": 500000, "state": "CA"}`},
		{"/v1/closing-costs/cash-to-close", `{"homePrice": 500000, "downPaymentPercent": 20, "closingCostPercent": 3}`},
		{"/v1/mortgage-insurance", `{"loanType": "fha", "loanAmount": 400000, "homePrice": 420000}`},
		{"/v1/mortgage-insurance/pmi-dropoff", `{"loanAmount": 380000, "homePrice": 400000, "rate": 7, "termYears": 30}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := srv.post(tt.path, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.True(t, json.Valid(w.Body.Bytes()))
		})
	}
}

func TestBuydownHandler_Schedule(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	w := srv.post("/v1/buydown", `{"loanAmount": 400000, "noteRate": 7, "termYears": 30, "buydownType": "2-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.BuydownResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Schedule, 3)
	assert.Equal(t, 9323.18, result.TotalBuydownCost)
	assert.True(t, result.Schedule[2].IsNoteRate)
}

func TestRateLockHandler_FeeSchedule(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/rate-lock/tiers", nil)
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var tiers []domain.LockFeeTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	assert.Len(t, tiers, 6)

	w = srv.post("/v1/rate-lock/tiers", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	srv := newTestServer(t, 2, nil)

	assert.Equal(t, http.StatusOK, srv.post("/v1/loan/quote", referenceQuoteBody).Code)
	assert.Equal(t, http.StatusOK, srv.post("/v1/loan/quote", referenceQuoteBody).Code)

	w := srv.post("/v1/loan/quote", referenceQuoteBody)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/loan/quote", bytes.NewBufferString(referenceQuoteBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "loan-officer-42")
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)

	assert.Equal(t, "loan-officer-42", w.Header().Get(RequestIDHeader))
}

func TestRouter_Metrics(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	srv.post("/v1/loan/quote", referenceQuoteBody)
	srv.post("/v1/loan/quote", `{"loanAmount": -1, "rate": 7, "termYears": 30}`)

	assert.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.requests.WithLabelValues("/v1/loan/quote", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.requests.WithLabelValues("/v1/loan/quote", "400")))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "mortgage_engine_http_requests_total"))
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t, 100, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	failing := newTestServer(t, 100, func() error { return errors.New("redis down") })
	w = httptest.NewRecorder()
	failing.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestServeCalculation_InternalError(t *testing.T) {
	calc := func(domain.LoanScenario) (domain.LoanQuote, error) {
		return domain.LoanQuote{}, errors.New("boom")
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(referenceQuoteBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	serveCalculation(w, req, zap.NewNop(), calc)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
