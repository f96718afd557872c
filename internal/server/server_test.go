package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinSurvive_Go/internal/cooldown"
	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/event"
	"github.com/osse101/SpinSurvive_Go/internal/game"
	"github.com/osse101/SpinSurvive_Go/internal/sse"
	"github.com/osse101/SpinSurvive_Go/internal/store"
	"github.com/osse101/SpinSurvive_Go/internal/utils"
	"github.com/osse101/SpinSurvive_Go/internal/wallet"
)

const (
	testAPIKey = "admin-secret"
	testOrigin = "http://localhost:5173"
	gemIndex   = 5
	redCard    = 0
)

func newTestServer(t *testing.T, apiKey string) http.Handler {
	t.Helper()

	s := store.NewMemoryStore()
	gate := cooldown.NewDaily(time.UTC)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	sse.NewSubscriber(hub).Subscribe(bus)

	svc := game.NewService(wallet.NewRepository(s, gate), bus, gate, game.Randomness{
		Reels: utils.NewSequence(gemIndex),
		Deck:  utils.NewSequence(redCard),
		Bonus: utils.NewSequence(0),
	}, func() time.Time { return now })

	srv := NewServer(Options{
		Port:           0,
		AllowedOrigins: []string{testOrigin},
		AdminAPIKey:    apiKey,
	}, s, svc, nil, hub)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_GameFlow(t *testing.T) {
	h := newTestServer(t, testAPIKey)

	rec := do(t, h, "GET", "/api/v1/game/state", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"coins":1000`)

	rec = do(t, h, "POST", "/api/v1/game/spin", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var spin domain.SpinReport
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &spin))
	assert.Equal(t, 500, spin.FinalPayout)
	assert.Equal(t, 1450, spin.Coins)
	assert.True(t, spin.DoubleOrNothing)
	assert.Equal(t, 1, spin.SpinNumber)
	assert.Contains(t, spin.AchievementsUnlocked, domain.AchievementBigWinner)

	rec = do(t, h, "POST", "/api/v1/game/double", `{"spin_number":1,"guess":"red"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var double domain.DoubleReport
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &double))
	assert.True(t, double.Won)
	assert.Equal(t, 1950, double.Coins)

	rec = do(t, h, "POST", "/api/v1/game/double/skip", `{"spin_number":1}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, "POST", "/api/v1/game/bonus/daily", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":100`)

	rec = do(t, h, "POST", "/api/v1/game/bonus/daily", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = do(t, h, "GET", "/api/v1/game/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_spins":1`)

	rec = do(t, h, "GET", "/api/v1/game/paytable", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"spin_cost":50`)
}

func TestServer_AdminRoutes(t *testing.T) {
	t.Run("Reset requires the API key", func(t *testing.T) {
		h := newTestServer(t, testAPIKey)

		rec := do(t, h, "POST", "/api/v1/admin/reset", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = do(t, h, "POST", "/api/v1/admin/reset", "", map[string]string{HeaderAPIKey: testAPIKey})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"coins":1000`)
	})

	t.Run("Daily refresh falls back to the service", func(t *testing.T) {
		h := newTestServer(t, testAPIKey)

		rec := do(t, h, "POST", "/api/v1/admin/daily-refresh", "", map[string]string{HeaderAPIKey: testAPIKey})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reopened":false`)
	})

	t.Run("Disabled without a key", func(t *testing.T) {
		h := newTestServer(t, "")

		rec := do(t, h, "POST", "/api/v1/admin/reset", "", map[string]string{HeaderAPIKey: ""})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_OpsEndpoints(t *testing.T) {
	h := newTestServer(t, testAPIKey)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := do(t, h, "GET", path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServer_SecurityHeadersAndCORS(t *testing.T) {
	h := newTestServer(t, testAPIKey)

	rec := do(t, h, "GET", "/api/v1/game/state", "", map[string]string{"Origin": testOrigin})
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentTypeOptions))
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	rec = do(t, h, "OPTIONS", "/api/v1/game/spin", "", map[string]string{
		"Origin":                        testOrigin,
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, h, "GET", "/api/v1/game/state", "", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_EventStream(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, ""))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/game/events?types=slots.spin.settled", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	require.Equal(t, sse.EventTypeConnected, readEvent())

	spinResp, err := http.Post(ts.URL+"/api/v1/game/spin", "application/json", nil)
	require.NoError(t, err)
	_ = spinResp.Body.Close()
	require.Equal(t, http.StatusOK, spinResp.StatusCode)

	assert.Equal(t, string(event.SpinSettled), readEvent())
}
