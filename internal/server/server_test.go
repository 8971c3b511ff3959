package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"url-shortener/internal/domain"
	"url-shortener/internal/handler"
	"url-shortener/internal/server"
	"url-shortener/internal/service"
	"url-shortener/internal/shortcode"
	"url-shortener/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer wires a full stack on an in-memory store and returns
// an httptest server driving the real router.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := store.New(domain.RealClock{})
	svc := service.New(st, shortcode.NewAllocator(shortcode.NewGenerator()))

	srv := server.New(server.Config{
		Address:         "localhost:0",
		ShutdownTimeout: 5 * time.Second,
	}, handler.New(svc, "http://localhost:8080"), zap.NewNop())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func shorten(t *testing.T, ts *httptest.Server, url string) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"url": url})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/shorten", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var data map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
	return resp.StatusCode, data
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestServer_HealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "URL Shortener API", health["service"])

	resp2, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestServer_ShortenThenRedirectThenStats(t *testing.T) {
	ts := newTestServer(t)

	status, data := shorten(t, ts, "https://www.example.com")
	require.Equal(t, http.StatusCreated, status)

	code, ok := data["short_code"].(string)
	require.True(t, ok)
	assert.Len(t, code, 6)
	assert.Equal(t, "http://localhost:8080/"+code, data["short_url"])

	// Redirect
	client := noRedirectClient()
	resp, err := client.Get(ts.URL + "/" + code)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://www.example.com", resp.Header.Get("Location"))

	// Stats reflect the click
	resp2, err := http.Get(ts.URL + "/api/stats/" + code)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var stats map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&stats))
	assert.Equal(t, code, stats["short_code"])
	assert.Equal(t, "https://www.example.com", stats["url"])
	assert.Equal(t, float64(1), stats["clicks"])
	assert.NotEmpty(t, stats["created_at"])
}

func TestServer_ClickCounting(t *testing.T) {
	ts := newTestServer(t)

	status, data := shorten(t, ts, "https://www.example.com")
	require.Equal(t, http.StatusCreated, status)
	code := data["short_code"].(string)

	client := noRedirectClient()
	for i := 0; i < 5; i++ {
		resp, err := client.Get(ts.URL + "/" + code)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	}

	resp, err := http.Get(ts.URL + "/api/stats/" + code)
	require.NoError(t, err)
	defer resp.Body.Close()

	var stats map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, float64(5), stats["clicks"])
}

func TestServer_MultipleURLsGetDistinctCodes(t *testing.T) {
	ts := newTestServer(t)

	urls := []string{
		"https://www.example.com",
		"https://www.google.com",
		"https://www.github.com",
	}

	client := noRedirectClient()
	codes := make(map[string]string)

	for _, u := range urls {
		status, data := shorten(t, ts, u)
		require.Equal(t, http.StatusCreated, status)
		code := data["short_code"].(string)
		assert.NotContains(t, codes, code)
		codes[code] = u
	}

	for code, u := range codes {
		resp, err := client.Get(ts.URL + "/" + code)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, u, resp.Header.Get("Location"))
	}
}

func TestServer_RedirectUnknownCode_Returns404(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nocode")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "not found")
}

func TestServer_StatsUnknownCode_Returns404(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/stats/nocode")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_InvalidURL_Returns400(t *testing.T) {
	ts := newTestServer(t)

	status, data := shorten(t, ts, "not-a-valid-url")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, data["error"], "Invalid URL format")
}

func TestServer_MethodNotAllowed_ReturnsJSON405(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/shorten")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Method not allowed", body["error"])
}

func TestServer_GracefulShutdown(t *testing.T) {
	st := store.New(domain.RealClock{})
	svc := service.New(st, shortcode.NewAllocator(shortcode.NewGenerator()))

	srv := server.New(server.Config{
		Address:         "localhost:18081",
		ShutdownTimeout: 5 * time.Second,
	}, handler.New(svc, "http://localhost:18081"), zap.NewNop())

	go func() {
		_ = srv.Start()
	}()

	waitForServer(t, "http://localhost:18081/", 2*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, srv.Shutdown(ctx))
}

// waitForServer polls url until it responds or the deadline passes.
func waitForServer(t *testing.T, url string, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server at %s did not become ready within %s", url, timeout)
}
