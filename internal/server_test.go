package internal

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2beens/weblogin/internal/config"
	"github.com/2beens/weblogin/internal/login"
	"github.com/2beens/weblogin/internal/session"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecretKey = []byte("server-test-secret-key-0123456789")

func newTestServer(t *testing.T) *Server {
	t.Helper()

	credentialsPath := filepath.Join(t.TempDir(), "credentials.txt")
	require.NoError(t, os.WriteFile(credentialsPath, []byte("alice:wonderland\nbob:builder\n"), 0600))

	server, err := NewServer(context.Background(), NewServerParams{
		Config: &config.Config{
			Host:                  "localhost",
			Port:                  9000,
			CredentialsBackend:    config.CredentialsBackendFile,
			CredentialsPath:       credentialsPath,
			SessionBackend:        config.SessionBackendMemory,
			SessionCookieName:     "weblogin-test",
			SessionCacheSizeMB:    1,
			PrometheusMetricsHost: "localhost",
			PrometheusMetricsPort: "2112",
		},
		SecretKey: testSecretKey,
	})
	require.NoError(t, err)
	require.NotNil(t, server)

	return server
}

// newTestClient keeps cookies like a browser, but does not follow redirects
func newTestClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() {
		assert.NoError(t, resp.Body.Close())
	}()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewServer_EmptySecretKey(t *testing.T) {
	_, err := NewServer(context.Background(), NewServerParams{
		Config: &config.Config{
			CredentialsBackend: config.CredentialsBackendFile,
			CredentialsPath:    "./credentials.txt",
			SessionBackend:     config.SessionBackendMemory,
			SessionCacheSizeMB: 1,
		},
	})
	assert.ErrorIs(t, err, session.ErrEmptySecretKey)
}

func TestServer_LoginFlow(t *testing.T) {
	server := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	ts := httptest.NewServer(router)
	defer ts.Close()
	client := newTestClient(t)

	resp, err := client.Get(ts.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.Contains(t, readBody(t, resp), `action="/login"`)

	// wrong password
	resp, err = client.PostForm(ts.URL+"/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, err = client.Get(ts.URL + "/")
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), login.MsgInvalidCredentials)

	resp, err = client.PostForm(ts.URL+"/login", url.Values{"username": {"alice"}, "password": {"wonderland"}})
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/welcome/alice", resp.Header.Get("Location"))

	resp, err = client.Get(ts.URL + "/welcome/alice")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Welcome, alice!")

	resp, err = client.Get(ts.URL + "/welcome/bob")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, err = client.Get(ts.URL + "/logout")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, err = client.Get(ts.URL + "/welcome/alice")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, err = client.Get(ts.URL + "/")
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), login.MsgLoggedOut)

	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.CounterLoginAttempts.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.CounterLoginAttempts.WithLabelValues("failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.CounterLogouts))
}

func TestServer_UnknownPath(t *testing.T) {
	server := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/admin", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "404 page not found", rr.Body.String())

	// known path, wrong method
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestServer_GracefulShutdown_TearsDownSessions(t *testing.T) {
	server := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader("username=bob&password=builder"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusFound, rr.Code)

	memoryStore, ok := server.sessionStore.(*session.MemoryStore)
	require.True(t, ok)
	assert.Equal(t, int64(1), memoryStore.Count())

	server.GracefulShutdown()
	assert.Equal(t, int64(0), memoryStore.Count())
	assert.Equal(t, float64(0), testutil.ToFloat64(server.metricsManager.GaugeLifeSignal))
}

func TestServer_ConnStateMetrics(t *testing.T) {
	server := newTestServer(t)

	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateActive)
	assert.Equal(t, float64(2), testutil.ToFloat64(server.metricsManager.GaugeRequests))

	server.connStateMetrics(nil, http.StateClosed)
	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.GaugeRequests))
}
