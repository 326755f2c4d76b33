package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/fixtures"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
	"golang.org/x/crypto/bcrypt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const testPassword = "s3cret!"

func newTestHandler(t *testing.T, auth config.Auth) http.Handler {
	t.Helper()

	ds, err := fixtures.Load(fixtures.VariantKoKR)
	require.NoError(t, err)

	store := dataset.NewStore()
	_, err = store.Publish(ds)
	require.NoError(t, err)

	f, err := format.New("ko-KR", "KRW")
	require.NoError(t, err)

	m := metrics.NewService(store, f, metrics.MetricsConfig{})
	c := charting.NewService(store, f)
	b := browsing.NewService(store, f, browsing.BrowsingConfig{})

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"https://dashboard.example.com"}},
		Auth:   auth,
	}

	h, err := NewHandler(cfg, Services{
		Reader:        store,
		Authenticator: authenticating.NewService(auth),
		Metrics:       m,
		Charting:      c,
		Browsing:      b,
		Dashboard:     dashboard.NewService(store, f, m, c, b),
	})
	require.NoError(t, err)

	return h
}

func enabledAuth(t *testing.T, role int) config.Auth {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return config.Auth{
		Enabled:              true,
		Secret:               "test-secret",
		TokenTTL:             time.Hour,
		OperatorEmail:        "ops@example.com",
		OperatorPasswordHash: string(hash),
		OperatorRole:         role,
	}
}

func login(t *testing.T, h http.Handler) (string, *http.Cookie) {
	t.Helper()

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"ops@example.com","password":"` + testPassword + `"}`)
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	return resp["token"], cookies[0]
}

func TestServer_AuthDisabled(t *testing.T) {
	h := newTestHandler(t, config.Auth{})

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "healthcheck", method: http.MethodGet, path: "/healthcheck", status: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/readiness", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/v1/metrics", status: http.StatusOK},
		{name: "customers", method: http.MethodGet, path: "/v1/customers?tier=gold", status: http.StatusOK},
		{name: "orders by store", method: http.MethodGet, path: "/v1/orders?store_id=1", status: http.StatusOK},
		{name: "sales", method: http.MethodGet, path: "/v1/sales", status: http.StatusOK},
		{name: "distribution", method: http.MethodGet, path: "/v1/distribution", status: http.StatusOK},
		{name: "dashboard json", method: http.MethodGet, path: "/v1/dashboard", status: http.StatusOK},
		{name: "dashboard html", method: http.MethodGet, path: "/", status: http.StatusOK},
		{name: "me", method: http.MethodGet, path: "/v1/me", status: http.StatusOK},
		{name: "login disabled", method: http.MethodPost, path: "/v1/login", status: http.StatusBadRequest},
		{name: "cron status", method: http.MethodGet, path: "/v1/cron/status", status: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/v1/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_OrdersByStore(t *testing.T) {
	h := newTestHandler(t, config.Auth{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/orders?store_id=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var table browsing.OrderTable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))

	ids := make([]int, 0, len(table.Rows))
	for _, row := range table.Rows {
		ids = append(ids, row.ID)
	}
	assert.ElementsMatch(t, []int{20001, 20004}, ids)
	assert.NotEmpty(t, rec.Header().Get("X-Dataset-Version"))
}

func TestServer_Cors(t *testing.T) {
	h := newTestHandler(t, config.Auth{})

	req := httptest.NewRequest(http.MethodOptions, "/v1/metrics", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Dataset-Version", rec.Header().Get("Access-Control-Expose-Headers"))

	req = httptest.NewRequest(http.MethodGet, "/v1/metrics", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_AuthEnabled(t *testing.T) {
	h := newTestHandler(t, enabledAuth(t, domain.RoleAdmin))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, cookie := login(t, h)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "강남점")

	req = httptest.NewRequest(http.MethodGet, "/v1/metrics", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CronRequiresAdmin(t *testing.T) {
	h := newTestHandler(t, enabledAuth(t, domain.RoleViewer))
	token, _ := login(t, h)

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/snapshot/run", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
