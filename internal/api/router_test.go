package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydahanu/directory/internal/catalog"
	"mydahanu/directory/internal/domain"
	"mydahanu/directory/internal/kv/memory"
	"mydahanu/directory/internal/seed"
	"mydahanu/directory/internal/session"
)

type nopWriter struct{}

func (nopWriter) Enqueue(domain.Record)                     {}
func (nopWriter) Save(context.Context, domain.Record) error { return nil }

type stubFetcher struct {
	snap domain.Snapshot
	err  error
	url  string
}

func (f *stubFetcher) FetchSnapshot(_ context.Context, url string) (domain.Snapshot, error) {
	f.url = url
	return f.snap, f.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    int             `json:"code"`
}

type testServer struct {
	handler http.Handler
	catalog *catalog.Catalog
	session *session.Store
	fetcher *stubFetcher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	c := catalog.New(nopWriter{})
	s := session.New(memory.NewStore(), "")
	f := &stubFetcher{}
	return &testServer{
		handler: NewRouter(c, s, f),
		catalog: c,
		session: s,
		fetcher: f,
	}
}

func (ts *testServer) loginAdmin(t *testing.T) {
	t.Helper()
	_, err := ts.session.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodGet, "/api/v1/categories", nil)

	rec, _ := ts.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "directory_http_requests_total")
}

func TestReadRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Len(t, decodeData[[]domain.Category](t, env), 8)

	_, env = ts.do(t, http.MethodGet, "/api/v1/categories/cat_medical", nil)
	assert.Equal(t, "Medical & Health", decodeData[domain.Category](t, env).Name)

	_, env = ts.do(t, http.MethodGet, "/api/v1/subcategories/sub_food_1", nil)
	assert.Equal(t, "Restaurants", decodeData[domain.Subcategory](t, env).Name)

	_, env = ts.do(t, http.MethodGet, "/api/v1/subcategories/sub_food_1/services", nil)
	assert.Len(t, decodeData[[]domain.Service](t, env), 1)

	_, env = ts.do(t, http.MethodGet, "/api/v1/services/featured", nil)
	assert.Len(t, decodeData[[]domain.Service](t, env), 5)

	_, env = ts.do(t, http.MethodGet, "/api/v1/services?q=quick&category=cat_home", nil)
	services := decodeData[[]domain.Service](t, env)
	require.Len(t, services, 1)
	assert.Equal(t, "srv_9", services[0].ID)

	_, env = ts.do(t, http.MethodGet, "/api/v1/services/srv_3", nil)
	assert.Equal(t, "City Hospital", decodeData[domain.Service](t, env).Name)

	_, env = ts.do(t, http.MethodGet, "/api/v1/banners", nil)
	assert.Len(t, decodeData[[]domain.Banner](t, env), 4)

	_, env = ts.do(t, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, catalog.Stats{Categories: 8, Subcategories: 26, Services: 12, Banners: 4},
		decodeData[catalog.Stats](t, env))
}

func TestReadRoutes_NotFound(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/api/v1/categories/nope",
		"/api/v1/subcategories/nope",
		"/api/v1/services/nope",
	} {
		rec, env := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "not_found", env.Error, path)
	}
}

func TestMutations_RequireAdmin(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/banners", map[string]string{"title": "t", "description": "d"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", env.Error)

	_, err := ts.session.Login(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/categories/cat_events", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Len(t, ts.catalog.Categories(), 8)
}

func TestCreateService_AppliesDefaults(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/services", map[string]interface{}{
		"name":          "Night Pharmacy",
		"description":   "Open till 2 AM",
		"subcategoryId": "sub_medical_3",
		"features":      "Home delivery,  Late hours ",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	s := decodeData[domain.Service](t, env)
	assert.Equal(t, 4.0, s.Rating)
	assert.Equal(t, 0, s.Reviews)
	assert.Equal(t, []string{"Home delivery", "Late hours"}, s.Features)
	assert.Contains(t, s.Image, "https://picsum.photos/400/300?random=")
	assert.Equal(t, "Medical & Health", s.Category)
	assert.Equal(t, "cat_medical", s.CategoryID)
}

func TestCreateService_Validation(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/services", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", env.Error)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/services", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/services", map[string]string{
		"name": "x", "description": "y", "subcategoryId": "nope",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, ts.catalog.Services(), 12)
}

func TestUpdateService(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	rec, env := ts.do(t, http.MethodPatch, "/api/v1/services/srv_1", map[string]interface{}{
		"price":    "30,000",
		"features": []string{"Only this"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	s := decodeData[domain.Service](t, env)
	assert.Equal(t, "30,000", s.Price)
	assert.Equal(t, []string{"Only this"}, s.Features)
	assert.Equal(t, "Royal Event Planners", s.Name)
}

func TestUpdateService_Validation(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	for _, body := range []map[string]interface{}{
		{"rating": 9, "reviews": -3},
		{"rating": -0.5},
		{"reviews": -1},
		{"name": " "},
	} {
		rec, env := ts.do(t, http.MethodPatch, "/api/v1/services/srv_1", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "validation_error", env.Error, body)
	}

	s, ok := ts.catalog.Service("srv_1")
	require.True(t, ok)
	assert.Equal(t, 4.8, s.Rating)
	assert.Equal(t, 234, s.Reviews)
	assert.Equal(t, "Royal Event Planners", s.Name)
}

func TestCategoryLifecycle(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/categories", map[string]string{"name": "Education", "icon": "📚"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decodeData[domain.Category](t, env)
	assert.Equal(t, domain.DefaultGradient, cat.Gradient)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/categories/"+cat.ID+"/subcategories",
		map[string]string{"name": "Tuition", "details": "Coaching classes"})
	require.Equal(t, http.StatusCreated, rec.Code)
	sub := decodeData[domain.Subcategory](t, env)
	assert.Equal(t, 0, sub.ProviderCount)
	assert.Contains(t, sub.Image, "https://picsum.photos/400/300?random=")

	rec, env = ts.do(t, http.MethodPatch, "/api/v1/categories/"+cat.ID+"/subcategories/"+sub.ID,
		map[string]int{"providerCount": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decodeData[domain.Subcategory](t, env).ProviderCount)

	rec, env = ts.do(t, http.MethodPatch, "/api/v1/categories/"+cat.ID, map[string]string{"name": "Learning"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Learning", decodeData[domain.Category](t, env).Name)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/categories/"+cat.ID+"/subcategories/"+sub.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/categories/"+cat.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/categories/"+cat.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCategory_Validation(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/categories", map[string]string{"name": "No icon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, ts.catalog.Categories(), 8)
}

func TestUpdateCategory_Validation(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	before, ok := ts.catalog.Category("cat_events")
	require.True(t, ok)

	for _, body := range []map[string]interface{}{
		{"name": ""},
		{"name": "   "},
		{"icon": ""},
		{"gradient": []string{}},
	} {
		rec, env := ts.do(t, http.MethodPatch, "/api/v1/categories/cat_events", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "validation_error", env.Error, body)
	}

	after, ok := ts.catalog.Category("cat_events")
	require.True(t, ok)
	assert.Equal(t, "Events", after.Name)
	assert.Equal(t, before, after)
}

func TestBannerLifecycle(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/banners", map[string]string{"title": "Sale", "description": "Now on"})
	require.Equal(t, http.StatusCreated, rec.Code)
	b := decodeData[domain.Banner](t, env)
	assert.Contains(t, b.Image, "https://picsum.photos/400/200?random=")

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/banners/"+b.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/banners/"+b.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportImportReset(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeData[domain.Snapshot](t, env)
	assert.Equal(t, domain.SnapshotVersion, snap.Version)

	snap.Banners = snap.Banners[:1]
	rec, _ = ts.do(t, http.MethodPost, "/api/v1/import", snap)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, ts.catalog.Banners(), 1)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/import", map[string]string{"version": "1.0.0"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", env.Error)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, ts.catalog.Banners(), 4)
}

func TestImport_FromURL(t *testing.T) {
	ts := newTestServer(t)
	ts.loginAdmin(t)

	remote := seed.Snapshot()
	remote.Banners = []domain.Banner{}
	ts.fetcher.snap = remote

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/import", map[string]string{"url": "https://example.com/snap.json"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/snap.json", ts.fetcher.url)
	assert.Empty(t, ts.catalog.Banners())
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@example.com", "password": "x"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RoleAdmin, decodeData[domain.User](t, env).Role)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Admin User", decodeData[domain.User](t, env).Name)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{"name": "Asha", "email": "asha@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.RoleUser, decodeData[domain.User](t, env).Role)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminSession_SharedAcrossClients(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "admin@example.com", "password": "x"})
	require.Equal(t, http.StatusOK, rec.Code)

	// A second caller carrying no credentials still passes the admin gate.
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/banners/does-not-exist", nil)
	req.RemoteAddr = "203.0.113.9:4000"
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/banners/does-not-exist", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
