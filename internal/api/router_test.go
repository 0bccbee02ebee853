package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-site-backend/config"
	"school-site-backend/internal/auth"
	"school-site-backend/internal/model"
	"school-site-backend/internal/store"
)

const (
	testAdminEmail    = "admin@school.test"
	testAdminPassword = "correct-horse"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			RateLimitPerSec: 1000,
			RateLimitBurst:  1000,
			MaxBodyBytes:    1 << 20,
		},
		Session: config.SessionConfig{
			Secret:     "test-secret",
			TTL:        time.Hour,
			CookieName: "admin_session",
		},
		Uploads: config.UploadsConfig{
			Dir: t.TempDir(),
		},
		LoginThrottle: config.LoginThrottleConfig{
			MaxFailures:   3,
			WindowMinutes: 1,
		},
	}
}

// newTestServer wires a router against an in-memory SQLite database.
func newTestServer(t *testing.T) (*gin.Engine, store.Store, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Admin{}, &model.Admission{}, &model.Notice{}))

	cfg := testConfig(t)
	s := store.NewGormStore(db)
	return NewRouter(cfg, s), s, cfg
}

func seedAdmin(t *testing.T, s store.Store) *model.Admin {
	t.Helper()
	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)

	admin := &model.Admin{Email: testAdminEmail, PasswordHash: hash, Name: "Head Teacher"}
	require.NoError(t, s.CreateAdmin(context.Background(), admin))
	return admin
}

// postForm performs an urlencoded form POST against the router.
func postForm(router *gin.Engine, path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login authenticates the seeded admin and returns the session cookie.
func login(t *testing.T, router *gin.Engine, cfg *config.Config) *http.Cookie {
	t.Helper()
	w := postForm(router, "/admin/login", url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		if c.Name == cfg.Session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie issued on successful login")
	return nil
}
