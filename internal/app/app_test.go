package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/jrsteele09/greenos-console/credentials/storefake"
	"github.com/jrsteele09/greenos-console/internal/app"
	"github.com/jrsteele09/greenos-console/internal/config"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	mux   *http.ServeMux
	store *storefake.FakeStore
	app   *app.App
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func setupTestFixture(t *testing.T, seeded map[credentials.Key]string) *testFixture {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/farms/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"items": []map[string]any{{"id": "f1", "name": "North"}, {"id": "f2", "name": "South"}},
			"total": 2, "skip": 0, "limit": 20,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("GREENOS_API_URL", server.URL)

	store := storefake.NewFakeStoreWith(seeded)
	return &testFixture{mux: mux, store: store, app: app.NewWithStore(config.New(), store)}
}

func signedIn(farmID string) map[credentials.Key]string {
	seeded := map[credentials.Key]string{
		credentials.AccessTokenKey:  "A1",
		credentials.RefreshTokenKey: "R1",
	}
	if farmID != "" {
		seeded[credentials.CurrentFarmIDKey] = farmID
	}
	return seeded
}

func (f *testFixture) serveProfile() {
	f.mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": "u1", "email": "grower@greenos.example", "is_active": true})
	})
}

func TestCurrentFarm_RestoresSelection(t *testing.T) {
	f := setupTestFixture(t, signedIn("f2"))
	f.serveProfile()

	farm, err := f.app.CurrentFarm(context.Background())
	require.NoError(t, err)
	require.Equal(t, "South", farm.Name)
	require.True(t, f.app.Session.IsAuthenticated())
}

func TestBootstrap_NoTokens(t *testing.T) {
	f := setupTestFixture(t, nil)

	err := f.app.Bootstrap(context.Background())
	require.ErrorIs(t, err, autherrors.ErrNotAuthenticated)
	require.Equal(t, 1, f.app.Redirects())
}

func TestBootstrap_ExpiredSessionResetsState(t *testing.T) {
	f := setupTestFixture(t, signedIn("f2"))
	f.mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token expired"})
	})
	f.mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid refresh token"})
	})
	err := f.app.Bootstrap(context.Background())
	require.ErrorIs(t, err, autherrors.ErrSessionExpired)
	require.Equal(t, 1, f.app.Redirects())
	require.False(t, f.app.Session.IsAuthenticated())

	stored := f.store.Snapshot()
	require.NotContains(t, stored, credentials.AccessTokenKey)
	require.NotContains(t, stored, credentials.RefreshTokenKey)
	require.Equal(t, "f2", stored[credentials.CurrentFarmIDKey])
}

func TestBootstrap_ProfileUnavailable(t *testing.T) {
	f := setupTestFixture(t, signedIn(""))
	f.mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "database unavailable"})
	})

	err := f.app.Bootstrap(context.Background())
	require.ErrorIs(t, err, autherrors.ErrProfileUnavailable)
	require.Zero(t, f.app.Redirects())
}

func TestUseFarm_PersistsChoice(t *testing.T) {
	f := setupTestFixture(t, signedIn(""))
	f.serveProfile()

	farm, err := f.app.UseFarm(context.Background(), "f2")
	require.NoError(t, err)
	require.Equal(t, "f2", farm.ID)
	require.Equal(t, "f2", f.store.Snapshot()[credentials.CurrentFarmIDKey])

	_, err = f.app.UseFarm(context.Background(), "f9")
	require.ErrorIs(t, err, autherrors.ErrFarmNotFound)
}

func TestLogout_ResetsEverything(t *testing.T) {
	f := setupTestFixture(t, signedIn("f1"))
	f.serveProfile()
	_, err := f.app.CurrentFarm(context.Background())
	require.NoError(t, err)

	f.app.Session.Logout()
	require.False(t, f.app.Session.IsAuthenticated())
	_, ok := f.app.Selection.Current()
	require.False(t, ok)
	require.Equal(t, 1, f.app.Redirects())
	require.Equal(t, "f1", f.store.Snapshot()[credentials.CurrentFarmIDKey])
}

func TestNew_OpensFileStoreInConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GREENOS_CONFIG_DIR", dir)
	t.Setenv("GREENOS_API_URL", "http://localhost:8000")

	a, err := app.New(config.New())
	require.NoError(t, err)
	fs, ok := a.Store.(*credentials.FileStore)
	require.True(t, ok)
	require.Equal(t, dir, filepath.Dir(fs.Path()))
}
