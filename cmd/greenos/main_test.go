package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/auth"
	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/jrsteele09/greenos-console/credentials/storefake"
	"github.com/jrsteele09/greenos-console/internal/app"
	"github.com/jrsteele09/greenos-console/internal/config"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	mux     *http.ServeMux
	store   *storefake.FakeStore
	out     *bytes.Buffer
	console *console
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func setupTestFixture(t *testing.T, seeded map[credentials.Key]string, input string) *testFixture {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("GREENOS_API_URL", server.URL)

	store := storefake.NewFakeStoreWith(seeded)
	out := &bytes.Buffer{}
	return &testFixture{
		mux:   mux,
		store: store,
		out:   out,
		console: &console{
			app: app.NewWithStore(config.New(), store),
			out: out,
			in:  strings.NewReader(input),
		},
	}
}

func (f *testFixture) serveAccount() {
	f.mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "s3cret-pass" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "A1", "refresh_token": "R1", "token_type": "bearer"})
	})
	f.mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": "u1", "email": "sam@greenos.example", "full_name": "Sam Grower", "is_active": true})
	})
	f.mux.HandleFunc("GET /api/v1/farms/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"items": []map[string]any{{"id": "f1", "name": "North"}, {"id": "f2", "name": "South"}},
			"total": 2, "skip": 0, "limit": 20,
		})
	})
}

func TestLoginCommand(t *testing.T) {
	f := setupTestFixture(t, nil, "sam@greenos.example\ns3cret-pass\n")
	f.serveAccount()

	require.NoError(t, runLogin(context.Background(), f.console, nil))
	require.Contains(t, f.out.String(), "Signed in as Sam Grower")
	require.Contains(t, f.out.String(), "Current farm: North (f1)")
	require.Equal(t, "A1", f.store.Snapshot()[credentials.AccessTokenKey])
}

func TestLoginCommand_BadPassword(t *testing.T) {
	f := setupTestFixture(t, nil, "wrong-password\n")
	f.serveAccount()

	err := runLogin(context.Background(), f.console, []string{"-email", "sam@greenos.example"})
	require.ErrorIs(t, err, autherrors.ErrAuthenticationFailed)
	require.Equal(t, "Error: Incorrect email or password", userMessage(err))
	require.Empty(t, f.store.Snapshot())
}

func TestUseFarmAndFarmsCommands(t *testing.T) {
	f := setupTestFixture(t, map[credentials.Key]string{
		credentials.AccessTokenKey:  "A1",
		credentials.RefreshTokenKey: "R1",
	}, "")
	f.serveAccount()

	require.NoError(t, runUseFarm(context.Background(), f.console, []string{"f2"}))
	require.Equal(t, "f2", f.store.Snapshot()[credentials.CurrentFarmIDKey])

	f.out.Reset()
	require.NoError(t, runFarms(context.Background(), f.console, nil))
	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[2], "*"), lines[2])
}

func TestLoginCommand_ValidatesBeforeCalling(t *testing.T) {
	f := setupTestFixture(t, nil, "short\n")
	called := false
	f.mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := runLogin(context.Background(), f.console, []string{"-email", "sam@greenos.example"})
	require.ErrorIs(t, err, auth.PasswordTooShortErr)
	require.False(t, called)
}

func TestDomainCommandWithoutSessionAsksForLogin(t *testing.T) {
	f := setupTestFixture(t, nil, "")

	err := runDashboard(context.Background(), f.console, nil)
	require.ErrorIs(t, err, autherrors.ErrNotAuthenticated)
	require.Contains(t, userMessage(err), "greenos login")
}

func TestLogoutCommand(t *testing.T) {
	f := setupTestFixture(t, map[credentials.Key]string{
		credentials.AccessTokenKey:   "A1",
		credentials.RefreshTokenKey:  "R1",
		credentials.CurrentFarmIDKey: "f2",
	}, "")

	require.NoError(t, runLogout(context.Background(), f.console, nil))
	require.NoError(t, runLogout(context.Background(), f.console, nil))
	require.Equal(t, map[credentials.Key]string{credentials.CurrentFarmIDKey: "f2"}, f.store.Snapshot())
	require.Equal(t, 2, f.console.app.Redirects())
}

func TestUserMessage(t *testing.T) {
	expired := &apiclient.ResponseError{StatusCode: http.StatusUnauthorized, SessionExpired: true}
	require.Contains(t, userMessage(expired), "session has expired")

	network := &apiclient.NetworkError{Method: "GET", URL: "http://localhost:8000/api/v1/farms/", Err: errors.New("connection refused")}
	require.Contains(t, userMessage(network), "try again")

	rejected := &apiclient.ResponseError{StatusCode: http.StatusBadRequest, Detail: "Email already registered"}
	require.Equal(t, "Error: Email already registered", userMessage(rejected))

	require.Contains(t, userMessage(autherrors.ErrNoFarmSelected), "use-farm")
}

func TestFindCommand(t *testing.T) {
	for _, cmd := range commands {
		found, ok := findCommand(cmd.name)
		require.True(t, ok)
		require.Equal(t, cmd.summary, found.summary)
	}
	_, ok := findCommand("harvest-moon")
	require.False(t, ok)

	var buf bytes.Buffer
	printUsage(&buf)
	require.Contains(t, buf.String(), "use-farm")
}

func TestStatusCommand_PartialPairIsSignedOut(t *testing.T) {
	f := setupTestFixture(t, map[credentials.Key]string{
		credentials.AccessTokenKey:   "A1",
		credentials.CurrentFarmIDKey: "f2",
	}, "")

	require.NoError(t, runStatus(context.Background(), f.console, nil))
	out := f.out.String()
	require.Contains(t, out, "Session:")
	require.Contains(t, out, "absent")
	require.NotContains(t, out, "Expires:")
	require.Contains(t, out, "Farm:         f2")
}

func TestPromptSecret_KeepsSurroundingSpaces(t *testing.T) {
	c := &console{
		out: &bytes.Buffer{},
		in:  strings.NewReader("  sam@greenos.example \n  padded pass \r\n"),
	}

	email, err := c.prompt("Email")
	require.NoError(t, err)
	require.Equal(t, "sam@greenos.example", email)

	secret, err := c.promptSecret("Password")
	require.NoError(t, err)
	require.Equal(t, "  padded pass ", secret)
}

func TestParsePeriod(t *testing.T) {
	period, err := parsePeriod("2025-04-01", "")
	require.NoError(t, err)
	require.Equal(t, "2025-04-01", period.Start.String())
	require.Nil(t, period.End)

	_, err = parsePeriod("04/01/2025", "")
	require.ErrorContains(t, err, "-from")

	_, err = parsePeriod("2025-04-30", "2025-04-01")
	require.ErrorContains(t, err, "before")
}

func TestFinanceCommand_SendsPeriod(t *testing.T) {
	f := setupTestFixture(t, map[credentials.Key]string{
		credentials.AccessTokenKey:   "A1",
		credentials.RefreshTokenKey:  "R1",
		credentials.CurrentFarmIDKey: "f1",
	}, "")
	f.serveAccount()
	var query string
	f.mux.HandleFunc("GET /api/v1/farms/f1/finance/revenue-summary", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		writeJSON(w, http.StatusOK, map[string]any{"total_revenue": 1200, "total_costs": 300, "net_profit": 900, "profit_margin": 75})
	})
	f.mux.HandleFunc("GET /api/v1/farms/f1/finance/profit-by-crop", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	require.NoError(t, runFinance(context.Background(), f.console, []string{"-from", "2025-04-01", "-to", "2025-04-30"}))
	require.Equal(t, "end_date=2025-04-30&start_date=2025-04-01", query)
	require.Contains(t, f.out.String(), "$900.00")
}
