//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/molcom/timeclock-backend/internal/adapter/photostore"
	"github.com/molcom/timeclock-backend/internal/adapter/postgres"
	auditrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/audit"
	projectrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/project"
	settingsrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/settings"
	taskrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/task"
	"github.com/molcom/timeclock-backend/internal/adapter/postgres/testhelper"
	timeentryrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/timeentry"
	userrepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/user"
	worksiterepo "github.com/molcom/timeclock-backend/internal/adapter/postgres/worksite"
	"github.com/molcom/timeclock-backend/internal/adapter/provider/geocode"
	authpkg "github.com/molcom/timeclock-backend/internal/auth"
	"github.com/molcom/timeclock-backend/internal/config"
	"github.com/molcom/timeclock-backend/internal/domain"
	authsvc "github.com/molcom/timeclock-backend/internal/service/auth"
	projectsvc "github.com/molcom/timeclock-backend/internal/service/project"
	settingssvc "github.com/molcom/timeclock-backend/internal/service/settings"
	tasksvc "github.com/molcom/timeclock-backend/internal/service/task"
	timeentrysvc "github.com/molcom/timeclock-backend/internal/service/timeentry"
	usersvc "github.com/molcom/timeclock-backend/internal/service/user"
	worksitesvc "github.com/molcom/timeclock-backend/internal/service/worksite"
	"github.com/molcom/timeclock-backend/internal/transport/rest"
)

// testPassword is the known password for users created via createUser.
const testPassword = "secret123"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Geocoding is disabled, so
// worksites require manual coordinates.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	auditRepo := auditrepo.New(pool)
	entryRepo := timeentryrepo.New(pool)
	projectRepo := projectrepo.New(pool)
	settingsRepo := settingsrepo.New(pool)
	taskRepo := taskrepo.New(pool)
	userRepo := userrepo.New(pool)
	worksiteRepo := worksiterepo.New(pool)

	photos, err := photostore.New(config.UploadConfig{
		Dir:         t.TempDir(),
		MaxFileSize: 5 << 20,
	})
	if err != nil {
		t.Fatalf("init photo store: %v", err)
	}

	// No API key, so Enabled() is false and manual coordinates are used.
	geocoder := geocode.NewProvider(config.GeocodeConfig{}, logger)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	services := rest.Services{
		Auth:      authsvc.NewService(logger, userRepo, jwtMgr),
		Entries:   timeentrysvc.NewService(logger, entryRepo, photos, auditRepo, txm),
		Users:     usersvc.NewService(logger, userRepo, auditRepo, txm),
		Worksites: worksitesvc.NewService(logger, worksiteRepo, geocoder, auditRepo, txm),
		Projects:  projectsvc.NewService(logger, projectRepo, worksiteRepo, auditRepo, txm),
		Tasks:     tasksvc.NewService(logger, taskRepo, auditRepo, txm),
		Settings:  settingssvc.NewService(logger, settingsRepo, auditRepo, txm),
	}

	handlers := rest.NewHandlers(logger, services, photos, "test-version")
	router, limiter := handlers.Router(config.CORSConfig{
		AllowedOrigins:   "*",
		AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           86400,
	}, jwtMgr)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// request sends a JSON request and returns the status code and decoded body.
// A nil body sends no payload; a nil result map means the body was empty.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if len(raw) == 0 || string(raw) == "null\n" || string(raw) == "null" {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return resp.StatusCode, result
}

// requestList is like request but for endpoints returning a JSON array.
func (ts *testServer) requestList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// User fixtures.
// ---------------------------------------------------------------------------

// createUser inserts a user with a real bcrypt hash of testPassword and
// returns the user plus a valid access token.
func createUser(t *testing.T, ts *testServer, isAdmin bool) (domain.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           userID,
		Username:     fmt.Sprintf("e2e-%s", userID.String()[:8]),
		PasswordHash: string(hash),
		FullName:     "E2E User",
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, full_name, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.PasswordHash, user.FullName, user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("insert test user: %v", err)
	}

	token, err := ts.jwt.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return user, token
}

// createWorksite creates a worksite over the API as the given admin and
// returns its id.
func createWorksite(t *testing.T, ts *testServer, adminToken string) uuid.UUID {
	t.Helper()

	status, body := ts.request(t, http.MethodPost, "/api/worksites", adminToken, map[string]any{
		"name":      "Site " + uuid.New().String()[:8],
		"address":   "1 Test Street",
		"latitude":  59.3293,
		"longitude": 18.0686,
	})
	if status != http.StatusCreated {
		t.Fatalf("create worksite: expected 201, got %d (%v)", status, body)
	}

	id, err := uuid.Parse(body["id"].(string))
	if err != nil {
		t.Fatalf("parse worksite id: %v", err)
	}
	return id
}
