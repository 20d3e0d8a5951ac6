//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/ariane-backend/internal/app"
	authpkg "github.com/heartmarshall/ariane-backend/internal/auth"
	"github.com/heartmarshall/ariane-backend/internal/config"
	"github.com/heartmarshall/ariane-backend/internal/observability"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/ariane-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
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

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// Each test gets its own registry so collectors never collide.
	metrics := observability.NewMetrics()
	svc := app.NewServices(pool, config.TimelineConfig{
		MaxProjectsPerUser:  10,
		MaxEventsPerProject: 50,
		MaxImportEvents:     20,
	}, logger, metrics)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		Health:         rest.NewHealthHandler(pool, "e2e"),
		Projects:       rest.NewProjectHandler(svc.Projects, svc.Import, logger),
		Events:         rest.NewEventHandler(svc.Events, logger),
		Timeline:       rest.NewTimelineHandler(svc.Events, logger),
		GraphQL:        graphql.NewHandler(logger,
			resolver.NewResolver(logger, svc.Projects, svc.Events, svc.Events),
			svc.LoaderRepos,
		),
		Tokens:         jwtMgr,
		Observer:       metrics,
		MetricsHandler: metrics.Handler(),
		CORS:           config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE", AllowedHeaders: "Authorization,Content-Type"},
		MaxBodyBytes:   1 << 20,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, jwt: jwtMgr}
}

// newUser returns a fresh tenant and a bearer token for it.
func (ts *testServer) newUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := testhelper.NewUserID()
	token, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return userID, token
}

// do sends a JSON request and decodes the JSON response into out when out
// is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "%s %s", method, path)
	}
	return resp.StatusCode
}

type projectBody struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EventCount int    `json:"eventCount"`
}

type connectionBody struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetEventId"`
	Type     string `json:"type"`
	Order    int    `json:"order"`
}

type eventBody struct {
	ID        string           `json:"id"`
	ProjectID string           `json:"projectId"`
	Title     string           `json:"title"`
	Date      *string          `json:"date"`
	Nexts     []connectionBody `json:"nexts"`
	Prevs     []connectionBody `json:"prevs"`
}

func (ts *testServer) createProject(t *testing.T, token, name string) projectBody {
	t.Helper()
	var p projectBody
	status := ts.do(t, http.MethodPost, "/api/projects", token, map[string]any{"name": name}, &p)
	require.Equal(t, http.StatusCreated, status)
	return p
}

func (ts *testServer) createEvent(t *testing.T, token, projectID, title string, date any) eventBody {
	t.Helper()
	var e eventBody
	status := ts.do(t, http.MethodPost, "/api/events", token, map[string]any{
		"projectId": projectID,
		"title":     title,
		"date":      date,
	}, &e)
	require.Equal(t, http.StatusCreated, status)
	return e
}

// gqlResponse is the GraphQL envelope; Data is decoded by the caller.
type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

// graphql posts query to /query and decodes data into out when out is non-nil.
func (ts *testServer) graphql(t *testing.T, token, query string, vars map[string]any, out any) gqlResponse {
	t.Helper()

	var resp gqlResponse
	status := ts.do(t, http.MethodPost, "/query", token, map[string]any{"query": query, "variables": vars}, &resp)
	require.Equal(t, http.StatusOK, status)
	if out != nil && len(resp.Data) > 0 && string(resp.Data) != "null" {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp
}
