package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	handler "github.com/vncsmyrnk/mealpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/mealpoll/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
	"github.com/vncsmyrnk/mealpoll/internal/core/services"
	"go.uber.org/zap"
)

const adminKey = "integration-secret"

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	SummarySvc  ports.SummaryService
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	require.NoError(t, sqlstore.Migrate(sqlstore.Postgres, dbURL))

	db, err := sqlstore.Open(ctx, sqlstore.Postgres, dbURL)
	require.NoError(t, err)

	configRepo := sqlstore.NewPollConfigRepository(db, sqlstore.Postgres)
	voteRepo := sqlstore.NewVoteRepository(db, sqlstore.Postgres)
	suggestionRepo := sqlstore.NewSuggestionRepository(db, sqlstore.Postgres)
	require.NoError(t, configRepo.Seed(ctx, domain.DefaultPollConfig()))

	logger := zap.NewNop()
	router := handler.NewHandler(handler.Handlers{
		Poll:       handler.NewPollHandler(services.NewPollService(configRepo, voteRepo, suggestionRepo, 8, nil), logger),
		Vote:       handler.NewVoteHandler(services.NewVoteService(configRepo, voteRepo, nil), logger),
		Suggestion: handler.NewSuggestionHandler(services.NewSuggestionService(suggestionRepo, nil), logger),
		Admin:      handler.NewAdminHandler(services.NewAdminService(configRepo), adminKey, logger),
		Static:     handler.NewStaticHandler(t.TempDir(), logger),
	}, logger)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		SummarySvc:  services.NewSummaryService(configRepo, voteRepo, suggestionRepo, nil),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// do sends payload as JSON (nil sends no body) and decodes the JSON reply.
func (app *TestApp) do(t *testing.T, method, path string, payload any, header ...string) (int, map[string]any) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (app *TestApp) bootstrap(t *testing.T, deviceID string) map[string]any {
	t.Helper()
	status, body := app.do(t, http.MethodGet, "/api/bootstrap?device_id="+deviceID, nil)
	require.Equal(t, http.StatusOK, status)
	return body
}
