package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/vncsmyrnk/notes/internal/adapters/handler/http"
	hasher "github.com/vncsmyrnk/notes/internal/adapters/hasher/bcrypt"
	repo "github.com/vncsmyrnk/notes/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/notes/internal/adapters/token/jwt"
	"github.com/vncsmyrnk/notes/internal/core/services"
)

const testSecret = "test-secret"

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
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

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, repo.Migrate(ctx, db))

	issuer, err := jwt.NewIssuer(testSecret, jwt.DefaultTTL)
	require.NoError(t, err)

	log := zap.NewNop().Sugar()
	authSvc := services.NewAuthService(repo.NewUserRepository(db), hasher.NewHasher(bcrypt.MinCost), issuer)
	noteSvc := services.NewNoteService(repo.NewNoteRepository(db))

	router := handler.NewHandler(
		log,
		handler.NewAuthenticator(authSvc, log),
		handler.NewAuthHandler(authSvc, jwt.DefaultTTL, log),
		handler.NewNoteHandler(noteSvc, log),
		db,
	)

	// httptest serves plain HTTP; cookies marked Secure would not be
	// replayed by a cookie jar, so tests attach them explicitly.
	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
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

func (app *TestApp) request(t *testing.T, method, path, body string, cookie *http.Cookie, bearer string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, app.Server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "jwt" {
			return c
		}
	}
	t.Fatal("jwt cookie not set")
	return nil
}

// registerAndLogin creates a user with a unique email and returns its session cookie.
func (app *TestApp) registerAndLogin(t *testing.T, name string) (string, *http.Cookie) {
	t.Helper()
	email := fmt.Sprintf("user-%s@example.com", uuid.New())

	resp := app.request(t, http.MethodPost, "/auth/register",
		fmt.Sprintf(`{"email":%q,"password":"pw","name":%q}`, email, name), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.request(t, http.MethodPost, "/auth/login",
		fmt.Sprintf(`{"email":%q,"password":"pw"}`, email), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return email, sessionCookie(t, resp)
}
