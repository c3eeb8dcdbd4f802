package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/config"
	"github.com/aquamate-app/aquamate-backend/internal/database"
	"github.com/aquamate-app/aquamate-backend/internal/handlers"
	"github.com/aquamate-app/aquamate-backend/internal/routes"
	"github.com/aquamate-app/aquamate-backend/internal/services"
	"github.com/aquamate-app/aquamate-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	cfg   *config.Config
	store storage.ObjectStorage
}

// newTestEnv wires the whole HTTP stack against an in-memory database and a
// temp upload directory, mirroring the production composition in cmd/server.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiry:      time.Hour,
		UploadDir:      t.TempDir(),
		MaxUploadSize:  5 * 1024 * 1024,
		StorageBackend: "local",
		CORSOrigins:    "*",
	}

	store := storage.NewLocalStorage(cfg.UploadDir)
	require.NoError(t, store.Init(context.Background()))

	authService := services.NewAuthService(db, cfg)
	profileService := services.NewProfileService(db)
	aquariumService := services.NewAquariumService(db)
	reminderService := services.NewReminderService(db)

	app := fiber.New(fiber.Config{BodyLimit: 16 * 1024 * 1024})
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewProfileHandler(profileService, store, cfg),
		handlers.NewAquariumHandler(aquariumService),
		handlers.NewReminderHandler(reminderService),
		handlers.NewHealthHandler(),
		handlers.NewUploadHandler(store),
	)

	return &testEnv{app: app, db: db, cfg: cfg, store: store}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerAndLogin provisions an account over the API and returns its token.
func (e *testEnv) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"fullName": "Test User",
		"email":    email,
		"password": "secret1",
		"gender":   "Female",
		"dob":      "1995-06-15",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}
