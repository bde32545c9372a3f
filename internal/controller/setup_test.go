package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeCache is an in-memory stand-in for the redis client.
type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	val, ok := f.store[key]
	if !ok {
		return "", apperror.NotFound("key %q not found", key)
	}
	return val, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error {
	return nil
}

// setupTestApp wires a fiber app over an in-memory database, mirroring the
// route layout of the real server.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.Note{}, &model.Task{}, &model.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	factory := unitofwork.NewRepositoryFactory(db)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	NewNoteController(service.NewNoteService(factory)).RegisterRoutes(app)
	NewTaskController(service.NewTaskService(factory)).RegisterRoutes(app)

	internal := app.Group("/_internal")
	NewInternalController(service.NewInternalService(factory), newFakeCache()).RegisterRoutes(internal)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	var envelope struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}
