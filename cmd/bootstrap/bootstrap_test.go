package bootstrap

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"clinic-voice-tools/internal/service"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "hospital.db"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REDIS_ENABLED", "false")
}

func call(t *testing.T, app *App, path, body string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestNew_ServesSeededDirectory(t *testing.T) {
	setTestEnv(t)

	app, err := New(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.Nil(t, app.RedisClient)
	assert.Equal(t, ":5001", app.Server.Addr)

	assert.JSONEq(t,
		`{"result":"The database confirms: Dr. Priya is available at 10:00 AM, 04:00 PM.","message":"The database confirms: Dr. Priya is available at 10:00 AM, 04:00 PM."}`,
		call(t, app, "/check-slots", `{"doctorName":"cardio specialist"}`))
	assert.JSONEq(t,
		`{"result":"No doctor found matching 'xyz'."}`,
		call(t, app, "/check-slots", `{"specialty":"xyz"}`))
	assert.JSONEq(t,
		`{"result":"Booking Successful","message":"Success. Appointment confirmed with Dr. Arun at 02:00 PM."}`,
		call(t, app, "/book-slot", `{"doctorName":"Dr. Arun","time":"2 PM"}`))
}

func TestNew_WithRedisCache(t *testing.T) {
	setTestEnv(t)
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", host)
	t.Setenv("REDIS_PORT", port)

	app, err := New(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(app.Close)

	require.NotNil(t, app.RedisClient)
	assert.IsType(t, &service.CachedDoctorDirectory{}, app.Directory)

	assert.Contains(t, call(t, app, "/check-slots", `{"doctorName":"skin"}`), "Dr. Arun")
	assert.True(t, mr.Exists(service.RedisDoctorKeyPrefix+"arun"))
}

func TestNew_InvalidConfig(t *testing.T) {
	setTestEnv(t)
	t.Setenv("DB_DRIVER", "oracle")

	app, err := New(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestNew_RedisUnavailable(t *testing.T) {
	setTestEnv(t)
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	mr.Close()
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", host)
	t.Setenv("REDIS_PORT", port)

	app, err := New(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_ShutdownReleasesStores(t *testing.T) {
	setTestEnv(t)
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", host)
	t.Setenv("REDIS_PORT", port)

	app, err := New(context.Background(), "")
	require.NoError(t, err)

	require.NoError(t, app.Shutdown(context.Background()))

	sqlDB, err := app.DB.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "database handle should be closed")
	assert.Error(t, app.RedisClient.Ping(context.Background()).Err(), "redis client should be closed")
}

func TestApp_ShutdownWithoutServer(t *testing.T) {
	app := &App{}
	assert.NoError(t, app.Shutdown(context.Background()))
}
