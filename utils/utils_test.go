package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	require.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestSetLevel(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	SetLevel("debug")
	require.Equal(t, log.DebugLevel, log.GetLevel())

	SetLevel("not-a-level")
	require.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestFatal(t *testing.T) {
	logger := log.StandardLogger()
	origExit, origOut := logger.ExitFunc, logger.Out
	defer func() {
		logger.ExitFunc = origExit
		logger.SetOutput(origOut)
	}()

	var buf bytes.Buffer
	exitCode := -1
	logger.ExitFunc = func(code int) { exitCode = code }
	logger.SetOutput(&buf)

	Fatal("Failed to start server", map[string]any{"port": ":8080"})

	require.Equal(t, 1, exitCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "fatal", entry["level"])
	require.Equal(t, "Failed to start server", entry["msg"])
	require.Equal(t, ":8080", entry["port"])
}

func TestJSONEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JSONResponse(c, http.StatusOK, []string{"Widget"}, "ok")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(http.StatusOK), resp["status"])
	require.Equal(t, "ok", resp["message"])
	require.Equal(t, []any{"Widget"}, resp["data"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	JSONError(c, http.StatusNotFound, errors.New("item not found"), "item not found")

	resp = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(http.StatusNotFound), resp["status"])
	require.Equal(t, "item not found", resp["error"])
}
