package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"moodcast.app/backend/config"
)

func TestGetConfigEmptyWhenUnset(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	GetConfig(&config.Config{})(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "", body["pushoverApiToken"])
	assert.Equal(t, "", body["pushoverUserKey"])
}

func TestGetConfigReturnsConfiguredValues(t *testing.T) {
	cfg := &config.Config{PushoverAPIToken: "token-a", PushoverUserKey: "key-b"}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	GetConfig(cfg)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "token-a", body["pushoverApiToken"])
	assert.Equal(t, "key-b", body["pushoverUserKey"])
}
