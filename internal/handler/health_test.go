package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetHealth verifies GET /healthz returns 200 with {"status":"ok"}.
func TestGetHealth(t *testing.T) {
	h := defaultDeps().build(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

// TestGetOpenAPISpec verifies the embedded contract is served as YAML.
func TestGetOpenAPISpec(t *testing.T) {
	h := defaultDeps().build(t)

	rec := doJSON(t, h, http.MethodGet, "/openapi.yaml", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi:")
}
