package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbvote/cstv/internal/server"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestHandleHealth(t *testing.T) {
	router, _ := server.NewRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "operational", body["status"])
	assert.Equal(t, false, body["storeEnabled"])
}

func TestHandleRunElectionFundsBothProjects(t *testing.T) {
	router, _ := server.NewRouter(nil)

	payload := map[string]any{
		"budget": 20,
		"projects": []map[string]any{
			{"name": "A", "cost": 10},
			{"name": "B", "cost": 10},
		},
		"ballots": []map[string]any{
			{"values": map[string]float64{"A": 5, "B": 5}},
			{"values": map[string]float64{"A": 5, "B": 5}},
		},
		"combination": "EWT",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/elections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	selected, ok := resp["selected"].([]any)
	require.True(t, ok)
	assert.Len(t, selected, 2)
}

func TestHandleRunElectionRejectsUnknownCombination(t *testing.T) {
	router, _ := server.NewRouter(nil)

	payload := map[string]any{
		"budget":      10,
		"projects":    []map[string]any{{"name": "A", "cost": 10}},
		"ballots":     []map[string]any{{"values": map[string]float64{"A": 10}}},
		"combination": "NOPE",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/elections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetElectionWithoutStore(t *testing.T) {
	router, _ := server.NewRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/elections/"+"00000000-0000-0000-0000-000000000000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
