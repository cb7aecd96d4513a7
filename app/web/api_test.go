package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobtrack/app/tracker/enums"
)

func TestHandleAPIStatus(t *testing.T) {
	srv, store := newTestServer(t, Config{})
	store.ToggleInterview(1)
	store.ToggleInterview(3)
	store.ToggleRejected(2)

	t.Run("all tab", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.handleAPIStatus(w, req)

		resp := w.Result()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var apiResp APIStatusResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&apiResp))
		assert.Equal(t, "all", apiResp.Tab)
		assert.Equal(t, "3 jobs", apiResp.Summary)
		assert.Equal(t, APICounts{Total: 3, Interview: 2, Rejected: 1}, apiResp.Counts)
		require.Len(t, apiResp.Jobs, 3)
		assert.Equal(t, APIJob{ID: 1, CompanyName: "Alpha Inc", Position: "Go Developer", Location: "Remote",
			Type: "Full-time", Salary: "$100,000", Description: "write go code", Status: "interview"}, apiResp.Jobs[0])
		assert.Equal(t, "rejected", apiResp.Jobs[1].Status)
		assert.WithinDuration(t, time.Now(), apiResp.Timestamp, time.Second)
	})

	t.Run("interview tab", func(t *testing.T) {
		store.SetTab(enums.TabInterview)
		req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.handleAPIStatus(w, req)

		var apiResp APIStatusResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&apiResp))
		assert.Equal(t, "interview", apiResp.Tab)
		assert.Equal(t, "2 of 3 jobs", apiResp.Summary)
		require.Len(t, apiResp.Jobs, 2)
		assert.Equal(t, 1, apiResp.Jobs[0].ID)
		assert.Equal(t, 3, apiResp.Jobs[1].ID)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		store.SelectTab("nothing")
		req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
		w := httptest.NewRecorder()
		srv.handleAPIStatus(w, req)
		assert.Contains(t, w.Body.String(), `"jobs":[]`)
		assert.Contains(t, w.Body.String(), `"tab":""`)
	})
}

func TestHandleAPIJobs(t *testing.T) {
	srv, store := newTestServer(t, Config{})
	store.ToggleRejected(2)
	store.SetTab(enums.TabRejected)
	store.Delete(3)

	req := httptest.NewRequest("GET", "/api/v1/jobs", http.NoBody)
	w := httptest.NewRecorder()
	srv.handleAPIJobs(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var apiResp APIJobsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiResp))
	require.Len(t, apiResp.Jobs, 2, "ignores active tab")
	assert.Equal(t, 1, apiResp.Jobs[0].ID)
	assert.Equal(t, "untagged", apiResp.Jobs[0].Status)
	assert.Equal(t, 2, apiResp.Jobs[1].ID)
	assert.Equal(t, "rejected", apiResp.Jobs[1].Status)
}
