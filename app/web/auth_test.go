package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestServer_Authentication(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	srv, store := newTestServer(t, Config{AuthHash: string(hash)})
	handler := srv.routes()

	tbl := []struct {
		name     string
		method   string
		path     string
		user     string
		passwd   string
		wantCode int
	}{
		{"no auth", "GET", "/", "", "", http.StatusUnauthorized},
		{"wrong password", "GET", "/", "jobtrack", "bad", http.StatusUnauthorized},
		{"wrong user", "GET", "/", "admin", "testpass", http.StatusUnauthorized},
		{"valid", "GET", "/", "jobtrack", "testpass", http.StatusOK},
		{"api without auth", "GET", "/api/v1/status", "", "", http.StatusUnauthorized},
		{"api with auth", "GET", "/api/v1/status", "jobtrack", "testpass", http.StatusOK},
		{"mutation without auth", "POST", "/api/jobs/1/delete", "", "", http.StatusUnauthorized},
		{"static without auth", "GET", "/static/style.css", "", "", http.StatusOK},
		{"ping without auth", "GET", "/ping", "", "", http.StatusOK},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.user != "" {
				req.SetBasicAuth(tt.user, tt.passwd)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), `Basic realm="Jobtrack"`)
			}
		})
	}

	assert.Len(t, store.Jobs(), 3, "unauthorized delete ignored")

	t.Run("auth flag in template data", func(t *testing.T) {
		assert.True(t, srv.boardData().AuthEnabled)
	})
}

func TestServer_checkPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)
	srv := &Server{authHash: string(hash)}
	assert.True(t, srv.checkPassword("secret"))
	assert.False(t, srv.checkPassword("Secret"))
	assert.False(t, srv.checkPassword(""))
}
