package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baran/kimlik/config"
	"github.com/baran/kimlik/database"
	"github.com/stretchr/testify/require"
)

// newTestServer, gerçek wire-up (newHandler) + temp SQLite ile
// uçtan uca test server'ı kurar.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Database: config.DatabaseConfig{URL: filepath.Join(t.TempDir(), "e2e.db")},
		JWT:      config.JWTConfig{Secret: "e2e-secret"},
	}

	db, err := database.New(cfg.Database.URL, database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv := httptest.NewServer(newHandler(cfg, db))
	t.Cleanup(srv.Close)
	return srv
}

// envelope, pkg.APIResponse'un test tarafı karşılığı.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, envelope, string) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp, env, string(raw)
}

func TestEndToEnd_RegisterLoginGetDelete(t *testing.T) {
	srv := newTestServer(t)

	creds := map[string]string{"username": "bob", "password": "pw1"}

	// Register → 201
	resp, env, _ := doJSON(t, http.MethodPost, srv.URL+"/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, "bob", created.Username)
	require.Greater(t, created.ID, int64(0))

	// Login → 200 + non-empty token
	resp, env, _ = doJSON(t, http.MethodPost, srv.URL+"/login", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)

	bearer := "Bearer " + login.Token
	userURL := fmt.Sprintf("%s/api/users/%d", srv.URL, created.ID)

	// GET → 200, bob'un kaydı, password_hash asla response'ta yok
	resp, env, raw := doJSON(t, http.MethodGet, userURL, bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(env.Data), `"bob"`)
	require.NotContains(t, raw, "password")
	require.NotContains(t, raw, "hash")

	// DELETE → 200
	resp, _, _ = doJSON(t, http.MethodDelete, userURL, bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Tekrar GET → 404
	resp, _, _ = doJSON(t, http.MethodGet, userURL, bearer, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogin_FailureBodiesAreIdentical(t *testing.T) {
	srv := newTestServer(t)

	_, _, _ = doJSON(t, http.MethodPost, srv.URL+"/register", "",
		map[string]string{"username": "carol", "password": "password1"})

	// Var olan kullanıcı + yanlış şifre
	respWrong, _, bodyWrong := doJSON(t, http.MethodPost, srv.URL+"/login", "",
		map[string]string{"username": "carol", "password": "wrong-pass"})

	// Hiç olmayan kullanıcı
	respGhost, _, bodyGhost := doJSON(t, http.MethodPost, srv.URL+"/login", "",
		map[string]string{"username": "ghost", "password": "whatever1"})

	require.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	require.Equal(t, http.StatusUnauthorized, respGhost.StatusCode)

	// Byte'ı byte'ına aynı body — hangi yarının yanlış olduğu sızmaz
	require.Equal(t, bodyWrong, bodyGhost)
}

func TestProtectedRoutes_RejectUniformly(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL + "/api/users/1"

	// Header yok
	respNone, _, bodyNone := doJSON(t, http.MethodGet, url, "", nil)
	require.Equal(t, http.StatusUnauthorized, respNone.StatusCode)

	// Çöp token
	respGarbage, _, bodyGarbage := doJSON(t, http.MethodGet, url, "Bearer garbage", nil)
	require.Equal(t, http.StatusUnauthorized, respGarbage.StatusCode)

	// Yanlış şema
	respScheme, _, bodyScheme := doJSON(t, http.MethodGet, url, "Token abc", nil)
	require.Equal(t, http.StatusUnauthorized, respScheme.StatusCode)

	// Tüm reddetme yolları aynı response shape'i üretir
	require.Equal(t, bodyNone, bodyGarbage)
	require.Equal(t, bodyNone, bodyScheme)
}

func TestRegister_DuplicateUsername_Conflict(t *testing.T) {
	srv := newTestServer(t)

	creds := map[string]string{"username": "dave", "password": "password1"}

	resp, _, _ := doJSON(t, http.MethodPost, srv.URL+"/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env, _ := doJSON(t, http.MethodPost, srv.URL+"/register", "", creds)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.False(t, env.Success)
}

func TestGetUser_NonNumericID(t *testing.T) {
	srv := newTestServer(t)

	// Önce geçerli bir token al
	_, _, _ = doJSON(t, http.MethodPost, srv.URL+"/register", "",
		map[string]string{"username": "erin", "password": "password1"})
	_, env, _ := doJSON(t, http.MethodPost, srv.URL+"/login", "",
		map[string]string{"username": "erin", "password": "password1"})

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	resp, _, _ := doJSON(t, http.MethodGet, srv.URL+"/api/users/abc", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.Contains(string(raw), `"ok"`))
}
