package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setIntraEnv(t *testing.T, baseURL string) {
	t.Helper()

	t.Setenv("INTRA_CLIENT_ID", "u-id")
	t.Setenv("INTRA_CLIENT_SECRET", "s-secret")
	t.Setenv("INTRA_API_URL", baseURL)
	t.Setenv("INTRA_TOKEN_URL", "")
	t.Setenv("LOGTIME_TIMEZONE", "")
	t.Setenv("LOGTIME_MAX_HOURS", "")
}

func newIntraServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "token_type": "bearer", "expires_in": 7200})
	})
	mux.HandleFunc("/v2/users/abc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"login":"abc","displayname":"Ada Byron"}`))
	})
	mux.HandleFunc("/v2/users/abc/locations_stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"2024-01-28":"5:00:00.000000","2024-02-01":"3:00:00.000000"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRun_MissingLogin(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: user login is required")
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Empty(t, stdout.String())
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "logtime <login>")
	assert.Empty(t, stderr.String())
}

func TestRun_MissingCredentials(t *testing.T) {
	t.Setenv("INTRA_CLIENT_ID", "")
	t.Setenv("INTRA_CLIENT_SECRET", "")
	var stdout, stderr bytes.Buffer

	code := run([]string{"abc"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "INTRA_CLIENT_ID and INTRA_CLIENT_SECRET must be set")
}

func TestRun_Scenario(t *testing.T) {
	server := newIntraServer(t)
	setIntraEnv(t, server.URL+"/v2")
	var stdout, stderr bytes.Buffer

	code := run([]string{"abc", "2024-01-28", "2024-02-27", "--table"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "From: 2024-01-28  -  To: 2024-02-27")
	assert.Contains(t, stdout.String(), "6.67%")
	assert.Contains(t, stdout.String(), "8.00h")
	assert.Contains(t, stdout.String(), "2024-02-01")
	assert.Empty(t, stderr.String())
}

func TestRun_UnknownLogin(t *testing.T) {
	server := newIntraServer(t)
	setIntraEnv(t, server.URL+"/v2")
	var stdout, stderr bytes.Buffer

	code := run([]string{"ghost", "2024-01-28"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: invalid user ghost")
	assert.Empty(t, stdout.String())
}

func TestRun_VerboseLogsSteps(t *testing.T) {
	server := newIntraServer(t)
	setIntraEnv(t, server.URL+"/v2")
	var stdout, stderr bytes.Buffer

	code := run([]string{"abc", "2024-01-28", "2024-02-27", "-v"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `msg="fetch_logtime done"`)
	assert.Contains(t, stderr.String(), "run_id=")
}
