package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/anycanvas/pkg/errors"
)

func setEnv(t *testing.T, baseURL, token string) {
	t.Helper()
	t.Setenv("CANVAS_DOMAIN", "")
	t.Setenv("CANVAS_BASE_URL", baseURL)
	t.Setenv("CANVAS_TOKEN", token)
	t.Setenv("LOG_LEVEL", "ERROR")
}

func TestRunMissingToken(t *testing.T) {
	setEnv(t, "http://localhost:1/api", "")

	err := run(context.Background(), nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrConfiguration))
}

func TestRunAbortsBeforeRetrievalWhenUnauthenticated(t *testing.T) {
	var courseCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/users/self/courses" {
			atomic.AddInt32(&courseCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)
	setEnv(t, server.URL+"/api", "expired")

	err := run(context.Background(), []string{"-l", "debug"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrAuthentication))
	assert.Zero(t, atomic.LoadInt32(&courseCalls))
}

func TestRunSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	setEnv(t, server.URL+"/api", "secret")

	require.NoError(t, run(context.Background(), []string{"--log-level", "WARNING"}, &bytes.Buffer{}))
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	stderr := &bytes.Buffer{}
	err := run(context.Background(), []string{"-verbose"}, stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "flag provided but not defined")
}

func TestFatalMessageIncludesCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "typed", err: appErrors.Clone(appErrors.ErrConfiguration, "CANVAS_TOKEN is required"), want: "anycanvas: [" + appErrors.ErrConfiguration.Code + "] CANVAS_TOKEN is required"},
		{name: "untyped", err: errors.New("flag provided but not defined: -x"), want: "[" + appErrors.ErrInternal.Code + "]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, fatalMessage(tt.err), tt.want)
		})
	}
}
