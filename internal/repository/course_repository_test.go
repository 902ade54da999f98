package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/anycanvas/pkg/canvas"
	"github.com/noah-isme/anycanvas/pkg/config"
)

func newCanvasServer(t *testing.T, handler http.HandlerFunc) *CourseRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := canvas.NewClient(config.CanvasConfig{BaseURL: server.URL + "/api", Token: "secret"}, zap.NewNop(), nil)
	require.NoError(t, err)
	return NewCourseRepository(client)
}

func TestCourseRepositoryListForCurrentUser(t *testing.T) {
	repo := newCanvasServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users/self/courses", r.URL.Path)
		assert.Equal(t, "term", r.URL.Query().Get("include[]"))
		assert.Equal(t, "active", r.URL.Query().Get("enrollment_state"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	resp, err := repo.ListForCurrentUser(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(resp.Body))
}

func TestCourseRepositoryOmitsPerPage(t *testing.T) {
	repo := newCanvasServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["per_page"]
		assert.False(t, present)
		w.WriteHeader(http.StatusUnauthorized)
	})

	resp, err := repo.ListForCurrentUser(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenRepositoryListUserGeneratedTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/self/user_generated_tokens", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	t.Cleanup(server.Close)

	client, err := canvas.NewClient(config.CanvasConfig{BaseURL: server.URL + "/api", Token: "secret"}, nil, nil)
	require.NoError(t, err)

	resp, err := NewTokenRepository(client).ListUserGeneratedTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
