package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Laisky/video-search/library/askapi"
)

func TestCheckHealth(t *testing.T) {
	status := "healthy"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"` + status + `","timestamp":"2024-01-01T00:00:00"}`))
	}))
	defer srv.Close()

	client, err := askapi.NewClient(srv.URL)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, checkHealth(context.Background(), &buf, client))
	require.Equal(t, srv.URL+": healthy\n", buf.String())

	status = "degraded"
	buf.Reset()
	err = checkHealth(context.Background(), &buf, client)
	require.Error(t, err)
	require.Contains(t, err.Error(), "degraded")
}

func TestCheckHealthUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := askapi.NewClient(srv.URL)
	require.NoError(t, err)
	require.Error(t, checkHealth(context.Background(), &bytes.Buffer{}, client))
}
