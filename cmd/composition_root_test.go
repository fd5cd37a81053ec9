package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "backoffice/internal/adapters/in/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) *CompositionRoot {
	t.Helper()
	root, err := NewCompositionRoot(Config{}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return root
}

func TestCompositionRoot_WithoutKafka(t *testing.T) {
	root := newTestRoot(t)

	assert.Nil(t, root.publisher)
	require.NoError(t, root.Close())
}

func TestCompositionRoot_WithKafka(t *testing.T) {
	root, err := NewCompositionRoot(
		Config{KafkaHost: "localhost:9092", KafkaStatusChangedTopic: "status-changed"},
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)

	assert.NotNil(t, root.publisher)
	require.NoError(t, root.Close())
}

func TestCompositionRoot_ServesHealthAndMetrics(t *testing.T) {
	root := newTestRoot(t)
	doc, err := httpin.LoadOpenAPI(context.Background())
	require.NoError(t, err)

	e, err := root.NewEcho(doc)
	require.NoError(t, err)

	for _, path := range []string{"/health", "/metrics", "/api/openapi.json"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestCompositionRoot_NewJobManager(t *testing.T) {
	root := newTestRoot(t)

	assert.NotNil(t, root.NewJobManager())
}
