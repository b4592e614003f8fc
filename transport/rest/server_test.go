package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Start(t *testing.T) {
	t.Run("Stops cleanly when the context is canceled", func(t *testing.T) {
		// Given: a server on a random port
		srv := New(slog.New(slog.NewTextHandler(io.Discard, nil)), "0", http.NotFoundHandler())
		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start(ctx) }()

		// When: the application shuts down
		time.Sleep(50 * time.Millisecond)
		cancel()

		// Then: Start returns without error
		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Reports a port that cannot be bound", func(t *testing.T) {
		srv := New(slog.New(slog.NewTextHandler(io.Discard, nil)), "-1", http.NotFoundHandler())

		err := srv.Start(context.Background())

		assert.Error(t, err)
	})
}
