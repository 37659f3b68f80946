package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/mount"
	"github.com/mundomaya/hoteles/web/assets"
	"github.com/mundomaya/hoteles/web/routes"
)

const shutdownTimeout = 5 * time.Second

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func healthHandle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	_, _ = w.Write([]byte("ok"))
}

func BuildServer(content *model.Content, mounts *mount.Registry, modalDelay time.Duration, dev bool) *http.ServeMux {
	mux := http.NewServeMux()
	// Serve the stylesheet and script.
	mux.Handle("GET /assets/",
		disableCacheInDevMode(dev,
			http.StripPrefix("/assets",
				http.FileServerFS(assets.Files))))

	handler := routes.ServerHandler{
		Content:    content,
		Mounts:     mounts,
		ModalDelay: modalDelay,
	}
	mux.HandleFunc("GET /mounts/{id}/modal", handler.ModalHandle)
	mux.HandleFunc("POST /mounts/{id}/modal/dismiss", handler.DismissHandle)
	mux.HandleFunc("POST /mounts/{id}/unmount", handler.UnmountHandle)
	mux.HandleFunc("GET /healthz", healthHandle)
	mux.HandleFunc("GET /{$}", handler.PageHandle)

	return mux
}

// StartServer serves handler on port until ctx is cancelled, then shuts down
// gracefully. The mount registry is reaped for as long as the server runs.
func StartServer(ctx context.Context, port int, handler http.Handler, mounts *mount.Registry) error {
	slog.Info("Running interface", "port", port)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	reaped := make(chan struct{})

	go func() {
		defer close(reaped)
		mounts.Run(ctx)
	}()

	// Live mounts are released before returning.
	defer func() {
		cancel()
		<-reaped
	}()

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down interface")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}

	return nil
}
