package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mundomaya/hoteles/logging"
	"github.com/stretchr/testify/assert"
)

func TestContextHandler(t *testing.T) {
	t.Run("adds context attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo))

		ctx := logging.MountCtx(logging.PackageCtx("routes"), "abc")
		logger.InfoContext(ctx, "Modal shown")

		out := buf.String()
		assert.Contains(t, out, "package=routes")
		assert.Contains(t, out, "mount=abc")
		assert.Contains(t, out, `msg="Modal shown"`)
	})

	t.Run("sibling contexts do not leak attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo))

		base := logging.AppendCtx(context.Background(), slog.String("a", "1"))
		base = logging.AppendCtx(base, slog.String("b", "2"))
		first := logging.AppendCtx(base, slog.String("c", "3"))
		_ = logging.AppendCtx(base, slog.String("c", "4"))

		logger.InfoContext(first, "hello")

		assert.Contains(t, buf.String(), "c=3")
		assert.NotContains(t, buf.String(), "c=4")
	})

	t.Run("keeps context handler after With", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo)).With("component", "web")

		logger.InfoContext(logging.PackageCtx("web"), "started")

		assert.Contains(t, buf.String(), "component=web")
		assert.Contains(t, buf.String(), "package=web")
	})

	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(logging.NewHandler(&buf, slog.LevelInfo))

		logger.Debug("quiet")

		assert.Empty(t, buf.String())
	})
}
