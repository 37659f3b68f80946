package main

import (
	"log/slog"
	"os"

	"github.com/mundomaya/hoteles/cmd/hoteles"
	"github.com/mundomaya/hoteles/logging"
)

func main() {
	// Wrapping slog.Default().Handler() here deadlocks once it is set as the default,
	// so the text handler is built fresh.
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, logging.Level)))

	hoteles.Execute()
}
