package hoteles

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mundomaya/hoteles/content"
	"github.com/mundomaya/hoteles/db"
	"github.com/mundomaya/hoteles/mount"
	"github.com/mundomaya/hoteles/ui/modal"
	"github.com/mundomaya/hoteles/web"
	"github.com/mundomaya/hoteles/web/routes"
	"github.com/spf13/cobra"
)

var (
	port             int
	dev              bool
	modalDelay       time.Duration
	mountTTL         time.Duration
	eventsPath       string
	noEvents         bool
	bookingWidgetURL string
)

// openStorage opens the impression log, or a no-op log when recording is off.
func openStorage(path string, disabled bool) (db.Storage, error) {
	if disabled || path == "" {
		return db.Nop{}, nil
	}

	storage, err := db.ConnectDB(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}

	return storage, nil
}

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page",
	Long: `Serve the landing page over HTTP. Every page load is a mount with its own
promo dialog timer; transitions of the dialog are written to the impression log.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		storage, err := openStorage(eventsPath, noEvents)
		if err != nil {
			return err
		}
		defer storage.Close()

		config := mount.DefaultConfig()
		config.ModalDelay = modalDelay
		config.TTL = mountTTL

		mounts := mount.NewRegistry(config, mount.WithListener(routes.RecordTransitions(storage)))
		defer mounts.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		slog.Info("Serving landing page", "port", port, "dev", dev, "modal-delay", modalDelay, "events", eventsPath)

		handler := web.BuildServer(content.Default(bookingWidgetURL), mounts, modalDelay, dev)

		return web.StartServer(ctx, port, handler, mounts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080,
		"Port on which server should be watching")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	serveCmd.Flags().DurationVar(&modalDelay,
		"modal-delay",
		modal.DefaultDelay,
		"Delay before the promo dialog opens")

	serveCmd.Flags().DurationVar(&mountTTL,
		"mount-ttl",
		mount.DefaultConfig().TTL,
		"How long a page mount lives without an unmount beacon")

	serveCmd.Flags().StringVarP(&eventsPath,
		"events",
		"e",
		"./hoteles.sqlite",
		"Path of the promo impression log")

	serveCmd.Flags().BoolVar(&noEvents,
		"no-events",
		false,
		"Do not record promo dialog transitions")

	serveCmd.Flags().StringVar(&bookingWidgetURL,
		bookingFlag,
		"",
		"URL of the booking widget embedded in the booking section")
}
