package hoteles

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mundomaya/hoteles/content"
	"github.com/mundomaya/hoteles/ui/menu"
	"github.com/mundomaya/hoteles/ui/modal"
	"github.com/mundomaya/hoteles/web/components"
	"github.com/spf13/cobra"
)

var (
	outputPath   string
	assetsPrefix string
)

// renderStatic writes the initial page state: menus closed and no promo dialog,
// since a static file has no server to run the dialog timer.
func renderStatic(ctx context.Context, w io.Writer, bookingURL, assets string) error {
	rc := components.RenderContext{
		Content:      content.Default(bookingURL),
		Menu:         menu.State{},
		ModalDelay:   modal.DefaultDelay,
		AssetsPrefix: assets,
	}

	var buf bytes.Buffer
	if err := components.Page(&rc).Render(ctx, &buf); err != nil {
		return fmt.Errorf("could not render page: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("could not write page: %w", err)
	}

	return nil
}

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the landing page as static HTML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if outputPath == "" || outputPath == "-" {
			return renderStatic(cmd.Context(), cmd.OutOrStdout(), bookingWidgetURL, assetsPrefix)
		}

		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", outputPath, err)
		}
		defer f.Close()

		if err := renderStatic(cmd.Context(), f, bookingWidgetURL, assetsPrefix); err != nil {
			return err
		}

		slog.Info("Page written", "path", outputPath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&outputPath,
		"output",
		"o",
		"-",
		"Output file, - for stdout")

	renderCmd.Flags().StringVar(&assetsPrefix,
		"assets",
		"assets",
		"Where the exported page looks for site.css and site.js")

	renderCmd.Flags().StringVar(&bookingWidgetURL,
		bookingFlag,
		"",
		"URL of the booking widget embedded in the booking section")
}
