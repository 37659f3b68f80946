package hoteles

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/mundomaya/hoteles/db"
	"github.com/mundomaya/hoteles/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var listEvents bool

func reasonOrDash(reason string) string {
	if reason == "" {
		return "-"
	}

	return reason
}

func printCounts(w io.Writer, counts []model.EventCount) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "KIND\tREASON\tCOUNT")

	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Kind, reasonOrDash(c.Reason), c.Count)
	}

	return tw.Flush()
}

// printEvents writes the raw impression log, one event per line.
func printEvents(w io.Writer, events iter.Seq2[model.ModalEvent, error], bar *progressbar.ProgressBar) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "TIME\tMOUNT\tKIND\tREASON")

	for e, err := range events {
		if err != nil {
			return fmt.Errorf("could not list events: %w", err)
		}

		if err := bar.Add(1); err != nil {
			slog.Error("could not update progress bar", "error", err)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Timestamp.UTC().Format(time.RFC3339), e.MountID, e.Kind, reasonOrDash(e.Reason))
	}

	if err := bar.Finish(); err != nil {
		slog.Error("could not finish progress bar", "error", err)
	}

	return tw.Flush()
}

// eventsCmd represents the events command.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Summarize how the promo dialog was received",
	Long: `Read the impression log written by serve and print counts per kind and dismiss reason.
With --list every recorded event is printed instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		storage, err := db.ConnectDB(eventsPath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", eventsPath, err)
		}
		defer storage.Close()

		if listEvents {
			bar := progressbar.Default(-1, "Scanning impression log...")

			return printEvents(cmd.OutOrStdout(), storage.AllIterator(), bar)
		}

		counts, err := storage.GatherCounts()
		if err != nil {
			return fmt.Errorf("could not count events: %w", err)
		}

		return printCounts(cmd.OutOrStdout(), counts)
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVarP(&eventsPath,
		"events",
		"e",
		"./hoteles.sqlite",
		"Path of the promo impression log")
	eventsCmd.Flags().BoolVarP(&listEvents,
		"list",
		"l",
		false,
		"Print every recorded event instead of counts")
}
