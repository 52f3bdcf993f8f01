package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rusenback/smslogs/internal/storage"
)

func newHistoryCmd(f *flags) *cobra.Command {
	var rangeFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded load and copy activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := storage.ParseTimeRange(rangeFlag)
			if err != nil {
				return err
			}
			cfg, err := f.load()
			if err != nil {
				return err
			}
			if cfg.Storage.Disabled {
				return fmt.Errorf("activity storage is disabled")
			}

			store, err := storage.NewStorage(cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer store.Close()

			events, err := store.Query(tr)
			if err != nil {
				return err
			}
			printHistory(os.Stdout, tr, events)
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", storage.Range1Hour.String(), "time range (30m, 1h, 6h, 1d, 1w)")
	return cmd
}

var (
	loadedColor = color.New(color.FgGreen)
	failedColor = color.New(color.FgRed, color.Bold)
	copiedColor = color.New(color.FgCyan)
	dimColor    = color.New(color.Faint)
)

// printHistory writes one line per event, oldest first
func printHistory(w io.Writer, tr storage.TimeRange, events []storage.Event) {
	if len(events) == 0 {
		fmt.Fprintf(w, "No activity in the last %s\n", tr)
		return
	}

	for _, e := range events {
		ts := dimColor.Sprint(e.Timestamp.Format("2006-01-02 15:04:05"))
		switch e.Kind {
		case storage.EventLoaded:
			fmt.Fprintf(w, "%s %s %d records\n", ts, loadedColor.Sprint("loaded     "), e.Count)
		case storage.EventLoadFailed:
			fmt.Fprintf(w, "%s %s %s\n", ts, failedColor.Sprint("load_failed"), singleLine(e.Detail))
		case storage.EventCopied:
			fmt.Fprintf(w, "%s %s %s\n", ts, copiedColor.Sprint("copied     "), e.Detail)
		default:
			fmt.Fprintf(w, "%s %-11s %s\n", ts, e.Kind, e.Detail)
		}
	}
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
