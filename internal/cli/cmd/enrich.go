package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/favbuddy/internal/application/usecase"
	"github.com/bnema/favbuddy/internal/cli"
	"github.com/bnema/favbuddy/internal/cli/model"
	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/logging"
)

// eventBuffer lets the pipeline run ahead of a slow terminal.
const eventBuffer = 64

var (
	enrichOutput      string
	enrichPlain       bool
	enrichMetricsFile string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <bookmarks.html>",
	Short: "Embed favicons into a bookmark export",
	Long: `Read a Netscape bookmark export, attach an icon to every link and write
the result next to the input as <name>-with-favicons--<timestamp>.html.

Press q (or Ctrl+C) to stop after the current link. Icons fetched so far are
kept in the cache, but no output document is written.`,
	Example: `  favbuddy enrich bookmarks.html
  favbuddy enrich bookmarks.html -o enriched.html
  favbuddy enrich bookmarks.html --plain > transcript.log`,
	Args: cobra.ExactArgs(1),
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)
	enrichCmd.Flags().StringVarP(&enrichOutput, "output", "o", "", "output file (default: timestamped file next to the input)")
	enrichCmd.Flags().BoolVar(&enrichPlain, "plain", false, "print the transcript instead of the progress view")
	enrichCmd.Flags().StringVar(&enrichMetricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	input := usecase.EnrichInput{InputPath: args[0], OutputPath: enrichOutput}
	useTUI := !enrichPlain && isatty.IsTerminal(os.Stdout.Fd())
	if useTUI {
		if err := app.UseFileLogger(); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("logging to stderr")
		}
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if useTUI {
		err = enrichWithTUI(ctx, app, input)
	} else {
		err = enrichWithTranscript(ctx, app, input, cmd.OutOrStdout())
	}

	if enrichMetricsFile != "" {
		if mErr := app.Metrics.WriteTextfile(enrichMetricsFile); mErr != nil {
			logging.FromContext(app.Ctx()).Warn().Err(mErr).Str("path", enrichMetricsFile).Msg("failed to write metrics")
		}
	}
	return err
}

// enrichWithTranscript prints transcript lines as the run emits them.
func enrichWithTranscript(ctx context.Context, app *cli.App, input usecase.EnrichInput, w io.Writer) error {
	events := make(chan entity.Event, eventBuffer)

	var g errgroup.Group
	g.Go(func() error {
		defer close(events)
		_, err := app.EnrichUC.Run(ctx, input, events)
		return err
	})
	g.Go(func() error {
		var writeErr error
		for ev := range events {
			line, ok := ev.(entity.LogLine)
			if !ok || writeErr != nil {
				continue
			}
			if _, err := fmt.Fprintln(w, line.Text); err != nil {
				// keep draining so the run can finish
				writeErr = err
			}
		}
		return writeErr
	})
	return g.Wait()
}

// enrichWithTUI runs the pipeline behind the Bubble Tea progress view.
func enrichWithTUI(ctx context.Context, app *cli.App, input usecase.EnrichInput) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan entity.Event, eventBuffer)
	p := tea.NewProgram(model.NewEnrichModel(app.Theme, input.InputPath, events, cancel))

	var g errgroup.Group
	g.Go(func() error {
		session, err := app.EnrichUC.Run(ctx, input, events)
		close(events)
		p.Send(model.RunFinishedMsg{Session: session, Err: err})
		return err
	})
	g.Go(func() error {
		_, err := p.Run()
		if err != nil {
			cancel()
		}
		// The view may exit before the run does; Run blocks on unread events.
		for range events {
		}
		if err != nil {
			return fmt.Errorf("progress view: %w", err)
		}
		return nil
	})
	return g.Wait()
}
