package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/advocates/roster/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	prefsPath  string
	dataPath   string
	verbose    bool
}

// queryFlags seed the initial search and status filter.
type queryFlags struct {
	search string
	status string
}

func (g *globalFlags) options(q queryFlags) app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		PrefsPath:  g.prefsPath,
		DataPath:   g.dataPath,
		Verbose:    g.verbose,
		Search:     q.search,
		Status:     q.status,
	}
}

func addQueryFlags(fs *pflag.FlagSet, q *queryFlags) {
	fs.StringVarP(&q.search, "search", "s", "", "initial search text")
	fs.StringVar(&q.status, "status", "all", "status filter: all, active or inactive")
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	var query queryFlags

	root := &cobra.Command{
		Use:   "roster",
		Short: "Browse the advocates roll in the terminal",
		Long: `roster is a searchable, filterable, paginated browser for the advocates roll.

Run without a subcommand to open the browser. Use "roster scrape" first to
download the roll into the local dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options(query))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/roster/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/roster/prefs.toml)")
	pf.StringVar(&flags.dataPath, "data", "", "dataset file, overrides data_path and ROSTER_DATA")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	addQueryFlags(root.Flags(), &query)

	root.AddCommand(
		newBrowseCmd(&flags),
		newScrapeCmd(&flags),
		newListCmd(&flags),
		newLogCmd(&flags),
	)
	return root
}

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	var query queryFlags
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options(query))
		},
	}
	addQueryFlags(cmd.Flags(), &query)
	return cmd
}

func newScrapeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Download the published roll into the local dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Scrape(cmd.Context(), flags.options(queryFlags{}), cmd.OutOrStdout())
		},
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var query queryFlags
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of matching records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(query)
			opts.Page = page
			return app.List(opts, cmd.OutOrStdout())
		},
	}
	addQueryFlags(cmd.Flags(), &query)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to print")
	return cmd
}

func newLogCmd(flags *globalFlags) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the end of the browser log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tail(flags.options(queryFlags{}), lines, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines, 0 for all")
	return cmd
}
