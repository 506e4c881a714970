package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// NewRootCmd builds the command tree. Running the root command with no
// arguments starts the interactive menu; every menu action is also
// available as a one-shot subcommand for scripting.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracker",
		Short: "Personal NSE stock tracker",
		Long: `Track National Stock Exchange equities from the terminal: look up
prices and fundamentals, compare tickers on a chart, plot moving
averages, and keep a local log of closing prices.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunMenu()
		},
	}

	root.AddCommand(
		newListCmd(app),
		newPriceCmd(app),
		newDetailsCmd(app),
		newCompareCmd(app),
		newTrendCmd(app),
		newVersionCmd(),
	)
	return root
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the constituents of the configured NSE index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showList()
		},
	}
}

func newPriceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "price SYMBOL",
		Short: "Show the latest closing price for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showPrice(args[0])
		},
	}
}

func newDetailsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "details SYMBOL",
		Short: "Show the quote snapshot for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showDetails(args[0])
		},
	}
}

func newCompareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compare SYMBOL...",
		Short: "Chart tickers against each other and record their closes",
		Long: `Fetch the trailing window for each ticker, draw every series that has
data on one chart, and append each latest close to the price history.
Tickers the provider has no data for are skipped with a warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showCompare(splitSymbols(args))
		},
	}
}

func newTrendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trend SYMBOL",
		Short: "Chart a ticker's closes with short and long moving averages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showTrend(args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("StockTracker %s\n", Version)
		},
	}
}

// splitSymbols accepts both space-separated args and comma-separated
// lists pasted as one argument.
func splitSymbols(args []string) []string {
	var symbols []string
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
	}
	return symbols
}
