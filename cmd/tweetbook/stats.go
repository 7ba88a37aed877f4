package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/tweetbook/internal/config"
	tweetbookmcp "github.com/gorewood/tweetbook/internal/mcp"
	"github.com/gorewood/tweetbook/internal/organize"
	"github.com/gorewood/tweetbook/internal/output"
	"github.com/gorewood/tweetbook/internal/pipeline"
)

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	var flags config.Config
	cmd := &cobra.Command{
		Use:   "stats [SOURCE]",
		Short: "Count posts per year and month",
		Long: `Read a tweets.js export and count its posts per year and month without
writing any documents.

Examples:
  tweetbook stats data/tweets.js
  tweetbook stats data/tweets.js --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.SourcePath = args[0]
			}
			return runStats(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.OnInvalidRecord, "on-invalid", "", "What to do with unreadable records: abort or skip (default \"abort\")")
	return cmd
}

// runStats executes the stats command.
func runStats(cmd *cobra.Command, flags config.Config) error {
	printer := newPrinter(cmd)

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return fail(printer, err)
	}

	result, err := pipeline.Build(cfg, printer)
	if err != nil {
		return fail(printer, err)
	}

	counts := result.Archive.Counts()
	if printer.IsJSON() {
		return printer.WriteJSON(tweetbookmcp.StatsOutput{
			Posts:   result.Posts,
			Skipped: result.Skipped,
			Years:   tweetbookmcp.ToYearStats(counts),
		})
	}

	printHumanStats(printer, counts, result)
	return nil
}

// printHumanStats prints one section per year followed by the totals.
func printHumanStats(printer *output.Printer, counts []organize.YearCount, result *pipeline.Result) {
	if len(counts) == 0 {
		printer.Println("No posts found")
		return
	}

	for _, yc := range counts {
		printer.Section(fmt.Sprintf("%d (%d posts)", yc.Year, yc.Posts))
		rows := make([][]string, 0, len(yc.Months))
		for _, mc := range yc.Months {
			rows = append(rows, []string{mc.Month.String(), strconv.Itoa(mc.Posts)})
		}
		printer.Table([]string{"Month", "Posts"}, rows)
	}

	printer.Println()
	printer.KeyValue("Total", strconv.Itoa(result.Posts))
	if result.Skipped > 0 {
		printer.KeyValue("Skipped", strconv.Itoa(result.Skipped))
	}
}
