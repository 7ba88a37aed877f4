package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/tweetbook/internal/config"
	"github.com/gorewood/tweetbook/internal/pipeline"
)

// convertResult is the JSON shape of a convert run.
type convertResult struct {
	OutputDir string   `json:"output_dir"`
	Files     []string `json:"files"`
	Posts     int      `json:"posts"`
	Skipped   int      `json:"skipped"`
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var flags config.Config
	cmd := &cobra.Command{
		Use:   "convert [SOURCE]",
		Short: "Convert a tweets.js export into per-year markdown documents",
		Long: `Convert the tweets.js file of an archive export into one markdown document
per calendar year, written as YEAR.md into the output directory.

Existing documents are replaced. If any record cannot be read the run aborts
before anything is written, unless --on-invalid skip is given.

Examples:
  tweetbook convert data/tweets.js --out book
  tweetbook convert --out book --media-base-url https://cdn.example.com/media
  tweetbook convert data/tweets.js --out book --on-invalid skip --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.SourcePath = args[0]
			}
			return runConvert(cmd, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.OutputDir, "out", "o", "", "Directory that receives the YEAR.md documents")
	cmd.Flags().StringVar(&flags.MediaDir, "media-dir", "", "Local media directory used in image embeds (default \"tweets_media\")")
	cmd.Flags().StringVar(&flags.MediaBaseURL, "media-base-url", "", "Base URL for image embeds; overrides --media-dir")
	cmd.Flags().StringVar(&flags.OnInvalidRecord, "on-invalid", "", "What to do with unreadable records: abort or skip (default \"abort\")")
	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, flags config.Config) error {
	printer := newPrinter(cmd)

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return fail(printer, err)
	}

	result, err := pipeline.Run(cfg, printer)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(convertResult{
			OutputDir: result.OutputDir,
			Files:     result.Files,
			Posts:     result.Posts,
			Skipped:   result.Skipped,
		})
	}

	if err := printer.Success(map[string]any{
		"message": fmt.Sprintf("Wrote %d documents (%d posts) to %s", len(result.Files), result.Posts, result.OutputDir),
	}); err != nil {
		return err
	}
	if result.Skipped > 0 {
		printer.KeyValue("Skipped", strconv.Itoa(result.Skipped))
	}
	return nil
}
