package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/tweetbook/internal/config"
	"github.com/gorewood/tweetbook/internal/export"
	"github.com/gorewood/tweetbook/internal/pipeline"
)

// --- Shared types ---

// MonthStats is the post count of one month.
type MonthStats struct {
	Month string `json:"month" jsonschema:"month name"`
	Posts int    `json:"posts" jsonschema:"number of posts in the month"`
}

// YearStats is the post count of one year with its non-empty months.
type YearStats struct {
	Year   int          `json:"year"   jsonschema:"calendar year"`
	Posts  int          `json:"posts"  jsonschema:"number of posts in the year"`
	Months []MonthStats `json:"months" jsonschema:"non-empty months in calendar order"`
}

// --- Convert tool ---

// ConvertInput is the input for the convert tool. Empty fields fall back to
// the server configuration.
type ConvertInput struct {
	SourcePath      string `json:"source_path,omitempty"       jsonschema:"path to the tweets.js export"`
	OutputDir       string `json:"output_dir,omitempty"        jsonschema:"directory that receives one YEAR.md per year"`
	MediaDir        string `json:"media_dir,omitempty"         jsonschema:"local media directory referenced by image embeds (default tweets_media)"`
	MediaBaseURL    string `json:"media_base_url,omitempty"    jsonschema:"base URL for image embeds; overrides media_dir when set"`
	OnInvalidRecord string `json:"on_invalid_record,omitempty" jsonschema:"abort or skip records that fail to normalize (default abort)"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	OutputDir string   `json:"output_dir"         jsonschema:"directory the documents were written to"`
	Files     []string `json:"files"              jsonschema:"documents written, in year order"`
	Posts     int      `json:"posts"              jsonschema:"number of posts rendered"`
	Skipped   int      `json:"skipped"            jsonschema:"number of invalid records skipped"`
	Warnings  []string `json:"warnings,omitempty" jsonschema:"one message per skipped record"`
}

func handleConvert(defaults config.Config) mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		cfg := defaults.Merge(config.Config{
			SourcePath:      input.SourcePath,
			OutputDir:       input.OutputDir,
			MediaDir:        input.MediaDir,
			MediaBaseURL:    input.MediaBaseURL,
			OnInvalidRecord: input.OnInvalidRecord,
		})

		collector := &warningCollector{}
		result, err := pipeline.Run(cfg, collector)
		if err != nil {
			return nil, ConvertOutput{}, fmt.Errorf("converting %s: %w", cfg.SourcePath, err)
		}

		return nil, ConvertOutput{
			OutputDir: result.OutputDir,
			Files:     result.Files,
			Posts:     result.Posts,
			Skipped:   result.Skipped,
			Warnings:  collector.warnings,
		}, nil
	}
}

// --- Stats tool ---

// StatsInput is the input for the stats tool.
type StatsInput struct {
	SourcePath      string `json:"source_path,omitempty"       jsonschema:"path to the tweets.js export"`
	OnInvalidRecord string `json:"on_invalid_record,omitempty" jsonschema:"abort or skip records that fail to normalize (default abort)"`
}

// StatsOutput is the output for the stats tool.
type StatsOutput struct {
	Posts    int         `json:"posts"              jsonschema:"total number of posts"`
	Skipped  int         `json:"skipped"            jsonschema:"number of invalid records skipped"`
	Years    []YearStats `json:"years"              jsonschema:"per-year counts in ascending year order"`
	Warnings []string    `json:"warnings,omitempty" jsonschema:"one message per skipped record"`
}

func handleStats(defaults config.Config) mcp.ToolHandlerFor[StatsInput, StatsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
		cfg := defaults.Merge(config.Config{
			SourcePath:      input.SourcePath,
			OnInvalidRecord: input.OnInvalidRecord,
		})

		collector := &warningCollector{}
		result, err := pipeline.Build(cfg, collector)
		if err != nil {
			return nil, StatsOutput{}, fmt.Errorf("reading %s: %w", cfg.SourcePath, err)
		}

		return nil, StatsOutput{
			Posts:    result.Posts,
			Skipped:  result.Skipped,
			Years:    ToYearStats(result.Archive.Counts()),
			Warnings: collector.warnings,
		}, nil
	}
}

// --- Preview tool ---

// PreviewInput is the input for the preview tool.
type PreviewInput struct {
	SourcePath      string `json:"source_path,omitempty"       jsonschema:"path to the tweets.js export"`
	Year            int    `json:"year"                        jsonschema:"calendar year to render (required)"`
	MediaDir        string `json:"media_dir,omitempty"         jsonschema:"local media directory referenced by image embeds"`
	MediaBaseURL    string `json:"media_base_url,omitempty"    jsonschema:"base URL for image embeds"`
	OnInvalidRecord string `json:"on_invalid_record,omitempty" jsonschema:"abort or skip records that fail to normalize (default abort)"`
}

// PreviewOutput is the output for the preview tool.
type PreviewOutput struct {
	Year     int      `json:"year"               jsonschema:"calendar year rendered"`
	FileName string   `json:"file_name"          jsonschema:"name the document would be written under"`
	Markdown string   `json:"markdown"           jsonschema:"rendered document"`
	Skipped  int      `json:"skipped"            jsonschema:"number of invalid records skipped across the export"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"one message per skipped record"`
}

func handlePreview(defaults config.Config) mcp.ToolHandlerFor[PreviewInput, PreviewOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PreviewInput) (*mcp.CallToolResult, PreviewOutput, error) {
		if input.Year <= 0 {
			return nil, PreviewOutput{}, errors.New("year is required")
		}

		cfg := defaults.Merge(config.Config{
			SourcePath:      input.SourcePath,
			MediaDir:        input.MediaDir,
			MediaBaseURL:    input.MediaBaseURL,
			OnInvalidRecord: input.OnInvalidRecord,
		})

		collector := &warningCollector{}
		doc, result, err := pipeline.Preview(cfg, input.Year, collector)
		if err != nil {
			return nil, PreviewOutput{}, fmt.Errorf("previewing %d: %w", input.Year, err)
		}

		return nil, PreviewOutput{
			Year:     input.Year,
			FileName: export.FileName(input.Year),
			Markdown: doc,
			Skipped:  result.Skipped,
			Warnings: collector.warnings,
		}, nil
	}
}
