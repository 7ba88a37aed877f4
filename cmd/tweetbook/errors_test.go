package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/gorewood/tweetbook/internal/archive"
	"github.com/gorewood/tweetbook/internal/config"
	"github.com/gorewood/tweetbook/internal/export"
	"github.com/gorewood/tweetbook/internal/output"
	"github.com/gorewood/tweetbook/internal/post"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "already coded",
			err:  output.NewSystemError("disk full"),
			want: output.ExitSystemError,
		},
		{
			name: "missing config",
			err:  &config.MissingConfigError{Options: []string{"output_dir"}},
			want: output.ExitUserError,
		},
		{
			name: "invalid value",
			err:  &config.InvalidValueError{Option: "on_invalid_record", Value: "x", Err: errors.New("unknown policy")},
			want: output.ExitUserError,
		},
		{
			name: "export not found",
			err:  &archive.ReadError{Path: "tweets.js", Err: os.ErrNotExist},
			want: output.ExitUserError,
		},
		{
			name: "export unreadable",
			err:  &archive.ReadError{Path: "tweets.js", Err: os.ErrPermission},
			want: output.ExitSystemError,
		},
		{
			name: "export is a directory",
			err:  &archive.ReadError{Path: "data", Err: syscall.EISDIR},
			want: output.ExitSystemError,
		},
		{
			name: "malformed export",
			err:  &archive.MalformedExportError{Path: "tweets.js", Err: errors.New("unexpected end of JSON input")},
			want: output.ExitDataError,
		},
		{
			name: "invalid record",
			err:  &post.RecordError{Index: 4, SourceID: "42", Err: errors.New("bad timestamp")},
			want: output.ExitDataError,
		},
		{
			name: "write failure",
			err:  fmt.Errorf("run: %w", &export.OutputWriteError{Path: "out/2022.md", Err: os.ErrPermission}),
			want: output.ExitSystemError,
		},
		{
			name: "anything else",
			err:  errors.New("loading config: yaml: bad indentation"),
			want: output.ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitError(tt.err)
			if got.Code != tt.want {
				t.Errorf("Code = %d, want %d", got.Code, tt.want)
			}
			if !errors.Is(got, tt.err) && got != tt.err {
				t.Errorf("exitError should keep %v in the chain", tt.err)
			}
		})
	}
}
