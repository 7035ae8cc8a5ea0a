package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"codegen/internal/duplicate"
	"codegen/internal/extract"
	"codegen/internal/file"
	"codegen/internal/log"
)

var ErrMissingFile = errors.New("file path is required")

// CheckOptions configures a duplicate check
type CheckOptions struct {
	Path    string
	Extract extract.Options
	Format  string // config.FormatText, FormatJSON or FormatYAML
}

// CheckResult is the outcome of a duplicate check
type CheckResult struct {
	File       string             `json:"file" yaml:"file"`
	Codes      int                `json:"codes" yaml:"codes"`
	Surplus    int                `json:"surplus" yaml:"surplus"`
	Duplicates []duplicate.Record `json:"duplicates" yaml:"duplicates"`
}

// HasDuplicates reports whether any code occurred more than once
func (r *CheckResult) HasDuplicates() bool {
	return len(r.Duplicates) > 0
}

// CheckApp implements duplicate check application logic
type CheckApp struct {
	files file.Service
	out   io.Writer
}

// NewCheckApp creates a new check application
func NewCheckApp(files file.Service, out io.Writer) *CheckApp {
	return &CheckApp{
		files: files,
		out:   out,
	}
}

// Run loads the selected column from opts.Path, counts duplicates and writes the report
func (c *CheckApp) Run(ctx context.Context, opts *CheckOptions) (*CheckResult, error) {
	if opts.Path == "" {
		return nil, ErrMissingFile
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := c.files.GetFileInfo(opts.Path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", file.ErrIsDirectory, opts.Path)
	}

	l := log.L().With().Str(log.FieldCommand, "check").Str(log.FieldFile, opts.Path).Logger()
	l.Info().Str(log.FieldSize, c.files.FormatFileSize(info.Size())).Msg("Reading file")

	codes, err := extract.Load(c.files, opts.Path, opts.Extract)
	if err != nil {
		return nil, err
	}

	records := duplicate.FindDuplicates(codes)
	result := &CheckResult{
		File:       opts.Path,
		Codes:      len(codes),
		Surplus:    duplicate.Total(records),
		Duplicates: records,
	}

	l.Info().
		Int(log.FieldRows, len(codes)).
		Int(log.FieldDuplicates, len(records)).
		Msg("Duplicate check finished")

	if err := WriteReport(c.out, result, opts.Format); err != nil {
		return nil, err
	}
	return result, nil
}
