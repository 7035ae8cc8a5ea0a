package cmd

import (
	"codegen/internal/app"
	"codegen/internal/config"
	"codegen/internal/extract"
	"codegen/internal/file"
	"codegen/internal/log"

	"github.com/spf13/cobra"
)

const checkCmdName = "check"

const (
	exitDuplicates  = 1
	exitReadFailure = 2 // also bad arguments and settings
)

func newCheckCmd(state *cliState) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   checkCmdName + " FILE",
		Short: "Check a CSV file for duplicate codes",
		Long: `Check one column of a delimited file for codes that occur more than once.

Values are trimmed (unless --no-trim) and optionally case folded before they
are compared. Duplicates are listed by descending count, then by code.

Exit status: 0 no duplicates, 1 duplicates found, 2 the file could not be
read or the arguments are invalid.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return usageError(cmd, cobra.ExactArgs(1)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, state.cfg, args[0])
		},
	}

	f := checkCmd.Flags()
	f.StringP("column", "c", "code", "Column name, or zero-based column index")
	f.Bool("no-header", false, "The file has no header row (select the column by index)")
	f.String("encoding", "utf-8", "File encoding (utf-8, utf-8-sig, shift_jis, ...)")
	f.String("delimiter", ",", `Field delimiter (single character, or "\t")`)
	f.Bool("ignore-case", false, "Lowercase codes before comparing")
	f.Bool("upper-case", false, "Uppercase codes before comparing")
	f.Bool("no-trim", false, "Keep surrounding whitespace")
	f.StringP("format", "f", config.FormatText, "Report format: text, json or yaml")

	checkCmd.MarkFlagsMutuallyExclusive("ignore-case", "upper-case")

	// Bind flags to viper for config file and environment variable support
	for key, name := range map[string]string{
		"check.column":      "column",
		"check.no_header":   "no-header",
		"check.encoding":    "encoding",
		"check.delimiter":   "delimiter",
		"check.ignore_case": "ignore-case",
		"check.upper_case":  "upper-case",
		"check.no_trim":     "no-trim",
		"check.format":      "format",
	} {
		state.v.BindPFlag(key, f.Lookup(name))
	}

	return checkCmd
}

// runCheck creates and runs the check application, mapping the outcome to an exit status
func runCheck(cmd *cobra.Command, cfg *config.Config, path string) error {
	cc := cfg.Check

	// Already validated with the rest of the configuration
	delimiter, err := extract.ParseDelimiter(cc.Delimiter)
	if err != nil {
		return &exitError{code: exitReadFailure, err: err}
	}

	opts := &app.CheckOptions{
		Path: path,
		Extract: extract.Options{
			Column:    extract.ParseColumn(cc.Column),
			HasHeader: !cc.NoHeader,
			Delimiter: delimiter,
			Encoding:  cc.Encoding,
			TrimSpace: !cc.NoTrim,
			ToLower:   cc.IgnoreCase,
			ToUpper:   cc.UpperCase,
		},
		Format: cc.Format,
	}

	checkApp := app.NewCheckApp(file.NewService(), cmd.OutOrStdout())
	result, err := checkApp.Run(cmd.Context(), opts)
	if err != nil {
		l := log.L()
		l.Error().Err(err).Str(log.FieldFile, path).Msg("Duplicate check failed")
		return &exitError{code: exitReadFailure, err: err}
	}

	if result.HasDuplicates() {
		return &exitError{code: exitDuplicates}
	}
	return nil
}
