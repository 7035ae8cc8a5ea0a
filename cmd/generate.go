package cmd

import (
	"os"

	"codegen/internal/app"
	"codegen/internal/config"
	"codegen/internal/export"
	"codegen/internal/file"
	"codegen/internal/generator"
	"codegen/internal/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type GenerateFlags struct {
	Interactive bool
	NoLower     bool
	Seed        uint64
}

func newGenerateCmd(state *cliState) *cobra.Command {
	var flags GenerateFlags

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of unique random codes",
		Long: `Generate distinct random codes. This will:

1. Build the alphabet from the selected character classes (or hex mode)
2. Draw codes until the requested number of distinct codes is reached
3. Print them to the terminal or write them to a CSV file

Run without flags on a terminal (or with --interactive) to be prompted for
every setting. When no character class is selected, lowercase letters are used.
Requests larger than alphabet^length distinct codes are rejected.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateGenerateConfig(&state.cfg.Generate)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, state.cfg, &flags)
		},
	}

	f := generateCmd.Flags()
	f.BoolVarP(&flags.Interactive, "interactive", "i", false, "Prompt for every setting")
	f.IntP("count", "n", 10, "Number of codes to generate")
	f.IntP("length", "l", 6, "Length of each code")
	f.Bool("lower", true, "Use lowercase letters a-z")
	f.BoolVar(&flags.NoLower, "no-lower", false, "Do not use lowercase letters")
	f.BoolP("upper", "U", false, "Use uppercase letters A-Z")
	f.BoolP("digits", "d", false, "Use digits 0-9")
	f.Bool("hex", false, "Use hexadecimal characters 0-9a-f only")
	f.Bool("hex-upper", false, "Use A-F instead of a-f in hex mode")
	f.Uint64Var(&flags.Seed, "seed", 0, "Random seed for reproducible output")
	f.StringP("out", "o", config.OutputTerminal, "Output destination: terminal or csv")
	f.String("csv-path", "codes.csv", "CSV output path")
	f.Bool("with-index", false, "Add a 1-based index column")
	f.Bool("header", true, "Write a header row to the CSV file")
	f.String("encoding", "utf-8", "CSV file encoding (utf-8, utf-8-sig, shift_jis, ...)")
	f.Int("progress-threshold", 10000, "Show a progress bar for CSV exports of at least this many codes (0 disables)")

	generateCmd.MarkFlagsMutuallyExclusive("lower", "no-lower")

	// Bind flags to viper for config file and environment variable support
	for key, name := range map[string]string{
		"generate.count":              "count",
		"generate.length":             "length",
		"generate.lower":              "lower",
		"generate.upper":              "upper",
		"generate.digits":             "digits",
		"generate.hex":                "hex",
		"generate.hex_upper":          "hex-upper",
		"generate.out":                "out",
		"generate.csv_path":           "csv-path",
		"generate.with_index":         "with-index",
		"generate.header":             "header",
		"generate.encoding":           "encoding",
		"generate.progress_threshold": "progress-threshold",
	} {
		state.v.BindPFlag(key, f.Lookup(name))
	}

	return generateCmd
}

// validateGenerateConfig checks settings that depend on the filesystem
func validateGenerateConfig(gc *config.GenerateConfig) error {
	if gc.Out != config.OutputCSV {
		return nil
	}
	return file.ValidateDstPath(gc.CSVPath)
}

// runGenerate creates and runs the generate application
func runGenerate(cmd *cobra.Command, cfg *config.Config, flags *GenerateFlags) error {
	gc := cfg.Generate
	if flags.NoLower {
		gc.Lower = false
	}

	prompter := ui.NewConsoleUI(cmd.InOrStdin(), cmd.OutOrStdout())
	progress := ui.NewProgressUI(cmd.ErrOrStderr(), gc.ProgressThreshold)
	exporter := export.NewService(file.NewService(), progress)
	generateApp := app.NewGenerateApp(cfg, prompter, exporter, cmd.OutOrStdout())

	if flags.Interactive || (cmd.Flags().NFlag() == 0 && stdinIsTerminal(cmd)) {
		return generateApp.RunInteractive(cmd.Context())
	}

	opts := &app.GenerateOptions{
		Generator: generator.Options{
			Length:       gc.Length,
			Lowercase:    gc.Lower,
			Uppercase:    gc.Upper,
			Digits:       gc.Digits,
			Hex:          gc.Hex,
			HexUppercase: gc.HexUpper,
		},
		Count:   gc.Count,
		Output:  gc.Out,
		CSVPath: gc.CSVPath,
		Export: export.Options{
			WithIndex: gc.WithIndex,
			Header:    gc.Header,
			Encoding:  gc.Encoding,
		},
	}
	if cmd.Flags().Changed("seed") {
		seed := flags.Seed
		opts.Generator.Seed = &seed
	}

	return generateApp.Run(cmd.Context(), opts)
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
