package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"codegen/internal/config"
	"codegen/internal/export"
	"codegen/internal/file"
	"codegen/internal/generator"
	"codegen/internal/log"
	"codegen/internal/ui"

	"github.com/google/uuid"
)

var ErrMissingCSVPath = errors.New("CSV path is required")

// GenerateOptions configures one generation run
type GenerateOptions struct {
	Generator generator.Options
	Count     int
	Output    string // config.OutputTerminal or config.OutputCSV
	CSVPath   string
	Export    export.Options
	Announce  bool // print a heading before terminal output
}

// GenerateApp implements code generation application logic
type GenerateApp struct {
	config   *config.Config
	ui       ui.Prompter
	exporter *export.Service
	out      io.Writer
}

// NewGenerateApp creates a new generate application
func NewGenerateApp(cfg *config.Config, prompter ui.Prompter, exporter *export.Service, out io.Writer) *GenerateApp {
	return &GenerateApp{
		config:   cfg,
		ui:       prompter,
		exporter: exporter,
		out:      out,
	}
}

// Run generates opts.Count distinct codes and writes them to the terminal or a CSV file
func (g *GenerateApp) Run(ctx context.Context, opts *GenerateOptions) error {
	if opts.Output == config.OutputCSV && opts.CSVPath == "" {
		return ErrMissingCSVPath
	}

	logger := log.L().With().
		Str(log.FieldCommand, "generate").
		Str(log.FieldRunID, uuid.NewString()).
		Logger()

	gen, err := generator.New(g.withDefaultAlphabet(opts.Generator))
	if err != nil {
		return fmt.Errorf("invalid generator configuration: %w", err)
	}

	logger.Info().
		Int(log.FieldLength, gen.Length()).
		Int(log.FieldCount, opts.Count).
		Str(log.FieldAlphabet, gen.Alphabet()).
		Bool(log.FieldSeeded, opts.Generator.Seed != nil).
		Msg("Generating codes")

	// Generation itself cannot be interrupted, so bail out before starting it
	if err := ctx.Err(); err != nil {
		return err
	}

	codes, err := gen.GenerateMany(opts.Count)
	if err != nil {
		return fmt.Errorf("failed to generate codes: %w", err)
	}
	logger.Debug().Int(log.FieldCount, len(codes)).Msg("Codes generated")

	if opts.Output == config.OutputCSV {
		if err := g.exporter.Save(opts.CSVPath, codes, opts.Export); err != nil {
			return fmt.Errorf("failed to write CSV %s: %w", opts.CSVPath, err)
		}
		logger.Info().Str(log.FieldFile, opts.CSVPath).Msg("CSV written")
		g.ui.ShowMessage(fmt.Sprintf("CSV written: %s", opts.CSVPath))
		return nil
	}

	if opts.Announce {
		fmt.Fprintln(g.out, "\nGenerated codes:")
	}
	return export.Print(g.out, codes, opts.Export.WithIndex)
}

// RunInteractive walks the user through the generation settings, then runs
func (g *GenerateApp) RunInteractive(ctx context.Context) error {
	opts, err := g.askOptions(ctx)
	if err != nil {
		return err
	}
	return g.Run(ctx, opts)
}

func (g *GenerateApp) askOptions(ctx context.Context) (*GenerateOptions, error) {
	defaults := g.config.Generate
	opts := &GenerateOptions{
		Output:   config.OutputTerminal,
		Announce: true,
		Export:   export.Options{Encoding: defaults.Encoding},
	}

	hex, err := g.ui.AskYesNo(ctx, "Generate hexadecimal codes (0-9, a-f only)?")
	if err != nil {
		return nil, err
	}
	if opts.Generator.Length, err = g.ui.AskInt(ctx, "Code length (e.g. 6)", 1); err != nil {
		return nil, err
	}
	if opts.Count, err = g.ui.AskInt(ctx, "Number of codes (e.g. 20)", 0); err != nil {
		return nil, err
	}

	if hex {
		opts.Generator.Hex = true
		if opts.Generator.HexUppercase, err = g.ui.AskYesNo(ctx, "Use uppercase A-F?"); err != nil {
			return nil, err
		}
	} else {
		if opts.Generator.Lowercase, err = g.ui.AskYesNo(ctx, "Use lowercase letters?"); err != nil {
			return nil, err
		}
		if opts.Generator.Uppercase, err = g.ui.AskYesNo(ctx, "Use uppercase letters?"); err != nil {
			return nil, err
		}
		if opts.Generator.Digits, err = g.ui.AskYesNo(ctx, "Use digits?"); err != nil {
			return nil, err
		}
	}

	toCSV, err := g.ui.AskYesNo(ctx, "Save to CSV?")
	if err != nil {
		return nil, err
	}
	if !toCSV {
		if opts.Export.WithIndex, err = g.ui.AskYesNo(ctx, "Show an index column?"); err != nil {
			return nil, err
		}
		return opts, nil
	}

	opts.Output = config.OutputCSV
	defaultPath, err := filepath.Abs(defaults.CSVPath)
	if err != nil {
		defaultPath = defaults.CSVPath
	}
	for {
		if opts.CSVPath, err = g.ui.AskString(ctx, "Output path", defaultPath); err != nil {
			return nil, err
		}
		verr := file.ValidateDstPath(opts.CSVPath)
		if verr == nil {
			break
		}
		g.ui.ShowMessage(verr.Error())
	}
	if opts.Export.WithIndex, err = g.ui.AskYesNo(ctx, "Add an index column?"); err != nil {
		return nil, err
	}
	if opts.Export.Header, err = g.ui.AskYesNo(ctx, "Write a header row?"); err != nil {
		return nil, err
	}
	if opts.Export.Encoding, err = g.ui.AskString(ctx, "Encoding", defaults.Encoding); err != nil {
		return nil, err
	}
	return opts, nil
}

// withDefaultAlphabet falls back to lowercase letters when no character class was chosen
func (g *GenerateApp) withDefaultAlphabet(opts generator.Options) generator.Options {
	if opts.Hex || opts.Lowercase || opts.Uppercase || opts.Digits {
		return opts
	}
	g.ui.ShowMessage("No character class selected, using lowercase letters only.")
	opts.Lowercase = true
	return opts
}
