package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"codegen/internal/config"
	"codegen/internal/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cliState is shared by the root command and its subcommands
type cliState struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
}

// exitError carries a process exit code out of a command. err may be nil
// when the outcome has already been reported (e.g. duplicates found).
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewRootCmd builds the command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	state := &cliState{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "codegen",
		Short: "Generate unique random codes and check CSV files for duplicates",
		Long: `codegen creates batches of distinct random codes and audits code lists.

Codes are drawn from lowercase letters, uppercase letters, digits or a
hexadecimal alphabet. Every code in a batch is unique.

Usage:
  Generate interactively:  codegen generate
  Generate from flags:     codegen generate --count 500 --length 8 --upper --digits --out csv
  Check a CSV file:        codegen check codes.csv --column code --ignore-case

Settings can also come from $HOME/.codegen.yaml or CODEGEN_* environment
variables (e.g. CODEGEN_GENERATE_LENGTH=10).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := state.initConfig(); err != nil {
				return usageError(cmd, err)
			}

			cfg, err := config.Load(state.v)
			if err != nil {
				return usageError(cmd, err)
			}
			if err := cfg.Validate(); err != nil {
				return usageError(cmd, fmt.Errorf("invalid configuration: %w", err))
			}
			state.cfg = cfg

			log.Init(cfg.Log)
			if used := state.v.ConfigFileUsed(); used != "" {
				l := log.L()
				l.Debug().Str(log.FieldFile, used).Msg("Using config file")
			}
			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&state.cfgFile, "config", "", "config file (default is $HOME/.codegen.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "human readable logs instead of JSON")

	state.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	state.v.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))

	// Set up viper environment variable support
	state.v.SetEnvPrefix("CODEGEN")
	state.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	state.v.AutomaticEnv()

	// Inherited by subcommands that do not set their own
	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.AddCommand(newGenerateCmd(state))
	rootCmd.AddCommand(newCheckCmd(state))

	return rootCmd
}

// initConfig reads in the config file, if any
func (s *cliState) initConfig() error {
	if s.cfgFile != "" {
		// Use config file from the flag
		s.v.SetConfigFile(s.cfgFile)
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", s.cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	// Search config in home directory with name ".codegen" (without extension)
	s.v.AddConfigPath(home)
	s.v.SetConfigType("yaml")
	s.v.SetConfigName(".codegen")

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Execute runs the root command and exits with the command's status.
func Execute() {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(createContext())
	os.Exit(exitCode(err, rootCmd.ErrOrStderr()))
}

// exitCode maps a command error to a process exit status, reporting it on w
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintf(w, "Error: %v\n", exitErr.err)
		}
		return exitErr.code
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}

// usageError gives bad arguments, flags and settings of the check command their
// own exit status, so they are not mistaken for "duplicates found"
func usageError(cmd *cobra.Command, err error) error {
	if err != nil && cmd.Name() == checkCmdName {
		return &exitError{code: exitReadFailure, err: err}
	}
	return err
}

// createContext creates a context that cancels on interrupt signals
func createContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	return ctx
}
