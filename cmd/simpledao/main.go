package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"simple_dao/gov"
	"simple_dao/internal/config"
	"simple_dao/store"

	"github.com/spf13/cobra"
)

const (
	programName = "simpledao"
)

var globalFlags = struct {
	debug      bool
	configFile string
	dataDir    string
	caller     string
	at         int64
}{}

func commonRun() *slog.Logger {
	// Configure logger
	logLevel := slog.LevelInfo
	addSource := false
	if globalFlags.debug {
		logLevel = slog.LevelDebug
		addSource = true
	}
	logger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     logLevel,
		}),
	)
	slog.SetDefault(logger)
	return logger
}

// eventLogger forwards engine event lines into slog.
type eventLogger struct {
	logger *slog.Logger
}

func (l *eventLogger) Log(msg string) {
	l.logger.Info(msg, "component", "gov")
}

// devBank stands in for a real settlement backend: it acknowledges every
// transfer and leaves an audit line.
type devBank struct {
	logger *slog.Logger
}

func (b *devBank) Transfer(to gov.Address, amount gov.Amount) error {
	b.logger.Info("transfer settled",
		"component", "bank",
		"to", to.String(),
		"amount", gov.AmountToInt64(amount),
	)
	return nil
}

// resolveCaller picks the identity for a state-changing call: flag first,
// then config.
func resolveCaller(cfg *config.Config) (gov.Address, error) {
	caller := globalFlags.caller
	if caller == "" {
		caller = cfg.Caller
	}
	if caller == "" {
		return "", errors.New("no caller identity; pass --caller or set caller in config")
	}
	return gov.AddressFromString(caller), nil
}

// resolveTime returns the logical timestamp for the call, defaulting to wall
// clock. Tests and replays override it with --at.
func resolveTime() int64 {
	if globalFlags.at != 0 {
		return globalFlags.at
	}
	return time.Now().Unix()
}

// withEngine opens the state store, runs fn against a wired engine and
// commits on success. Any error discards the staged writes so a failed call
// leaves no trace.
func withEngine(cfg *config.Config, logger *slog.Logger, fn func(engine *gov.Engine) error) error {
	dataDir := globalFlags.dataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	st, err := store.New(dataDir, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	engine := gov.New(st, &devBank{logger: logger}, &eventLogger{logger: logger})
	if err := fn(engine); err != nil {
		st.Discard()
		return err
	}
	return st.Commit()
}

func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "member-governed treasury with proposal voting and time-locked execution",
	}

	// Global flags
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.dataDir, "data-dir", "", "state directory (defaults from config)")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.caller, "caller", "", "authenticated caller address")
	rootCmd.PersistentFlags().
		Int64Var(&globalFlags.at, "at", 0, "logical unix timestamp for the call (default: now)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		_, err := config.LoadConfig(globalFlags.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	}

	// Subcommands
	rootCmd.AddCommand(initCommand())
	rootCmd.AddCommand(memberCommand())
	rootCmd.AddCommand(proposeCommand())
	rootCmd.AddCommand(voteCommand())
	rootCmd.AddCommand(executeCommand())
	rootCmd.AddCommand(depositCommand())
	rootCmd.AddCommand(withdrawCommand())
	rootCmd.AddCommand(showCommand())

	// Execute cobra command
	if err := rootCmd.Execute(); err != nil {
		// NOTE: we purposely don't display the error, since cobra will have already displayed it
		os.Exit(1)
	}
}
