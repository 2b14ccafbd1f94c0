package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	logLevel  string
	logFormat string

	// logger is built from the persistent flags before every command runs.
	logger *slog.Logger
)

var (
	// ErrLogLevel indicates an unsupported --log-level value.
	ErrLogLevel = errors.New("cli: unknown log level")
	// ErrLogFormat indicates an unsupported --log-format value.
	ErrLogFormat = errors.New("cli: unknown log format")
)

var rootCmd = &cobra.Command{
	Use:   "pipemaze",
	Short: "Trace the pipe loop in a grid and count the tiles it encloses",
	Long: `pipemaze reads a grid of pipe tiles (| - L J 7 F . S), follows the single
closed loop through the start tile S and classifies every other tile as
inside or outside that loop.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pipemaze version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger creates a slog.Logger writing to w at the given level and format.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("%w: %q", ErrLogLevel, levelStr)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch formatStr {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrLogFormat, formatStr)
	}
	return slog.New(handler), nil
}
