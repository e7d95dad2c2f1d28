package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openscan/pagenum/version"
)

var (
	cfgFile  string
	logLevel string
)

// ParseLogLevel converts a string log level to slog.Level. Supports:
// debug, info, warn, error (case-insensitive).
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be debug, info, warn, or error", level)
	}
}

// GetLogLevel returns the configured log level, checking the CLI flag,
// then the PAGENUM_LOG_LEVEL environment variable, then defaulting to info.
func GetLogLevel() slog.Level {
	level := logLevel
	if level == "" {
		level = os.Getenv("PAGENUM_LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}

	parsed, err := ParseLogLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		return slog.LevelInfo
	}
	return parsed
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: GetLogLevel()}))
}

var rootCmd = &cobra.Command{
	Use:   "pagenum",
	Short: "Infers printed page numbers for scanned books from OCR word observations",
	Long: `pagenum infers the printed page number for every page of a scanned book from
a stream of OCR word observations (text, bounding box, font size, word
confidence), emitting a per-page confidence and a document-level
confidence score.

It recognizes Arabic, Roman, single-letter and compound page-numbering
conventions, tolerates missing or noisy OCR, and distinguishes real page
numbers from other numeric text such as headings, footnotes, or dates.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pagenum/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (default: info, env: PAGENUM_LOG_LEVEL)",
	)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(schemesCmd)
}
