// Package main is the entry point for the voicectl CLI. It runs keyword
// extraction, query building and catalog searches from the terminal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/souqly/voicesearch/config"
	"github.com/souqly/voicesearch/internal/lexicon"
	"github.com/souqly/voicesearch/internal/observability/logging"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	lexiconFile string
	verbose     bool
)

// rootCmd is the base command for the voicectl CLI.
var rootCmd = &cobra.Command{
	Use:   "voicectl",
	Short: "Inspect the Souqly voice search pipeline",
	Long: `voicectl runs the voice search pipeline outside the HTTP server.

extract and query work offline on the built-in lexicon (optionally extended
with --lexicon). search calls the configured store catalog and prints the
ranked products together with the spoken reply.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of voicectl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "voicectl %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconFile, "lexicon", "", "lexicon extension file (overrides SOUQLY_LEXICON_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// cliLogger writes console logs to stderr so stdout stays parseable
func cliLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level := "warn"
	if cfg != nil && cfg.Log.Level != "" {
		level = cfg.Log.Level
	}
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: "console",
		Output: w,
	})
}

// loadLexicon resolves the lexicon from the flag, then the configuration
func loadLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	path := lexiconFile
	if path == "" && cfg != nil {
		path = cfg.Lexicon.File
	}
	return lexicon.LoadFile(path)
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
