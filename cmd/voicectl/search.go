package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/souqly/voicesearch/config"
	"github.com/souqly/voicesearch/internal/bootstrap"
	"github.com/souqly/voicesearch/internal/domain"
)

var (
	searchUser string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search the store catalog for an utterance",
	Long: `Search runs the full pipeline against the configured catalog
(SOUQLY_CATALOG_BASE_URL, SOUQLY_CATALOG_CONSUMER_KEY) and prints the reply
followed by the ranked products.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchUser, "user", "", "user name used to personalize the reply")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

type searchOutput struct {
	Products    []domain.RankedProduct `json:"products"`
	Keywords    domain.KeywordRecord   `json:"keywords"`
	SearchQuery string                 `json:"searchQuery"`
	Reply       string                 `json:"reply"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if lexiconFile != "" {
		cfg.Lexicon.File = lexiconFile
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := cliLogger(cfg, cmd.ErrOrStderr())
	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	session := &domain.VoiceSession{UserName: searchUser}
	result, reply, err := app.VoiceSearch.Handle(ctx, session, joinArgs(args))
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return err
	}

	out := searchOutput{
		Products:    result.Products,
		Keywords:    result.Keywords,
		SearchQuery: result.SearchQuery,
		Reply:       reply,
	}
	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return printSearch(cmd.OutOrStdout(), out)
}

func printSearch(w io.Writer, out searchOutput) error {
	fmt.Fprintln(w, out.Reply)
	fmt.Fprintf(w, "\nquery: %q, %d products\n", out.SearchQuery, len(out.Products))
	for i, p := range out.Products {
		price := "?"
		if p.Price.Valid {
			price = strconv.FormatFloat(p.Price.Value, 'f', -1, 64)
		}
		if _, err := fmt.Fprintf(w, "%2d. [%5.1f] %s (%s MAD)\n", i+1, p.RelevanceScore, p.Name, price); err != nil {
			return err
		}
	}
	return nil
}
