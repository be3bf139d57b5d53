package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/souqly/voicesearch/config"
	"github.com/souqly/voicesearch/internal/usecase"
)

var extractCmd = &cobra.Command{
	Use:   "extract <text>",
	Short: "Extract the keyword record from an utterance",
	Long: `Extract prints the keyword record (productType, skinType, concern,
priceRange, ingredient, intent) found in the text as JSON. Unmatched
categories are null. No network calls are made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Build the catalog search query for an utterance",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(queryCmd)
}

func newOfflinePipeline(cmd *cobra.Command) (*usecase.KeywordExtractor, *usecase.QueryBuilder, error) {
	cfg, err := config.LoadOffline()
	if err != nil {
		return nil, nil, err
	}
	lex, err := loadLexicon(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := cliLogger(cfg, cmd.ErrOrStderr())
	return usecase.NewKeywordExtractor(lex, &logger), usecase.NewQueryBuilder(&logger), nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	extractor, _, err := newOfflinePipeline(cmd)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), extractor.Extract(joinArgs(args)))
}

func runQuery(cmd *cobra.Command, args []string) error {
	extractor, builder, err := newOfflinePipeline(cmd)
	if err != nil {
		return err
	}
	query := builder.Build(extractor.Extract(joinArgs(args)))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), query)
	return err
}
