package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/souqly/voicesearch/config"
	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/lexicon"
)

var lexiconCategory string

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "List lexicon entries in matching order",
	RunE:  runLexicon,
}

func init() {
	lexiconCmd.Flags().StringVar(&lexiconCategory, "category", "", "only list one category (productType, skinType, concern, priceRange, ingredient, intent)")
	rootCmd.AddCommand(lexiconCmd)
}

func runLexicon(cmd *cobra.Command, args []string) error {
	categories := lexicon.Categories
	if lexiconCategory != "" {
		c, ok := parseCategory(lexiconCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", lexiconCategory)
		}
		categories = []lexicon.Category{c}
	}

	cfg, err := config.LoadOffline()
	if err != nil {
		return err
	}
	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPATTERN\tTAG\tLABEL")
	for _, c := range categories {
		for _, e := range lex.Entries(c) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c, e.Pattern, e.Tag, lex.Label(domain.Tag(e.Tag)))
		}
	}
	return tw.Flush()
}

func parseCategory(name string) (lexicon.Category, bool) {
	for _, c := range lexicon.Categories {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
