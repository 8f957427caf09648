// Command recipectl runs the recipe matcher and plan catalog from the
// command line, without starting the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pageza/pantrychef/backend/internal/catalog"
	"github.com/pageza/pantrychef/backend/internal/observability"
	"github.com/pageza/pantrychef/backend/internal/payment"
	"github.com/pageza/pantrychef/backend/internal/service"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "recipectl",
		Short: "Suggest recipes from the ingredients you have",
		Long: `recipectl matches ingredients against the built-in recipe catalog.

Examples:
  recipectl match chicken rice               # First catalog keyword wins
  recipectl match beef --diet vegetarian     # Meatless variant of a beef recipe
  recipectl match salmon --servings 8        # Scale amounts for eight people
  recipectl keywords                         # List catalog keywords
  recipectl plans                            # Show premium plans`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	logger := func() *logrus.Logger {
		return observability.NewLogger(logLevel, false, rootCmd.ErrOrStderr())
	}

	rootCmd.AddCommand(newMatchCmd(logger), newKeywordsCmd(), newPlansCmd(logger))
	return rootCmd
}

func newMatchCmd(logger func() *logrus.Logger) *cobra.Command {
	var (
		diets      []string
		cuisine    string
		difficulty string
		servings   int
	)

	cmd := &cobra.Command{
		Use:   "match <ingredient>...",
		Short: "Suggest a recipe for the given ingredients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes := service.NewRecipeService(catalog.Default(), nil, nil, logger())
			recipe, err := recipes.Match(context.Background(), service.MatchRequest{
				Ingredients:         args,
				DietaryRestrictions: diets,
				Cuisine:             cuisine,
				Difficulty:          difficulty,
				Servings:            servings,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), recipe)
		},
	}

	cmd.Flags().StringSliceVar(&diets, "diet", nil, "Dietary restrictions, e.g. vegetarian,vegan")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "Preferred cuisine")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().IntVarP(&servings, "servings", "s", 0, "Scale the recipe to this many servings")
	return cmd
}

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the ingredient keywords the catalog knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			for _, kw := range cat.Keywords() {
				candidates, _ := cat.Lookup(kw)
				titles := make([]string, len(candidates))
				for i, r := range candidates {
					titles[i] = r.Title
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", kw, strings.Join(titles, ", "))
			}
			return nil
		},
	}
}

func newPlansCmd(logger func() *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Show the premium subscription plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subs := service.NewSubscriptionService(payment.NewStubProvider(nil), service.SubscriptionConfig{}, nil, logger())
			return writeJSON(cmd.OutOrStdout(), subs.Plans())
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
