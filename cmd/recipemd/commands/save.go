package commands

import (
	"log/slog"

	"github.com/recipemd/recipemd/scraper"
	"github.com/recipemd/recipemd/store"
	"github.com/spf13/cobra"
)

var saveFlags recipeFlags

func init() {
	saveFlags.register(saveCmd)
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save <url>",
	Short: "Scrapes a recipe URL and saves it as Markdown plus its image.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := saveFlags.validate(); err != nil {
			return err
		}

		s := scraper.New(cfg)
		recipe, err := fetchRecipe(cmd.Context(), s, args[0], saveFlags)
		if err != nil {
			return err
		}

		opts := renderOptions(recipe, saveFlags)
		path, err := saveRecipe(cmd.Context(), store.New(cfg.OutputDir), recipe, opts)
		if err != nil {
			return err
		}
		slog.Info("recipe saved", slog.String("path", path))
		return nil
	},
}
