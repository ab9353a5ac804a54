package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/recipemd/recipemd/render"
	"github.com/recipemd/recipemd/scraper"
	"github.com/recipemd/recipemd/store"
	"github.com/spf13/cobra"
)

var (
	viewFlags      recipeFlags
	viewPromptSave bool
)

func init() {
	viewFlags.register(viewCmd)
	viewCmd.Flags().BoolVar(&viewPromptSave, "prompt-save", true, "Offer to save the recipe after viewing.")
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view <url>",
	Short: "Scrapes a recipe URL and prints it to the terminal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viewFlags.validate(); err != nil {
			return err
		}

		s := scraper.New(cfg)
		recipe, err := fetchRecipe(cmd.Context(), s, args[0], viewFlags)
		if err != nil {
			return err
		}

		opts := renderOptions(recipe, viewFlags)
		render.Terminal(cmd.OutOrStdout(), recipe, opts)

		if !viewPromptSave {
			return nil
		}
		if !promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), "Save this recipe?") {
			return nil
		}

		path, err := saveRecipe(cmd.Context(), store.New(cfg.OutputDir), recipe, opts)
		if err != nil {
			return err
		}
		slog.Info("recipe saved", slog.String("path", path))
		return nil
	},
}

func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
