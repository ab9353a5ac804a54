package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/recipemd/recipemd/models"
	"github.com/recipemd/recipemd/parser"
	"github.com/recipemd/recipemd/render"
	"github.com/recipemd/recipemd/scraper"
	"github.com/recipemd/recipemd/store"
	"github.com/recipemd/recipemd/translate"
	"github.com/spf13/cobra"
)

// validExtras enumerates the accepted flavor tags.
var validExtras = []string{"veggie", "spicy", "sweet", "salty", "sour", "bitter", "umami"}

// recipeFlags are the presentation flags shared by view and save.
type recipeFlags struct {
	name      string
	category  string
	extras    []string
	translate bool
}

func (f *recipeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Name of the recipe, overriding the scraped title.")
	cmd.Flags().StringVar(&f.category, "category", "", "Category in which the recipe belongs.")
	cmd.Flags().StringSliceVarP(&f.extras, "extra", "e", nil,
		fmt.Sprintf("Extra tags for the recipe (among %s). Repeatable.", strings.Join(validExtras, ", ")))
	cmd.Flags().BoolVar(&f.translate, "translate", false, "Translate the recipe text via the configured translation service.")
}

func (f *recipeFlags) validate() error {
	for i, extra := range f.extras {
		normalized := strings.ToLower(strings.TrimSpace(extra))
		found := false
		for _, valid := range validExtras {
			if normalized == valid {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("invalid extra tag %q, must be one of: %s", extra, strings.Join(validExtras, ", "))
		}
		f.extras[i] = normalized
	}
	return nil
}

// fetchRecipe scrapes one URL using s and applies validation and the
// optional translation step.
func fetchRecipe(ctx context.Context, s *scraper.Scraper, url string, flags recipeFlags) (*models.Recipe, error) {
	recipe, err := s.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := parser.ValidateRecipe(recipe); err != nil {
		return nil, err
	}

	if flags.translate {
		client, err := translate.New(cfg.TranslateEndpoint, cfg.TranslateTarget, cfg.TranslateAPIKey)
		if err != nil {
			return nil, err
		}
		// failed fields keep their original text; the client logs each one
		_ = client.Recipe(ctx, recipe)
	}
	return recipe, nil
}

func renderOptions(recipe *models.Recipe, flags recipeFlags) render.Options {
	opts := render.Options{
		Name:          flags.name,
		Category:      flags.category,
		Extras:        flags.extras,
		ShowYield:     cfg.ShowYield,
		ShowTotalTime: cfg.ShowTotalTime,
	}
	if recipe.ImageURL != "" {
		opts.ImageFile = parser.FileSlug(opts.Title(recipe)) + "." + parser.ImageExtension(recipe.ImageURL)
	}
	return opts
}

// saveRecipe renders the markdown document and writes it and the recipe
// image to the output directory. A failed image download is logged but
// does not fail the save.
func saveRecipe(ctx context.Context, st *store.Store, recipe *models.Recipe, opts render.Options) (string, error) {
	content := render.Markdown(recipe, opts)
	slug := parser.FileSlug(opts.Title(recipe))

	path, err := st.SaveMarkdown(slug, content)
	if err != nil {
		return "", err
	}

	if recipe.ImageURL != "" {
		if _, err := st.SaveImage(ctx, recipe.ImageURL, opts.ImageFile); err != nil {
			slog.Warn("image download failed",
				slog.String("url", recipe.ImageURL),
				slog.Any("error", err),
			)
		}
	}
	return path, nil
}
