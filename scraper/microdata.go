package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/recipemd/recipemd/models"
	"github.com/recipemd/recipemd/parser"
)

// extractMicrodata pulls a recipe out of schema.org microdata markup
// (itemtype/itemprop attributes). Fallback for pages without ld+json.
func extractMicrodata(root *goquery.Selection) (*models.Recipe, bool) {
	scope := root.Find(`[itemtype$="schema.org/Recipe"]`).First()
	if scope.Length() == 0 {
		return nil, false
	}

	r := &models.Recipe{
		Title:     parser.NormalizeWhitespace(scope.Find(`[itemprop="name"]`).First().Text()),
		Yield:     parser.NormalizeWhitespace(scope.Find(`[itemprop="recipeYield"]`).First().Text()),
		TotalTime: durationMinutes(timeAttr(scope.Find(`[itemprop="totalTime"]`).First())),
		Author:    microdataAuthor(scope),
		ImageURL:  microdataImage(scope),
	}

	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, sel *goquery.Selection) {
		if s := parser.NormalizeWhitespace(sel.Text()); s != "" {
			r.Ingredients = append(r.Ingredients, s)
		}
	})

	steps := scope.Find(`[itemprop="recipeInstructions"] [itemprop="text"]`)
	if steps.Length() == 0 {
		steps = scope.Find(`[itemprop="recipeInstructions"]`)
	}
	steps.Each(func(_ int, sel *goquery.Selection) {
		if s := parser.NormalizeWhitespace(sel.Text()); s != "" {
			r.Instructions = append(r.Instructions, s)
		}
	})

	if r.Title == "" && len(r.Ingredients) == 0 && len(r.Instructions) == 0 {
		return nil, false
	}
	return r, true
}

func timeAttr(sel *goquery.Selection) string {
	if v, ok := sel.Attr("datetime"); ok {
		return v
	}
	if v, ok := sel.Attr("content"); ok {
		return v
	}
	return strings.TrimSpace(sel.Text())
}

func microdataAuthor(scope *goquery.Selection) string {
	author := scope.Find(`[itemprop="author"]`).First()
	if name := author.Find(`[itemprop="name"]`).First(); name.Length() > 0 {
		return parser.NormalizeWhitespace(name.Text())
	}
	if v, ok := author.Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return parser.NormalizeWhitespace(author.Text())
}

func microdataImage(scope *goquery.Selection) string {
	img := scope.Find(`[itemprop="image"]`).First()
	for _, attr := range []string{"src", "content", "href"} {
		if v, ok := img.Attr(attr); ok && v != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
