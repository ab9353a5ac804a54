// Package parser contains text normalization and validation helpers for
// scraped recipes.
package parser

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"

	"github.com/recipemd/recipemd/models"
)

// ValidateRecipe ensures the scraper captured enough to render something
// useful before any file is written.
func ValidateRecipe(r *models.Recipe) error {
	if r == nil {
		return fmt.Errorf("recipe is nil")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe missing title")
	}
	if len(r.Ingredients) == 0 && len(r.Instructions) == 0 {
		return fmt.Errorf("recipe %q has no ingredients or instructions", r.Title)
	}
	return nil
}

// FileSlug converts a recipe title into a filesystem-friendly name:
// lowercased, runs of whitespace collapsed into single dashes.
func FileSlug(title string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(title)))
	return strings.Join(fields, "-")
}

// ImageExtension extracts the file extension from an image URL path,
// defaulting to jpg when the path carries none.
func ImageExtension(imageURL string) string {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "jpg"
	}
	ext := strings.TrimPrefix(path.Ext(parsed.Path), ".")
	if ext == "" {
		return "jpg"
	}
	return strings.ToLower(ext)
}

// SplitCamelCase converts a camelCase word into a capitalized sentence,
// e.g. "saturatedFatContent" -> "Saturated fat content". Nutrition keys in
// schema.org data arrive in camelCase.
func SplitCamelCase(word string) string {
	var b strings.Builder
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if i == 0 && len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// NutrientLabel turns a schema.org nutrition key into a display label,
// dropping the trailing "content" suffix ("fatContent" -> "Fat").
func NutrientLabel(key string) string {
	label := SplitCamelCase(strings.TrimSpace(key))
	return strings.TrimSpace(strings.TrimSuffix(label, " content"))
}

// NormalizeWhitespace collapses internal runs of whitespace and trims the
// ends. Scraped instruction text often carries stray newlines and tabs.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
