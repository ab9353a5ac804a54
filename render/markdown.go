// Package render turns a scraped recipe into its output forms: a Markdown
// document for the recipe manager and a styled terminal view.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/recipemd/recipemd/models"
)

// Options carries the presentation knobs shared by both renderers.
type Options struct {
	// Name overrides the scraped title when set.
	Name string
	// Category and Extras become tag lines in the front-matter header.
	Category string
	Extras   []string
	// ImageFile is the local filename the image will be saved under.
	ImageFile string
	// ShowYield and ShowTotalTime toggle the matching header lines.
	ShowYield     bool
	ShowTotalTime bool
}

// Title resolves the display title for a recipe under these options.
func (o Options) Title(r *models.Recipe) string {
	if o.Name != "" {
		return o.Name
	}
	return r.Title
}

// Markdown renders the recipe document: a front-matter header followed by
// ingredient bullets and blockquoted instructions. Output is deterministic
// for a given recipe and options; empty fields produce no header lines.
func Markdown(r *models.Recipe, opts Options) string {
	var b strings.Builder

	b.WriteString("---\n")
	writeField(&b, "title", capitalize(opts.Title(r)))
	writeField(&b, "category", capitalize(opts.Category))
	writeField(&b, "source", r.SourceURL)
	writeField(&b, "image", opts.ImageFile)
	if opts.ShowYield {
		writeField(&b, "size", r.Yield)
	}
	if opts.ShowTotalTime && r.TotalTime > 0 {
		writeField(&b, "time", fmt.Sprintf("%d mins", r.TotalTime))
	}
	if len(r.Nutrients) > 0 {
		b.WriteString("nutrition:\n")
		for _, n := range r.Nutrients {
			fmt.Fprintf(&b, "  - %s %s\n", n.Name, n.Amount)
		}
	}
	for _, extra := range opts.Extras {
		fmt.Fprintf(&b, "%s: x\n", strings.ToLower(extra))
	}
	b.WriteString("---\n\n")

	for _, ingredient := range r.Ingredients {
		fmt.Fprintf(&b, "* %s\n", ingredient)
	}
	b.WriteString("\n")

	quoted := make([]string, 0, len(r.Instructions))
	for _, instruction := range r.Instructions {
		quoted = append(quoted, "> "+instruction)
	}
	b.WriteString(strings.Join(quoted, "\n\n---\n\n"))
	b.WriteString("\n")

	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", key, value)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
