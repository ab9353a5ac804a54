package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/recipemd/recipemd/models"
)

const terminalWidth = 80

var (
	titleStyle   = text.Colors{text.Bold, text.FgGreen}
	sectionStyle = text.Colors{text.Bold, text.FgCyan}
	metaStyle    = text.Colors{text.Faint}
)

// Terminal writes a styled recipe view. Callers piping output elsewhere
// can turn off ANSI styling globally with text.DisableColors.
func Terminal(w io.Writer, r *models.Recipe, opts Options) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Sprint(capitalize(opts.Title(r))))

	source := r.Host
	if r.SourceURL != "" {
		source = fmt.Sprintf("%s — %s", r.Host, r.SourceURL)
	}
	fmt.Fprintln(w, metaStyle.Sprint(source))
	if r.Author != "" {
		fmt.Fprintln(w, metaStyle.Sprint("By "+r.Author))
	}

	var meta []string
	if opts.ShowYield && r.Yield != "" {
		meta = append(meta, "Serves: "+r.Yield)
	}
	if opts.ShowTotalTime && r.TotalTime > 0 {
		meta = append(meta, fmt.Sprintf("Total time: %d mins", r.TotalTime))
	}
	if tags := tagLine(opts); tags != "" {
		meta = append(meta, "Tags: "+tags)
	}
	if len(meta) > 0 {
		fmt.Fprintln(w, strings.Join(meta, "   "))
	}

	if len(r.Ingredients) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Sprint("Ingredients"))
		for _, ingredient := range r.Ingredients {
			fmt.Fprintf(w, "  • %s\n", ingredient)
		}
	}

	if len(r.Instructions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Sprint("Instructions"))
		for i, instruction := range r.Instructions {
			prefix := fmt.Sprintf("  %d. ", i+1)
			wrapped := text.WrapSoft(instruction, terminalWidth-len(prefix))
			indent := strings.Repeat(" ", len(prefix))
			lines := strings.Split(wrapped, "\n")
			fmt.Fprintf(w, "%s%s\n", prefix, lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(w, "%s%s\n", indent, line)
			}
		}
	}

	if len(r.Nutrients) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Sprint("Nutrition"))
		for _, n := range r.Nutrients {
			fmt.Fprintf(w, "  %s: %s\n", n.Name, n.Amount)
		}
	}
	fmt.Fprintln(w)
}

func tagLine(opts Options) string {
	var tags []string
	if opts.Category != "" {
		tags = append(tags, strings.ToLower(opts.Category))
	}
	for _, extra := range opts.Extras {
		tags = append(tags, strings.ToLower(extra))
	}
	return strings.Join(tags, ", ")
}
