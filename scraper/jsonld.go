package scraper

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/recipemd/recipemd/models"
	"github.com/recipemd/recipemd/parser"
)

// decodeRecipe parses one ld+json script body and extracts a schema.org
// Recipe node if present. Pages commonly wrap the recipe in a top-level
// array or an @graph collection.
func decodeRecipe(raw []byte) (*models.Recipe, bool) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	node, ok := findRecipeNode(doc)
	if !ok {
		return nil, false
	}
	return recipeFromNode(node), true
}

func findRecipeNode(doc any) (map[string]any, bool) {
	switch v := doc.(type) {
	case map[string]any:
		if isRecipeType(v["@type"]) {
			return v, true
		}
		if graph, ok := v["@graph"]; ok {
			return findRecipeNode(graph)
		}
	case []any:
		for _, item := range v {
			if node, ok := findRecipeNode(item); ok {
				return node, true
			}
		}
	}
	return nil, false
}

func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.EqualFold(v, "Recipe")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.EqualFold(s, "Recipe") {
				return true
			}
		}
	}
	return false
}

func recipeFromNode(node map[string]any) *models.Recipe {
	r := &models.Recipe{
		Title:        parser.NormalizeWhitespace(stringProp(node["name"])),
		Author:       authorName(node["author"]),
		TotalTime:    durationMinutes(stringProp(node["totalTime"])),
		Yield:        yieldText(node["recipeYield"]),
		ImageURL:     imageURL(node["image"]),
		Ingredients:  stringList(node["recipeIngredient"]),
		Instructions: instructionList(node["recipeInstructions"]),
		Nutrients:    nutrientList(node["nutrition"]),
	}
	if len(r.Ingredients) == 0 {
		// pre-2017 schema.org key
		r.Ingredients = stringList(node["ingredients"])
	}
	return r
}

func stringProp(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func stringList(v any) []string {
	var out []string
	switch t := v.(type) {
	case string:
		if s := parser.NormalizeWhitespace(t); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, item := range t {
			if s := parser.NormalizeWhitespace(stringProp(item)); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func authorName(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		return strings.TrimSpace(stringProp(t["name"]))
	case []any:
		for _, item := range t {
			if name := authorName(item); name != "" {
				return name
			}
		}
	}
	return ""
}

func yieldText(v any) string {
	switch t := v.(type) {
	case string:
		return parser.NormalizeWhitespace(t)
	case float64:
		return stringProp(t) + " servings"
	case []any:
		// sites often publish ["8", "8 servings"]; prefer the wordier form
		longest := ""
		for _, item := range t {
			if s := parser.NormalizeWhitespace(stringProp(item)); len(s) > len(longest) {
				longest = s
			}
		}
		return longest
	}
	return ""
}

func imageURL(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		return strings.TrimSpace(stringProp(t["url"]))
	case []any:
		for _, item := range t {
			if u := imageURL(item); u != "" {
				return u
			}
		}
	}
	return ""
}

// instructionList flattens recipeInstructions, which may be a plain string,
// a list of strings, HowToStep objects, or HowToSection groups.
func instructionList(v any) []string {
	var out []string
	switch t := v.(type) {
	case string:
		for _, line := range strings.Split(t, "\n") {
			if s := parser.NormalizeWhitespace(line); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range t {
			out = append(out, instructionList(item)...)
		}
	case map[string]any:
		if items, ok := t["itemListElement"]; ok {
			out = append(out, instructionList(items)...)
			break
		}
		if s := parser.NormalizeWhitespace(stringProp(t["text"])); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nutrientList(v any) []models.Nutrient {
	node, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(node))
	for key := range node {
		if strings.HasPrefix(key, "@") {
			continue
		}
		if stringProp(node[key]) == "" {
			continue
		}
		keys = append(keys, key)
	}
	// calories lead, the rest alphabetical, so output order is stable
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == "calories" {
			return true
		}
		if keys[j] == "calories" {
			return false
		}
		return keys[i] < keys[j]
	})

	out := make([]models.Nutrient, 0, len(keys))
	for _, key := range keys {
		out = append(out, models.Nutrient{
			Name:   parser.NutrientLabel(key),
			Amount: parser.NormalizeWhitespace(stringProp(node[key])),
		})
	}
	return out
}

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// durationMinutes converts an ISO-8601 duration like PT1H30M to whole
// minutes. Seconds round up to a full minute.
func durationMinutes(iso string) int {
	m := isoDurationRe.FindStringSubmatch(strings.TrimSpace(iso))
	if m == nil {
		return 0
	}
	days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	hours, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[4]))

	total := days*24*60 + hours*60 + minutes
	if seconds > 0 {
		total++
	}
	return total
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
