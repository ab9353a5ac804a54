package scraper

import "strings"

// supportedSites maps recipe site hosts to display names. Hosts outside
// this registry are only attempted in wild mode.
var supportedSites = map[string]string{
	"allrecipes.com":       "Allrecipes",
	"bbcgoodfood.com":      "BBC Good Food",
	"bonappetit.com":       "Bon Appétit",
	"budgetbytes.com":      "Budget Bytes",
	"cooking.nytimes.com":  "NYT Cooking",
	"delish.com":           "Delish",
	"epicurious.com":       "Epicurious",
	"food52.com":           "Food52",
	"foodnetwork.com":      "Food Network",
	"kingarthurbaking.com": "King Arthur Baking",
	"marmiton.org":         "Marmiton",
	"seriouseats.com":      "Serious Eats",
	"simplyrecipes.com":    "Simply Recipes",
	"smittenkitchen.com":   "Smitten Kitchen",
	"tasty.co":             "Tasty",
	"thekitchn.com":        "The Kitchn",
}

// SiteName resolves a hostname to the display name of a supported site.
// Subdomains resolve to their registered parent domain.
func SiteName(host string) (string, bool) {
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	if name, ok := supportedSites[host]; ok {
		return name, true
	}
	for domain, name := range supportedSites {
		if strings.HasSuffix(host, "."+domain) {
			return name, true
		}
	}
	return "", false
}
