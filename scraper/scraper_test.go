package scraper

import (
	"context"
	"errors"
	"net"
	"net/http"
	"reflect"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/recipemd/recipemd/config"
)

const fixturePage = `<!DOCTYPE html>
<html>
<head>
<title>Shakshuka Recipe</title>
<script type="application/ld+json">
{
	"@context": "https://schema.org",
	"@type": "Recipe",
	"name": "Shakshuka",
	"author": {"@type": "Person", "name": "Daniel Gritzer"},
	"totalTime": "PT40M",
	"recipeYield": "4 servings",
	"image": "https://img.example.test/shakshuka.jpg",
	"recipeIngredient": ["6 eggs", "800g canned tomatoes"],
	"recipeInstructions": [
		{"@type": "HowToStep", "text": "Simmer the tomatoes."},
		{"@type": "HowToStep", "text": "Crack in the eggs."}
	]
}
</script>
</head>
<body><h1>Shakshuka</h1></body>
</html>`

const microdataPage = `<!DOCTYPE html>
<html>
<body>
<article itemscope itemtype="https://schema.org/Recipe">
	<h1 itemprop="name">Pan Con Tomate</h1>
	<span itemprop="author" itemscope><span itemprop="name">Jose</span></span>
	<meta itemprop="totalTime" content="PT10M">
	<img itemprop="image" src="/img/tomate.png">
	<span itemprop="recipeYield">2 servings</span>
	<ul>
		<li itemprop="recipeIngredient">2 slices bread</li>
		<li itemprop="recipeIngredient">1 ripe tomato</li>
	</ul>
	<div itemprop="recipeInstructions">
		<p itemprop="text">Toast the bread.</p>
		<p itemprop="text">Rub with tomato.</p>
	</div>
</article>
</body>
</html>`

func htmlResponder(body string) httpmock.Responder {
	resp := httpmock.NewStringResponse(200, body)
	resp.Header.Set("Content-Type", "text/html")
	return httpmock.ResponderFromResponse(resp)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.WildMode = true
	return cfg
}

func TestScrapeJSONLD(t *testing.T) {
	url := "https://www.seriouseats.com/shakshuka-recipe"
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", url, htmlResponder(fixturePage))

	s := New(testConfig())
	s.WithTransport(transport)

	recipe, err := s.Scrape(context.Background(), url)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}

	if recipe.Title != "Shakshuka" {
		t.Errorf("Title = %q, want Shakshuka", recipe.Title)
	}
	if recipe.Host != "Serious Eats" {
		t.Errorf("Host = %q, want Serious Eats", recipe.Host)
	}
	if recipe.SourceURL != url {
		t.Errorf("SourceURL = %q, want %q", recipe.SourceURL, url)
	}
	if recipe.TotalTime != 40 {
		t.Errorf("TotalTime = %d, want 40", recipe.TotalTime)
	}
	if recipe.ImageURL != "https://img.example.test/shakshuka.jpg" {
		t.Errorf("ImageURL = %q", recipe.ImageURL)
	}
	if !reflect.DeepEqual(recipe.Ingredients, []string{"6 eggs", "800g canned tomatoes"}) {
		t.Errorf("Ingredients = %v", recipe.Ingredients)
	}
	if recipe.ScrapedAt.IsZero() {
		t.Error("ScrapedAt should be set")
	}
}

func TestScrapeMicrodataFallback(t *testing.T) {
	url := "http://example.test/pan-con-tomate"
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", url, htmlResponder(microdataPage))

	s := New(testConfig())
	s.WithTransport(transport)

	recipe, err := s.Scrape(context.Background(), url)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}

	if recipe.Title != "Pan Con Tomate" {
		t.Errorf("Title = %q, want Pan Con Tomate", recipe.Title)
	}
	if recipe.Author != "Jose" {
		t.Errorf("Author = %q, want Jose", recipe.Author)
	}
	if recipe.TotalTime != 10 {
		t.Errorf("TotalTime = %d, want 10", recipe.TotalTime)
	}
	// host is outside the registry, wild mode labels it with the domain
	if recipe.Host != "example.test" {
		t.Errorf("Host = %q, want example.test", recipe.Host)
	}
	// relative image resolved against the page URL
	if recipe.ImageURL != "http://example.test/img/tomate.png" {
		t.Errorf("ImageURL = %q", recipe.ImageURL)
	}
	if !reflect.DeepEqual(recipe.Instructions, []string{"Toast the bread.", "Rub with tomato."}) {
		t.Errorf("Instructions = %v", recipe.Instructions)
	}
}

func TestScrapeUnsupportedSite(t *testing.T) {
	cfg := testConfig()
	cfg.WildMode = false

	s := New(cfg)
	_, err := s.Scrape(context.Background(), "http://unknown-blog.test/dinner")

	var unsupported ErrUnsupportedSite
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want ErrUnsupportedSite", err)
	}
	if unsupported.Host != "unknown-blog.test" {
		t.Errorf("Host = %q, want unknown-blog.test", unsupported.Host)
	}
}

func TestScrapeNoRecipe(t *testing.T) {
	url := "http://example.test/about"
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", url, htmlResponder("<html><body><p>About us.</p></body></html>"))

	s := New(testConfig())
	s.WithTransport(transport)

	_, err := s.Scrape(context.Background(), url)
	var noRecipe ErrNoRecipe
	if !errors.As(err, &noRecipe) {
		t.Fatalf("err = %v, want ErrNoRecipe", err)
	}
}

func TestScrapeHTTPStatusClassification(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{status: http.StatusNotFound, expected: "not_found"},
		{status: http.StatusForbidden, expected: "forbidden"},
		{status: http.StatusTooManyRequests, expected: "rate_limited"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			url := "http://example.test/gone"
			transport := httpmock.NewMockTransport()
			transport.RegisterResponder("GET", url, httpmock.NewStringResponder(tt.status, ""))

			s := New(testConfig())
			s.WithTransport(transport)

			_, err := s.Scrape(context.Background(), url)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errorTypeLabel(err); got != tt.expected {
				t.Errorf("errorTypeLabel = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		expected   string
	}{
		{name: "nil", err: nil, statusCode: 0, expected: "unknown"},
		{name: "context timeout", err: context.DeadlineExceeded, statusCode: 0, expected: "timeout"},
		{name: "net timeout", err: &net.DNSError{IsTimeout: true}, statusCode: 0, expected: "timeout"},
		{name: "connection", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, statusCode: 0, expected: "connection"},
		{name: "forbidden", err: nil, statusCode: http.StatusForbidden, expected: "forbidden"},
		{name: "not found", err: nil, statusCode: http.StatusNotFound, expected: "not_found"},
		{name: "rate limited", err: nil, statusCode: http.StatusTooManyRequests, expected: "rate_limited"},
		{name: "server error without transport error", err: nil, statusCode: http.StatusInternalServerError, expected: "other"},
		{name: "other", err: errors.New("some other error"), statusCode: 0, expected: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorTypeLabel(classifyError(tt.err, tt.statusCode)); got != tt.expected {
				t.Fatalf("classifyError(%v, %d) = %q, want %q", tt.err, tt.statusCode, got, tt.expected)
			}
		})
	}
}

func TestClassifyErrorNeverSwallowsStatus(t *testing.T) {
	err := classifyError(nil, http.StatusInternalServerError)
	if err == nil {
		t.Fatal("a non-zero error status must classify as an error")
	}
	if got := err.Error(); got != "http status 500" {
		t.Fatalf("err = %q, want %q", got, "http status 500")
	}
}

func TestSiteName(t *testing.T) {
	tests := []struct {
		host  string
		name  string
		known bool
	}{
		{host: "www.seriouseats.com", name: "Serious Eats", known: true},
		{host: "seriouseats.com", name: "Serious Eats", known: true},
		{host: "recipes.marmiton.org", name: "Marmiton", known: true},
		{host: "unknown-blog.test", name: "", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			name, known := SiteName(tt.host)
			if name != tt.name || known != tt.known {
				t.Errorf("SiteName(%q) = (%q, %v), want (%q, %v)", tt.host, name, known, tt.name, tt.known)
			}
		})
	}
}
