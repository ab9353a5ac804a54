// Package scraper fetches a recipe page and extracts its structured data.
package scraper

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/recipemd/recipemd/config"
	"github.com/recipemd/recipemd/models"
)

// Scraper fetches recipe pages with a colly collector and extracts the
// structured recipe data. One instance is reusable across URLs; each fetch
// uses a fresh collector.
type Scraper struct {
	cfg       *config.Config
	transport http.RoundTripper
	Metrics   *Metrics
}

// New builds a scraper configured from cfg.
func New(cfg *config.Config) *Scraper {
	return &Scraper{
		cfg:     cfg,
		Metrics: NewMetrics(),
	}
}

// WithTransport overrides the HTTP transport. Used by tests to install a
// mock transport.
func (s *Scraper) WithTransport(rt http.RoundTripper) {
	s.transport = rt
}

// Scrape fetches recipeURL and returns the extracted recipe. It fails with
// ErrUnsupportedSite for unregistered hosts when wild mode is off, with a
// classified network error when the page is unreachable, and with
// ErrNoRecipe when the page carries no recognizable recipe data.
func (s *Scraper) Scrape(ctx context.Context, recipeURL string) (*models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsed, err := url.Parse(recipeURL)
	if err != nil {
		return nil, fmt.Errorf("parse recipe url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("recipe url must include a host")
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	site, known := SiteName(host)
	if !known {
		if !s.cfg.WildMode {
			s.Metrics.IncError("unsupported_site")
			return nil, ErrUnsupportedSite{Host: host}
		}
		site = host
	}

	var (
		ldScripts []string
		root      *goquery.Selection
		fetchErr  error
	)

	c := s.newCollector(parsed.Hostname())
	c.OnRequest(func(r *colly.Request) {
		r.Ctx.Put("start", time.Now())
		s.Metrics.IncFetch("started")
	})
	c.OnResponse(func(r *colly.Response) {
		if start, ok := r.Request.Ctx.GetAny("start").(time.Time); ok {
			s.Metrics.ObserveDuration(time.Since(start))
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		statusCode := 0
		if r != nil {
			statusCode = r.StatusCode
		}
		fetchErr = classifyError(err, statusCode)
		s.Metrics.IncError(errorTypeLabel(fetchErr))
	})
	c.OnHTML(`script[type="application/ld+json"]`, func(e *colly.HTMLElement) {
		ldScripts = append(ldScripts, e.Text)
	})
	c.OnHTML("html", func(e *colly.HTMLElement) {
		root = e.DOM
	})

	if err := c.Visit(recipeURL); err != nil && fetchErr == nil {
		fetchErr = classifyError(err, 0)
		s.Metrics.IncError(errorTypeLabel(fetchErr))
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	recipe, ok := extractRecipe(ldScripts, root)
	if !ok {
		s.Metrics.IncError("no_recipe")
		return nil, ErrNoRecipe{URL: recipeURL}
	}

	recipe.Host = site
	recipe.SourceURL = recipeURL
	recipe.ScrapedAt = time.Now()
	if recipe.ImageURL != "" {
		if abs, err := parsed.Parse(recipe.ImageURL); err == nil {
			recipe.ImageURL = abs.String()
		}
	}
	s.Metrics.IncRecipes()
	return recipe, nil
}

func extractRecipe(ldScripts []string, root *goquery.Selection) (*models.Recipe, bool) {
	for _, raw := range ldScripts {
		if r, ok := decodeRecipe([]byte(raw)); ok {
			return r, true
		}
	}
	if root != nil {
		if r, ok := extractMicrodata(root); ok {
			return r, true
		}
	}
	return nil, false
}

func (s *Scraper) newCollector(host string) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(s.cfg.UserAgent),
		colly.AllowedDomains(host, "www."+host, strings.TrimPrefix(host, "www.")),
	)
	c.SetRequestTimeout(s.cfg.Timeout)
	c.IgnoreRobotsTxt = true

	transport := s.transport
	if transport == nil {
		transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   s.cfg.Timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		}
	}
	c.WithTransport(transport)
	return c
}
