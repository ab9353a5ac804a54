// Package translate calls a LibreTranslate-compatible API to convert
// recipe text into a target language.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/recipemd/recipemd/models"
)

// cacheSize bounds the per-client translation memo. Batch runs repeat
// common ingredient lines ("salt", "olive oil") constantly.
const cacheSize = 2048

// Client talks to one translation endpoint with a fixed target language.
type Client struct {
	http   *resty.Client
	target string
	apiKey string
	cache  *lru.Cache[string, string]
}

type request struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type response struct {
	TranslatedText string `json:"translatedText"`
}

type apiError struct {
	Error string `json:"error"`
}

// New builds a client for a LibreTranslate-compatible endpoint. target is
// the destination language code ("en", "fr", ...).
func New(endpoint, target, apiKey string) (*Client, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create translation cache: %w", err)
	}
	return &Client{
		http:   resty.New().SetBaseURL(endpoint),
		target: target,
		apiKey: apiKey,
		cache:  cache,
	}, nil
}

// HTTPClient exposes the underlying client so tests can install a mock
// transport.
func (c *Client) HTTPClient() *http.Client {
	return c.http.GetClient()
}

// Translate converts a single string, memoizing results for the lifetime
// of the client. Empty input translates to itself without a network call.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if cached, ok := c.cache.Get(text); ok {
		return cached, nil
	}

	var (
		out    response
		outErr apiError
	)
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(request{
			Query:  text,
			Source: "auto",
			Target: c.target,
			Format: "text",
			APIKey: c.apiKey,
		}).
		SetResult(&out).
		SetError(&outErr).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	if res.IsError() {
		if outErr.Error != "" {
			return "", fmt.Errorf("translate: %s (status %d)", outErr.Error, res.StatusCode())
		}
		return "", fmt.Errorf("translate: status %d", res.StatusCode())
	}
	if out.TranslatedText == "" {
		return "", fmt.Errorf("translate: empty response")
	}

	c.cache.Add(text, out.TranslatedText)
	return out.TranslatedText, nil
}

// Recipe translates r in place, field by field. Failures degrade
// gracefully: the field keeps its original text and the first error is
// returned so the caller can log it.
func (c *Client) Recipe(ctx context.Context, r *models.Recipe) error {
	var firstErr error
	apply := func(field string, value *string) {
		translated, err := c.Translate(ctx, *value)
		if err != nil {
			slog.Warn("translation failed, keeping original text",
				slog.String("field", field),
				slog.Any("error", err),
			)
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		*value = translated
	}

	apply("title", &r.Title)
	apply("yield", &r.Yield)
	for i := range r.Ingredients {
		apply("ingredient", &r.Ingredients[i])
	}
	for i := range r.Instructions {
		apply("instruction", &r.Instructions[i])
	}
	return firstErr
}
