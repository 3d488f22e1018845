// Package remote resolves recipes against a Spoonacular-compatible HTTP API.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/matt-dz/recipefinder/internal/filter"
	"github.com/matt-dz/recipefinder/internal/gateway"
	mHttp "github.com/matt-dz/recipefinder/internal/http"
	mJson "github.com/matt-dz/recipefinder/internal/json"
	"github.com/matt-dz/recipefinder/internal/recipe"
)

const (
	DefaultBaseURL  = "https://api.spoonacular.com"
	DefaultPageSize = 20

	detailConcurrency = 4
)

type Config struct {
	BaseURL  string
	APIKey   string
	PageSize int
	// RequestsPerSecond caps outbound calls. Zero disables throttling.
	RequestsPerSecond float64
	Burst             int
}

type Gateway struct {
	client   mHttp.HTTPDoer
	logger   *slog.Logger
	limiter  *rate.Limiter
	baseURL  string
	apiKey   string
	pageSize int
}

var _ gateway.Gateway = (*Gateway)(nil)

func New(client mHttp.HTTPDoer, logger *slog.Logger, conf Config) *Gateway {
	baseURL := strings.TrimRight(conf.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := conf.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	limit := rate.Inf
	if conf.RequestsPerSecond > 0 {
		limit = rate.Limit(conf.RequestsPerSecond)
	}
	burst := max(conf.Burst, 1)
	return &Gateway{
		client:   client,
		logger:   logger,
		limiter:  rate.NewLimiter(limit, burst),
		baseURL:  baseURL,
		apiKey:   conf.APIKey,
		pageSize: pageSize,
	}
}

type complexSearchResponse struct {
	Results []recipe.Recipe `json:"results"`
}

type ingredientMatch struct {
	ID int64 `json:"id"`
}

// get performs a throttled GET and decodes the body into dst. A 404 maps to
// gateway.ErrNotFound, every other failure wraps gateway.ErrTransport.
func (g *Gateway) get(ctx context.Context, path string, params url.Values, dst any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: waiting for rate limiter: %w", gateway.ErrTransport, err)
	}
	if g.apiKey != "" {
		params.Set("apiKey", g.apiKey)
	}
	endpoint := g.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %w", gateway.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: requesting %s: %w", gateway.ErrTransport, path, err)
	}
	if err := mHttp.ExpectStatus2xx(resp); err != nil {
		var statusErr *mHttp.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", path, gateway.ErrNotFound)
		}
		return fmt.Errorf("%w: %s: %w", gateway.ErrTransport, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := mJson.DecodeJSON(dst, json.NewDecoder(resp.Body)); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", gateway.ErrTransport, path, err)
	}
	return nil
}

func (g *Gateway) SearchByText(ctx context.Context, query string) ([]recipe.Recipe, error) {
	base, d := filter.Parse(query)
	params := url.Values{}
	params.Set("query", strings.TrimSpace(base))
	params.Set("number", strconv.Itoa(g.pageSize))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	setList := func(key string, values []string) {
		if len(values) > 0 {
			params.Set(key, strings.Join(values, ","))
		}
	}
	setList("cuisine", d.Cuisines)
	setList("diet", d.Diets)
	if d.MaxReadyMinutes > 0 {
		params.Set("maxReadyTime", strconv.Itoa(d.MaxReadyMinutes))
	}
	setList("includeIngredients", d.IncludeIngredients)
	setList("excludeIngredients", d.ExcludeIngredients)

	var resp complexSearchResponse
	if err := g.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []recipe.Recipe{}, nil
	}
	return resp.Results, nil
}

// SearchByIngredients finds matching ids and then fetches full details for
// each, preserving the ranking order of the match list.
func (g *Gateway) SearchByIngredients(ctx context.Context, list string) ([]recipe.Recipe, error) {
	params := url.Values{}
	params.Set("ingredients", list)
	params.Set("number", strconv.Itoa(g.pageSize))
	params.Set("ranking", "1")
	params.Set("ignorePantry", "true")

	var matches []ingredientMatch
	if err := g.get(ctx, "/recipes/findByIngredients", params, &matches); err != nil {
		return nil, err
	}

	details := make([]*recipe.Recipe, len(matches))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(detailConcurrency)
	for i, m := range matches {
		eg.Go(func() error {
			r, err := g.GetByID(egCtx, m.ID)
			if errors.Is(err, gateway.ErrNotFound) {
				g.logger.WarnContext(egCtx, "matched recipe has no details", slog.Int64("id", m.ID))
				return nil
			}
			if err != nil {
				return err
			}
			details[i] = &r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]recipe.Recipe, 0, len(details))
	for _, r := range details {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (g *Gateway) GetByID(ctx context.Context, id int64) (recipe.Recipe, error) {
	params := url.Values{}
	params.Set("includeNutrition", "true")

	var r recipe.Recipe
	if err := g.get(ctx, fmt.Sprintf("/recipes/%d/information", id), params, &r); err != nil {
		return recipe.Recipe{}, err
	}
	return r, nil
}

func (g *Gateway) GetByIDs(ctx context.Context, ids []int64) ([]recipe.Recipe, error) {
	if len(ids) == 0 {
		return []recipe.Recipe{}, nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	params := url.Values{}
	params.Set("ids", strings.Join(parts, ","))
	params.Set("includeNutrition", "true")

	var out []recipe.Recipe
	if err := g.get(ctx, "/recipes/informationBulk", params, &out); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return []recipe.Recipe{}, nil
		}
		return nil, err
	}
	if out == nil {
		return []recipe.Recipe{}, nil
	}
	return out, nil
}
