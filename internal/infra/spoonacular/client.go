// Package spoonacular implements recipe search against the Spoonacular API.
package spoonacular

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	complexSearchPath = "/recipes/complexSearch"

	// resultsPerSearch is the fixed page size requested from the provider.
	resultsPerSearch = 30
)

// Params defines the parameters required for the client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// client implements service.RecipeSearcher over HTTP.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// complexSearchResponse is the subset of the provider payload we read.
type complexSearchResponse struct {
	Results []struct {
		ID        int64  `json:"id"`
		Title     string `json:"title"`
		Image     string `json:"image"`
		SourceURL string `json:"sourceUrl"`
	} `json:"results"`
	TotalResults int `json:"totalResults"`
}

// NewClient creates the recipe searcher. A zero timeout leaves outbound calls unbounded.
func NewClient(params Params) service.RecipeSearcher {
	cfg := params.Config.Spoonacular

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     params.Logger,
	}
}

// Search issues one complexSearch request and reshapes the results. It never retries.
func (c *client) Search(ctx context.Context, query *entity.RecipeSearchQuery) ([]*entity.RecipeSummary, error) {
	endpoint := c.baseURL + complexSearchPath + "?" + c.buildQuery(query).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "spoonacular request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("spoonacular returned non-success status: %d", resp.StatusCode)
	}

	var payload complexSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode spoonacular response")
	}

	summaries := make([]*entity.RecipeSummary, 0, len(payload.Results))
	for _, r := range payload.Results {
		summaries = append(summaries, &entity.RecipeSummary{
			ID:        r.ID,
			Title:     r.Title,
			ImageURL:  r.Image,
			SourceURL: r.SourceURL,
		})
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Spoonacular search completed",
		slog.Int("ingredients", len(query.Ingredients)),
		slog.Int("results", len(summaries)),
		slog.Int("total_results", payload.TotalResults),
	)

	return summaries, nil
}

func (c *client) buildQuery(query *entity.RecipeSearchQuery) url.Values {
	values := url.Values{}
	values.Set("apiKey", c.apiKey)
	values.Set("includeIngredients", strings.Join(query.Ingredients, ","))
	if len(query.Sensitivities) > 0 {
		values.Set("intolerances", strings.Join(query.Sensitivities, ","))
	}
	values.Set("number", strconv.Itoa(resultsPerSearch))
	values.Set("addRecipeInformation", "true")
	values.Set("fillIngredients", strconv.FormatBool(query.Additional))
	values.Set("offset", strconv.Itoa(query.Offset()))

	return values
}
