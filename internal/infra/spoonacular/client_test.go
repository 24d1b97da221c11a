package spoonacular

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Spoonacular.BaseURL = server.URL + "/"
	cfg.Spoonacular.APIKey = "test-key"

	c, ok := NewClient(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*client)
	require.True(t, ok)

	return c
}

func intPtr(v int) *int { return &v }

func TestClient_Search_QueryAndMapping(t *testing.T) {
	var got url.Values
	var gotPath, gotRequestID string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"results": [
				{"id": 715415, "title": "Red Lentil Soup", "image": "https://img.spoonacular.com/715415.jpg",
				 "sourceUrl": "https://example.com/soup", "readyInMinutes": 55, "servings": 8},
				{"id": 716406, "title": "Asparagus Soup", "image": "https://img.spoonacular.com/716406.jpg",
				 "sourceUrl": "https://example.com/asparagus"}
			],
			"offset": 0, "number": 30, "totalResults": 2
		}`)
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	results, err := c.Search(ctx, &entity.RecipeSearchQuery{Ingredients: []string{"egg", "flour"}})
	require.NoError(t, err)

	assert.Equal(t, "/recipes/complexSearch", gotPath)
	assert.Equal(t, "req-123", gotRequestID)
	assert.Equal(t, "test-key", got.Get("apiKey"))
	assert.Equal(t, "egg,flour", got.Get("includeIngredients"))
	assert.Equal(t, "30", got.Get("number"))
	assert.Equal(t, "0", got.Get("offset"))
	assert.Equal(t, "true", got.Get("addRecipeInformation"))
	assert.Equal(t, "false", got.Get("fillIngredients"))
	assert.False(t, got.Has("intolerances"))

	require.Len(t, results, 2)
	assert.Equal(t, &entity.RecipeSummary{
		ID:        715415,
		Title:     "Red Lentil Soup",
		ImageURL:  "https://img.spoonacular.com/715415.jpg",
		SourceURL: "https://example.com/soup",
	}, results[0])

	// Exactly the four mapped fields are exposed.
	raw, err := json.Marshal(results[1])
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Len(t, fields, 4)
	for _, key := range []string{"id", "title", "imageUrl", "sourceUrl"} {
		assert.Contains(t, fields, key)
	}
}

func TestClient_Search_Options(t *testing.T) {
	tests := []struct {
		name            string
		query           *entity.RecipeSearchQuery
		wantOffset      string
		wantFill        string
		wantIntolerance string
	}{
		{
			name: "additional uses limit as offset",
			query: &entity.RecipeSearchQuery{
				Ingredients: []string{"rice"}, Sensitivities: []string{"gluten", "dairy"},
				Additional: true, AdditionalLimit: intPtr(60),
			},
			wantOffset: "60", wantFill: "true", wantIntolerance: "gluten,dairy",
		},
		{
			name: "limit ignored without additional",
			query: &entity.RecipeSearchQuery{
				Ingredients: []string{"rice"}, AdditionalLimit: intPtr(60),
			},
			wantOffset: "0", wantFill: "false",
		},
		{
			name: "additional without limit",
			query: &entity.RecipeSearchQuery{
				Ingredients: []string{"rice"}, Additional: true,
			},
			wantOffset: "0", wantFill: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got url.Values
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query()
				_, _ = io.WriteString(w, `{"results": []}`)
			})

			results, err := c.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Empty(t, results)

			assert.Equal(t, tt.wantOffset, got.Get("offset"))
			assert.Equal(t, tt.wantFill, got.Get("fillIngredients"))
			assert.Equal(t, tt.wantIntolerance, got.Get("intolerances"))
		})
	}
}

func TestClient_Search_Failures(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"quota exceeded": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = io.WriteString(w, `{"status":"failure","code":402}`)
		},
		"server error": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"malformed body": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"results": [`)
		},
	}

	for name, handler := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, handler)

			results, err := c.Search(context.Background(), &entity.RecipeSearchQuery{Ingredients: []string{"egg"}})
			assert.Error(t, err)
			assert.Nil(t, results)
		})
	}
}

func TestClient_Search_TransportError(t *testing.T) {
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) {})
	c.baseURL = "http://127.0.0.1:1"
	c.httpClient.Timeout = time.Second

	_, err := c.Search(context.Background(), &entity.RecipeSearchQuery{Ingredients: []string{"egg"}})
	assert.Error(t, err)
}
