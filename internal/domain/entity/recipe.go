package entity

import "time"

// Recipe is a bookmark saved by a user. It always belongs to exactly one user.
type Recipe struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	SourceURL string    `json:"sourceUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecipeSearchQuery is the caller's search request before it is translated
// into the upstream provider's query parameters.
type RecipeSearchQuery struct {
	Ingredients   []string
	Sensitivities []string
	Additional    bool
	// AdditionalLimit is the result offset used when Additional is set.
	AdditionalLimit *int
}

// Offset returns the number of upstream results to skip.
func (q *RecipeSearchQuery) Offset() int {
	if !q.Additional || q.AdditionalLimit == nil {
		return 0
	}

	return *q.AdditionalLimit
}

// RecipeSummary is a search hit reshaped from the upstream provider.
type RecipeSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	SourceURL string `json:"sourceUrl"`
}
