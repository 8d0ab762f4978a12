package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/sahilm/fuzzy"
)

const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

type ingredients []database.Ingredient

func (s ingredients) String(i int) string {
	return s[i].Name
}

func (s ingredients) Len() int {
	return len(s)
}

type cached struct {
	results []database.Ingredient
	expires time.Time
}

// Searcher looks ingredients up by name prefix and falls back to fuzzy
// matching over the whole catalog when no name starts with the query.
type Searcher struct {
	q     database.Querier
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewSearcher(q database.Querier, size int, ttl time.Duration) (*Searcher, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating search cache: %w", err)
	}
	return &Searcher{
		q:     q,
		cache: cache,
		ttl:   ttl,
		now:   time.Now,
	}, nil
}

func (s *Searcher) Search(ctx context.Context, query string) ([]database.Ingredient, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if v, ok := s.cache.Get(key); ok {
		entry := v.(cached)
		if s.now().Before(entry.expires) {
			return entry.results, nil
		}
		s.cache.Remove(key)
	}

	results, err := s.search(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, cached{results: results, expires: s.now().Add(s.ttl)})
	return results, nil
}

func (s *Searcher) search(ctx context.Context, query string) ([]database.Ingredient, error) {
	if query == "" {
		all, err := s.q.ListIngredients(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing ingredients: %w", err)
		}
		return nonNil(all), nil
	}

	prefixed, err := s.q.SearchIngredientsByPrefix(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching ingredients: %w", err)
	}
	if len(prefixed) > 0 {
		return prefixed, nil
	}

	all, err := s.q.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	matches := fuzzy.FindFrom(query, ingredients(all))
	results := make([]database.Ingredient, 0, len(matches))
	for _, m := range matches {
		results = append(results, all[m.Index])
	}
	return results, nil
}

// Purge drops every cached result.
func (s *Searcher) Purge() {
	s.cache.Purge()
}

func nonNil(in []database.Ingredient) []database.Ingredient {
	if in == nil {
		return []database.Ingredient{}
	}
	return in
}
