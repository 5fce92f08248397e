package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidID    = errors.New("product id must be greater than zero")
	ErrEmptyTitle   = errors.New("product title is required")
	ErrInvalidPrice = errors.New("product price must not be negative")
)

// Rating aggregates customer ratings for a product.
type Rating struct {
	Rate  float64
	Count int64
}

// Product models one catalog entry as served by the remote product source.
type Product struct {
	ID          int64
	Title       string
	Price       float64
	Description string
	Category    string
	Image       string
	Rating      Rating
}

// Validate enforces invariants on the product.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Keywords returns the lowercased search terms derived from the title and
// category. Used by cache adapters to index products for search.
func (p Product) Keywords() []string {
	seen := map[string]struct{}{}
	var keywords []string
	for _, field := range []string{p.Title, p.Category} {
		for _, word := range strings.Fields(strings.ToLower(field)) {
			word = strings.Trim(word, ".,;:'\"")
			if word == "" {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// Matches reports whether the product matches a free-text query.
func (p Product) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range []string{p.Title, p.Category, p.Description} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
