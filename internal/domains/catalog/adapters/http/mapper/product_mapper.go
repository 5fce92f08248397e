package mapper

import (
	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
)

// Rating is the HTTP representation of a product rating.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

// Product is the HTTP representation of a catalog product.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// FromDomainProduct maps a catalog product into its transport representation.
func FromDomainProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
	}
}

// FromDomainProducts maps a product list. An empty catalog maps to an empty
// list, never null.
func FromDomainProducts(products []domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromDomainProduct(p))
	}
	return out
}
