// Package token serializes the cart to and from the single record held by
// the client between requests. The server keeps no copy; the encoded token
// is the only durable representation of a cart.
package token

import (
	"encoding/json"

	"github.com/shopilens/storefront-api/internal/domains/cart/domain"
)

type ratingRecord struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

type productRecord struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Rating      ratingRecord `json:"rating"`
}

type lineItemRecord struct {
	Product  productRecord `json:"product"`
	Quantity int64         `json:"quantity"`
}

// Decode parses a raw token into a cart. An absent or malformed token yields
// an empty cart, never an error.
func Decode(raw string) domain.Cart {
	if raw == "" {
		return domain.Cart{}
	}
	var records []lineItemRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return domain.Cart{}
	}
	cart := make(domain.Cart, 0, len(records))
	for _, record := range records {
		cart = append(cart, toLineItem(record))
	}
	return cart
}

// Encode serializes a cart deterministically. Encode and Decode round-trip:
// Decode(Encode(c)) equals c for any cart the mutation API can produce.
func Encode(cart domain.Cart) (string, error) {
	records := make([]lineItemRecord, 0, len(cart))
	for _, item := range cart {
		records = append(records, fromLineItem(item))
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func toLineItem(record lineItemRecord) domain.LineItem {
	return domain.LineItem{
		Product: domain.Product{
			ID:          record.Product.ID,
			Title:       record.Product.Title,
			Price:       record.Product.Price,
			Description: record.Product.Description,
			Category:    record.Product.Category,
			Image:       record.Product.Image,
			Rating: domain.Rating{
				Rate:  record.Product.Rating.Rate,
				Count: record.Product.Rating.Count,
			},
		},
		Quantity: record.Quantity,
	}
}

func fromLineItem(item domain.LineItem) lineItemRecord {
	return lineItemRecord{
		Product: productRecord{
			ID:          item.Product.ID,
			Title:       item.Product.Title,
			Price:       item.Product.Price,
			Description: item.Product.Description,
			Category:    item.Product.Category,
			Image:       item.Product.Image,
			Rating: ratingRecord{
				Rate:  item.Product.Rating.Rate,
				Count: item.Product.Rating.Count,
			},
		},
		Quantity: item.Quantity,
	}
}
