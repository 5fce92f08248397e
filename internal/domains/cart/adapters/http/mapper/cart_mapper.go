package mapper

import (
	"errors"

	"github.com/shopilens/storefront-api/internal/domains/cart/domain"
)

var (
	ErrMissingProduct   = errors.New("product is required")
	ErrMissingProductID = errors.New("productId is required")
	ErrMissingQuantity  = errors.New("quantity is required")
)

// Rating is the HTTP representation of a product rating.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

// Product is the HTTP representation of a product snapshot.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// LineItem is the HTTP representation of one cart line.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// AddItemRequest captures the add-to-cart payload while preserving field
// presence. Quantity defaults to one when omitted.
type AddItemRequest struct {
	Product  *Product `json:"product"`
	Quantity *int64   `json:"quantity"`
}

// UpdateItemRequest captures the set-quantity payload. A quantity of zero or
// less removes the line item.
type UpdateItemRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int64 `json:"quantity"`
}

// ToAddInput validates the payload and extracts the domain product plus the
// effective quantity.
func ToAddInput(req AddItemRequest) (domain.Product, int64, error) {
	if req.Product == nil {
		return domain.Product{}, 0, ErrMissingProduct
	}
	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	return toDomainProduct(*req.Product), quantity, nil
}

// ToUpdateInput validates the payload and extracts the product id and target
// quantity.
func ToUpdateInput(req UpdateItemRequest) (int64, int64, error) {
	if req.ProductID == nil {
		return 0, 0, ErrMissingProductID
	}
	if req.Quantity == nil {
		return 0, 0, ErrMissingQuantity
	}
	return *req.ProductID, *req.Quantity, nil
}

// FromDomainCart maps a cart into its transport representation. An empty cart
// maps to an empty list, never null.
func FromDomainCart(cart domain.Cart) []LineItem {
	items := make([]LineItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, LineItem{
			Product:  fromDomainProduct(item.Product),
			Quantity: item.Quantity,
		})
	}
	return items
}

func toDomainProduct(p Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      domain.Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
	}
}

func fromDomainProduct(p domain.Product) Product {
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
