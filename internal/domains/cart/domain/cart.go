package domain

import "errors"

var (
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must be at least one")
)

// Rating carries the catalog rating embedded in a product snapshot.
type Rating struct {
	Rate  float64
	Count int64
}

// Product is the catalog snapshot stored inside a line item. The cart keeps
// the full snapshot so it can render without a catalog round trip.
type Product struct {
	ID          int64
	Title       string
	Price       float64
	Description string
	Category    string
	Image       string
	Rating      Rating
}

// LineItem pairs a product snapshot with its quantity in the cart.
type LineItem struct {
	Product  Product
	Quantity int64
}

// Cart is an ordered sequence of line items with at most one line item per
// product id. Insertion order is preserved across mutations.
type Cart []LineItem

// Add merges the quantity into an existing line item for the product or
// appends a new one. Quantities below one are rejected.
func (c *Cart) Add(product Product, quantity int64) error {
	if product.ID <= 0 {
		return ErrInvalidProductID
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	items := *c
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			return nil
		}
	}
	*c = append(items, LineItem{Product: product, Quantity: quantity})
	return nil
}

// SetQuantity replaces the quantity of the line item for productID. A
// quantity of zero or less removes the line item. When no line item exists
// the cart is left untouched; SetQuantity never adds a product.
func (c *Cart) SetQuantity(productID, quantity int64) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	items := *c
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line item for productID when present.
func (c *Cart) Remove(productID int64) {
	items := *c
	for i := range items {
		if items[i].Product.ID == productID {
			*c = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	*c = Cart{}
}

// Find returns the line item for productID.
func (c Cart) Find(productID int64) (LineItem, bool) {
	for _, item := range c {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return LineItem{}, false
}

// Total sums price times quantity over all line items.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities of all line items.
func (c Cart) ItemCount() int64 {
	var count int64
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	clone := make(Cart, len(c))
	copy(clone, c)
	return clone
}
