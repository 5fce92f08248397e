package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopilens/storefront-api/internal/domains/cart/domain"
)

func TestDecode_EmptyToken(t *testing.T) {
	require.Empty(t, Decode(""))
}

func TestDecode_MalformedTokenYieldsEmptyCart(t *testing.T) {
	for _, raw := range []string{
		"not json",
		`{"product":{}}`,
		`[{"product":`,
		`42`,
		`"quoted"`,
	} {
		require.Empty(t, Decode(raw), "raw=%q", raw)
	}
}

func TestDecode_ParsesStoredCart(t *testing.T) {
	raw := `[{"product":{"id":3,"title":"Mens Cotton Jacket","price":55.99,` +
		`"description":"great outerwear","category":"men's clothing",` +
		`"image":"https://img.example/jacket.png","rating":{"rate":4.7,"count":500}},"quantity":2}]`

	cart := Decode(raw)
	require.Len(t, cart, 1)
	require.Equal(t, int64(3), cart[0].Product.ID)
	require.Equal(t, "Mens Cotton Jacket", cart[0].Product.Title)
	require.InDelta(t, 55.99, cart[0].Product.Price, 1e-9)
	require.InDelta(t, 4.7, cart[0].Product.Rating.Rate, 1e-9)
	require.Equal(t, int64(2), cart[0].Quantity)
}

func TestEncode_EmptyCartIsEmptyList(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", raw)
}

func TestRoundTrip(t *testing.T) {
	cart := domain.Cart{}
	require.NoError(t, cart.Add(domain.Product{
		ID:          1,
		Title:       "Backpack",
		Price:       109.95,
		Description: "Fits 15 inch laptops",
		Category:    "men's clothing",
		Image:       "https://img.example/backpack.png",
		Rating:      domain.Rating{Rate: 3.9, Count: 120},
	}, 2))
	require.NoError(t, cart.Add(domain.Product{
		ID:       2,
		Title:    "T-Shirt",
		Price:    22.3,
		Category: "men's clothing",
	}, 1))

	raw, err := Encode(cart)
	require.NoError(t, err)
	require.Equal(t, cart, Decode(raw))
}

func TestEncode_Deterministic(t *testing.T) {
	cart := domain.Cart{}
	require.NoError(t, cart.Add(domain.Product{ID: 1, Title: "Backpack", Price: 109.95}, 1))

	first, err := Encode(cart)
	require.NoError(t, err)
	second, err := Encode(cart)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
