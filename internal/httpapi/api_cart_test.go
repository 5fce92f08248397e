package storefrontserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/shopilens/storefront-api/internal/domains/cart/adapters/http/mapper"
	cartapp "github.com/shopilens/storefront-api/internal/domains/cart/application"
)

type cartEnvelope struct {
	Data    []mapper.LineItem `json:"data"`
	Success bool              `json:"success"`
	Error   string            `json:"error"`
}

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(ApiHandleFunctions{
		CartAPI: NewCartAPI(cartapp.NewService()),
	})
}

// do issues a request, carrying over any cart cookie from the previous
// response the way a browser would.
func doCart(t *testing.T, router *gin.Engine, method, target, body string, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if prev != nil {
		for _, cookie := range prev.Result().Cookies() {
			req.AddCookie(cookie)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var env cartEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func cartCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == CartCookieName {
			return cookie
		}
	}
	return nil
}

const addProductOne = `{"product":{"id":1,"title":"Backpack","price":109.95,` +
	`"description":"","category":"men's clothing","image":"","rating":{"rate":3.9,"count":120}},"quantity":2}`

func TestGetCart_EmptyWithoutCookie(t *testing.T) {
	router := newCartRouter(t)

	rec := doCart(t, router, http.MethodGet, "/en/cart/api/cart", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeCart(t, rec)
	require.True(t, env.Success)
	require.Empty(t, env.Data)
	require.Contains(t, rec.Body.String(), `"data":[]`)

	cookie := cartCookie(t, rec)
	require.NotNil(t, cookie, "token is rewritten on every call")
	require.Equal(t, 30*24*60*60, cookie.MaxAge)
	require.Equal(t, "/", cookie.Path)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestAddItem_MergesAndPersists(t *testing.T) {
	router := newCartRouter(t)

	first := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)
	require.Equal(t, http.StatusOK, first.Code)
	env := decodeCart(t, first)
	require.Len(t, env.Data, 1)
	require.Equal(t, int64(2), env.Data[0].Quantity)

	second := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, first)
	env = decodeCart(t, second)
	require.Len(t, env.Data, 1, "same product merges instead of duplicating")
	require.Equal(t, int64(4), env.Data[0].Quantity)

	read := doCart(t, router, http.MethodGet, "/en/cart/api/cart", "", second)
	env = decodeCart(t, read)
	require.Len(t, env.Data, 1)
	require.Equal(t, int64(4), env.Data[0].Quantity)
}

func TestAddItem_QuantityDefaultsToOne(t *testing.T) {
	router := newCartRouter(t)

	body := `{"product":{"id":7,"title":"Ring","price":9.99,"rating":{"rate":4,"count":10}}}`
	rec := doCart(t, router, http.MethodPost, "/en/cart/api/cart", body, nil)

	env := decodeCart(t, rec)
	require.Len(t, env.Data, 1)
	require.Equal(t, int64(1), env.Data[0].Quantity)
}

func TestAddItem_RejectsInvalidInput(t *testing.T) {
	router := newCartRouter(t)
	seeded := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing product", `{"quantity":1}`},
		{"zero quantity", `{"product":{"id":1,"title":"x","price":1,"rating":{}},"quantity":0}`},
		{"negative quantity", `{"product":{"id":1,"title":"x","price":1,"rating":{}},"quantity":-3}`},
		{"invalid product id", `{"product":{"id":0,"title":"x","price":1,"rating":{}},"quantity":1}`},
		{"malformed body", `{"product":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doCart(t, router, http.MethodPost, "/en/cart/api/cart", tt.body, seeded)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeCart(t, rec)
			require.False(t, env.Success)
			require.NotEmpty(t, env.Error)
			require.Nil(t, cartCookie(t, rec), "a rejected request leaves the stored cart untouched")
		})
	}

	// The cart survives the failed attempts unchanged.
	read := doCart(t, router, http.MethodGet, "/en/cart/api/cart", "", seeded)
	env := decodeCart(t, read)
	require.Len(t, env.Data, 1)
	require.Equal(t, int64(2), env.Data[0].Quantity)
}

func TestUpdateItem_SetsExactQuantity(t *testing.T) {
	router := newCartRouter(t)
	seeded := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)

	rec := doCart(t, router, http.MethodPut, "/en/cart/api/cart", `{"productId":1,"quantity":5}`, seeded)
	env := decodeCart(t, rec)
	require.Len(t, env.Data, 1)
	require.Equal(t, int64(5), env.Data[0].Quantity)
}

func TestUpdateItem_ZeroQuantityRemoves(t *testing.T) {
	router := newCartRouter(t)
	seeded := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)

	rec := doCart(t, router, http.MethodPut, "/en/cart/api/cart", `{"productId":1,"quantity":0}`, seeded)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeCart(t, rec)
	require.True(t, env.Success)
	require.Empty(t, env.Data)
}

func TestUpdateItem_MissingProductIsNoop(t *testing.T) {
	router := newCartRouter(t)
	seeded := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)

	rec := doCart(t, router, http.MethodPut, "/en/cart/api/cart", `{"productId":99,"quantity":5}`, seeded)
	env := decodeCart(t, rec)
	require.Len(t, env.Data, 1, "updating an absent product never creates a line item")
	require.Equal(t, int64(1), env.Data[0].Product.ID)
}

func TestUpdateItem_RequiresFields(t *testing.T) {
	router := newCartRouter(t)

	for _, body := range []string{`{"quantity":5}`, `{"productId":1}`} {
		rec := doCart(t, router, http.MethodPut, "/en/cart/api/cart", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestRemoveItem_ByProductID(t *testing.T) {
	router := newCartRouter(t)
	seeded := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)

	rec := doCart(t, router, http.MethodDelete, "/en/cart/api/cart?productId=1", "", seeded)
	env := decodeCart(t, rec)
	require.True(t, env.Success)
	require.Empty(t, env.Data)
}

func TestRemoveItem_AbsentProductIsNoop(t *testing.T) {
	router := newCartRouter(t)
	seeded := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)

	rec := doCart(t, router, http.MethodDelete, "/en/cart/api/cart?productId=42", "", seeded)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeCart(t, rec)
	require.Len(t, env.Data, 1)
}

func TestRemoveItem_WithoutProductIDClears(t *testing.T) {
	router := newCartRouter(t)
	seeded := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)

	rec := doCart(t, router, http.MethodDelete, "/en/cart/api/cart", "", seeded)
	env := decodeCart(t, rec)
	require.True(t, env.Success)
	require.Empty(t, env.Data)

	read := doCart(t, router, http.MethodGet, "/en/cart/api/cart", "", rec)
	require.Empty(t, decodeCart(t, read).Data)
}

func TestRemoveItem_RejectsNonIntegerProductID(t *testing.T) {
	router := newCartRouter(t)

	rec := doCart(t, router, http.MethodDelete, "/en/cart/api/cart?productId=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCart_MalformedCookieYieldsEmptyCart(t *testing.T) {
	router := newCartRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/en/cart/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: CartCookieName, Value: "not-json"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeCart(t, rec)
	require.True(t, env.Success)
	require.Empty(t, env.Data)
	require.NotNil(t, cartCookie(t, rec), "a fresh empty token replaces the corrupt one")
}

func TestCartFlow_AddThenZeroOut(t *testing.T) {
	router := newCartRouter(t)

	added := doCart(t, router, http.MethodPost, "/en/cart/api/cart", addProductOne, nil)
	require.Len(t, decodeCart(t, added).Data, 1)

	zeroed := doCart(t, router, http.MethodPut, "/en/cart/api/cart", `{"productId":1,"quantity":0}`, added)
	require.Empty(t, decodeCart(t, zeroed).Data)

	read := doCart(t, router, http.MethodGet, "/en/cart/api/cart", "", zeroed)
	require.Empty(t, decodeCart(t, read).Data)
}
