package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopilens/storefront-api/internal/domains/cart/adapters/http/mapper"
	"github.com/shopilens/storefront-api/internal/domains/cart/ports"
	apierrors "github.com/shopilens/storefront-api/internal/shared/errors"
)

const (
	// CartCookieName is the cookie carrying the encoded cart token.
	CartCookieName = "shopilens-cart"

	// The cart survives thirty days between visits.
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

// CartAPI serves the cart endpoints. The cart lives entirely in the shopper's
// cookie: every handler reads the token, hands it to the service, and writes
// back whatever token the service returns, changed or not.
type CartAPI struct {
	service ports.Service
}

func NewCartAPI(service ports.Service) CartAPI {
	return CartAPI{service: service}
}

// GetCart handles GET /:lang/cart/api/cart.
func (api CartAPI) GetCart(c *gin.Context) {
	cart, token, err := api.service.Read(c.Request.Context(), api.readToken(c))
	if err != nil {
		apierrors.RespondMapped(c, err, cartErrorMapper)
		return
	}
	api.writeToken(c, token)
	apierrors.RespondData(c, mapper.FromDomainCart(cart))
}

// AddItem handles POST /:lang/cart/api/cart. Adding a product already in the
// cart merges quantities; the quantity defaults to one when omitted.
func (api CartAPI) AddItem(c *gin.Context) {
	var req mapper.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondError(c, apierrors.ErrBadRequest.WithCause(err))
		return
	}
	product, quantity, err := mapper.ToAddInput(req)
	if err != nil {
		apierrors.RespondMapped(c, err, cartErrorMapper)
		return
	}
	cart, token, err := api.service.Add(c.Request.Context(), api.readToken(c), product, quantity)
	if err != nil {
		apierrors.RespondMapped(c, err, cartErrorMapper)
		return
	}
	api.writeToken(c, token)
	apierrors.RespondData(c, mapper.FromDomainCart(cart))
}

// UpdateItem handles PUT /:lang/cart/api/cart. A quantity of zero or less
// removes the line item; a missing product id never creates one.
func (api CartAPI) UpdateItem(c *gin.Context) {
	var req mapper.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondError(c, apierrors.ErrBadRequest.WithCause(err))
		return
	}
	productID, quantity, err := mapper.ToUpdateInput(req)
	if err != nil {
		apierrors.RespondMapped(c, err, cartErrorMapper)
		return
	}
	cart, token, err := api.service.SetQuantity(c.Request.Context(), api.readToken(c), productID, quantity)
	if err != nil {
		apierrors.RespondMapped(c, err, cartErrorMapper)
		return
	}
	api.writeToken(c, token)
	apierrors.RespondData(c, mapper.FromDomainCart(cart))
}

// RemoveItem handles DELETE /:lang/cart/api/cart. Without a productId query
// parameter the whole cart is cleared; removing an absent product is a no-op.
func (api CartAPI) RemoveItem(c *gin.Context) {
	raw := api.readToken(c)

	query, present := c.GetQuery("productId")
	if !present {
		cart, token, err := api.service.Clear(c.Request.Context(), raw)
		if err != nil {
			apierrors.RespondMapped(c, err, cartErrorMapper)
			return
		}
		api.writeToken(c, token)
		apierrors.RespondData(c, mapper.FromDomainCart(cart))
		return
	}

	productID, err := strconv.ParseInt(query, 10, 64)
	if err != nil {
		apierrors.RespondError(c, apierrors.APIError{
			Status:  http.StatusBadRequest,
			Message: "productId must be an integer",
		})
		return
	}
	cart, token, err := api.service.Remove(c.Request.Context(), raw, productID)
	if err != nil {
		apierrors.RespondMapped(c, err, cartErrorMapper)
		return
	}
	api.writeToken(c, token)
	apierrors.RespondData(c, mapper.FromDomainCart(cart))
}

// readToken returns the raw cart token, empty when the cookie is absent.
func (api CartAPI) readToken(c *gin.Context) string {
	raw, err := c.Cookie(CartCookieName)
	if err != nil {
		return ""
	}
	return raw
}

func (api CartAPI) writeToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CartCookieName, token, cartCookieMaxAge, "/", "", false, false)
}
