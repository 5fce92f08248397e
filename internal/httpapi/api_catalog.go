package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopilens/storefront-api/internal/domains/catalog/adapters/http/mapper"
	"github.com/shopilens/storefront-api/internal/domains/catalog/ports"
	apierrors "github.com/shopilens/storefront-api/internal/shared/errors"
)

// CatalogAPI serves the read-only product endpoints.
type CatalogAPI struct {
	service ports.Service
}

func NewCatalogAPI(service ports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// GetProducts handles GET /:lang/api/products. An optional q parameter
// narrows the listing to matching products.
func (api CatalogAPI) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if query, present := c.GetQuery("q"); present {
		found, searchErr := api.service.Search(ctx, query)
		if searchErr != nil {
			apierrors.RespondMapped(c, searchErr, catalogErrorMapper)
			return
		}
		apierrors.RespondData(c, mapper.FromDomainProducts(found))
		return
	}

	listed, err := api.service.ListProducts(ctx)
	if err != nil {
		apierrors.RespondMapped(c, err, catalogErrorMapper)
		return
	}
	apierrors.RespondData(c, mapper.FromDomainProducts(listed))
}

// GetCategories handles GET /:lang/api/products/categories.
func (api CatalogAPI) GetCategories(c *gin.Context) {
	categories, err := api.service.Categories(c.Request.Context())
	if err != nil {
		apierrors.RespondMapped(c, err, catalogErrorMapper)
		return
	}
	apierrors.RespondData(c, categories)
}

// GetProduct handles GET /:lang/api/products/:productId.
func (api CatalogAPI) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		apierrors.RespondError(c, apierrors.APIError{
			Status:  http.StatusBadRequest,
			Message: "productId must be an integer",
		})
		return
	}
	product, err := api.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondMapped(c, err, catalogErrorMapper)
		return
	}
	apierrors.RespondData(c, mapper.FromDomainProduct(product))
}
