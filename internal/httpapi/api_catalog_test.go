package storefrontserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/shopilens/storefront-api/internal/domains/catalog/adapters/http/mapper"
	"github.com/shopilens/storefront-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/shopilens/storefront-api/internal/domains/catalog/application"
	catalogdomain "github.com/shopilens/storefront-api/internal/domains/catalog/domain"
)

type stubSource struct {
	products []catalogdomain.Product
	err      error
}

func (s stubSource) FetchProducts(context.Context) ([]catalogdomain.Product, error) {
	return s.products, s.err
}

var catalogFixture = []catalogdomain.Product{
	{ID: 1, Title: "Fjallraven Backpack", Price: 109.95, Category: "men's clothing",
		Rating: catalogdomain.Rating{Rate: 3.9, Count: 120}},
	{ID: 2, Title: "Gold Ring", Price: 168, Category: "jewelery",
		Rating: catalogdomain.Rating{Rate: 4.6, Count: 70}},
	{ID: 3, Title: "Casual Slim Fit Shirt", Price: 22.3, Category: "men's clothing",
		Rating: catalogdomain.Rating{Rate: 4.1, Count: 259}},
}

func newCatalogRouter(t *testing.T, source stubSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service := catalogapp.NewService(source, memory.NewRepository())
	return NewRouter(ApiHandleFunctions{
		CatalogAPI: NewCatalogAPI(service),
	})
}

func getJSON(t *testing.T, router *gin.Engine, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestGetProducts_ListsCatalogOrder(t *testing.T) {
	router := newCatalogRouter(t, stubSource{products: catalogFixture})

	var env struct {
		Data    []mapper.Product `json:"data"`
		Success bool             `json:"success"`
	}
	rec := getJSON(t, router, "/en/api/products", &env)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	require.Len(t, env.Data, 3)
	require.Equal(t, int64(1), env.Data[0].ID)
	require.Equal(t, "Gold Ring", env.Data[1].Title)
}

func TestGetProducts_SearchNarrowsListing(t *testing.T) {
	router := newCatalogRouter(t, stubSource{products: catalogFixture})

	var env struct {
		Data []mapper.Product `json:"data"`
	}
	getJSON(t, router, "/en/api/products?q=ring", &env)

	require.Len(t, env.Data, 1)
	require.Equal(t, int64(2), env.Data[0].ID)
}

func TestGetProducts_SourceDownYields502(t *testing.T) {
	router := newCatalogRouter(t, stubSource{err: errors.New("connection refused")})

	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	rec := getJSON(t, router, "/en/api/products", &env)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.False(t, env.Success)
	require.NotEmpty(t, env.Error)
}

func TestGetCategories_Deduplicates(t *testing.T) {
	router := newCatalogRouter(t, stubSource{products: catalogFixture})

	var env struct {
		Data []string `json:"data"`
	}
	getJSON(t, router, "/en/api/products/categories", &env)

	require.ElementsMatch(t, []string{"men's clothing", "jewelery"}, env.Data)
}

func TestGetProduct_ByID(t *testing.T) {
	router := newCatalogRouter(t, stubSource{products: catalogFixture})

	var env struct {
		Data mapper.Product `json:"data"`
	}
	rec := getJSON(t, router, "/en/api/products/2", &env)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Gold Ring", env.Data.Title)
	require.Equal(t, 4.6, env.Data.Rating.Rate)
}

func TestGetProduct_UnknownIDYields404(t *testing.T) {
	router := newCatalogRouter(t, stubSource{products: catalogFixture})

	rec := getJSON(t, router, "/en/api/products/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProduct_NonIntegerIDYields400(t *testing.T) {
	router := newCatalogRouter(t, stubSource{products: catalogFixture})

	rec := getJSON(t, router, "/en/api/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
