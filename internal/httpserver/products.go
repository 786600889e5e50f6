package httpserver

import (
	"net/http"
	"strings"

	"savage-storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			products []domain.Product
			err      error
		)
		if c.Query("featured") == "true" {
			products, err = svc.ListFeatured(c.Request.Context())
		} else {
			products, err = svc.List(c.Request.Context())
		}
		if err != nil {
			respondError(c, err, "Failed to load products")
			return
		}
		c.JSON(http.StatusOK, productList(products))
	}
}

func groupedProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to load products")
			return
		}
		c.JSON(http.StatusOK, bucketProducts(products))
	}
}

type productSections struct {
	Hoodies []domain.Product `json:"hoodies"`
	TShirts []domain.Product `json:"tshirts"`
	Pants   []domain.Product `json:"pants"`
}

// bucketProducts groups the catalog into the three fixed storefront
// sections by substring-matching category and name. A section that matched
// nothing falls back to an even slice of the whole catalog so every product
// stays visible somewhere. Purely presentational; a product can appear in
// more than one section.
func bucketProducts(products []domain.Product) productSections {
	var hoodies, tshirts, pants []domain.Product
	for _, p := range products {
		if matchesAny(p, "hoodie") {
			hoodies = append(hoodies, p)
		}
		if matchesAny(p, "shirt", "tee") {
			tshirts = append(tshirts, p)
		}
		if matchesAny(p, "pant", "trouser") {
			pants = append(pants, p)
		}
	}

	n := len(products)
	firstThird := (n + 2) / 3
	secondThird := (2*n + 2) / 3
	if len(hoodies) == 0 {
		hoodies = products[:firstThird]
	}
	if len(tshirts) == 0 {
		tshirts = products[firstThird:secondThird]
	}
	if len(pants) == 0 {
		pants = products[secondThird:]
	}

	return productSections{
		Hoodies: productList(hoodies),
		TShirts: productList(tshirts),
		Pants:   productList(pants),
	}
}

func matchesAny(p domain.Product, terms ...string) bool {
	category := strings.ToLower(p.Category)
	name := strings.ToLower(p.Name)
	for _, term := range terms {
		if strings.Contains(category, term) || strings.Contains(name, term) {
			return true
		}
	}
	return false
}
