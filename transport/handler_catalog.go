package transport

import (
	"net/http"

	"github.com/muhammadheryan/watch-storefront/model"
)

// ListProducts handler
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param categoryId query int false "Category ID"
// @Param brandId query int false "Brand ID"
// @Param keyword query string false "Search keyword"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} model.ProductListResponse
// @Failure 502 {object} Response
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := &model.ProductFilter{
		CategoryID: queryUint(r, "categoryId"),
		BrandID:    queryUint(r, "brandId"),
		Keyword:    r.URL.Query().Get("keyword"),
		Page:       queryInt(r, "page"),
		Size:       queryInt(r, "size"),
	}

	res, err := s.CatalogApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} Response
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCategory handler
// @Summary Category detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} model.Category
// @Router /categories/{id} [get]
func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListBrands handler
// @Summary List brands
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.Brand
// @Router /brands [get]
func (s *RestHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListBrands(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetBrand handler
// @Summary Brand detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} model.Brand
// @Router /brands/{id} [get]
func (s *RestHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.GetBrand(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
