package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
)

type CatalogRepository interface {
	ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int64, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	GetBrand(ctx context.Context, id uint64) (*model.Brand, error)
}

type REST struct {
	client *backend.Client
}

func NewCatalogRepository(client *backend.Client) CatalogRepository {
	return &REST{client: client}
}

type productPage struct {
	Items      []model.Product `json:"items"`
	TotalCount int64           `json:"totalCount"`
}

func (r *REST) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int64, error) {
	q := url.Values{}
	if filter.CategoryID != 0 {
		q.Set("categoryId", strconv.FormatUint(filter.CategoryID, 10))
	}
	if filter.BrandID != 0 {
		q.Set("brandId", strconv.FormatUint(filter.BrandID, 10))
	}
	if filter.Keyword != "" {
		q.Set("keyword", filter.Keyword)
	}
	q.Set("page", strconv.Itoa(filter.Page))
	q.Set("size", strconv.Itoa(filter.Size))

	var page productPage
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/products", Query: q}, &page); err != nil {
		return nil, 0, err
	}
	if page.Items == nil {
		page.Items = []model.Product{}
	}
	return page.Items, page.TotalCount, nil
}

func (r *REST) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: fmt.Sprintf("/products/%d", id)}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *REST) ListCategories(ctx context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/categories"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	var c model.Category
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: fmt.Sprintf("/categories/%d", id)}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *REST) ListBrands(ctx context.Context) ([]model.Brand, error) {
	out := make([]model.Brand, 0)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/brands"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) GetBrand(ctx context.Context, id uint64) (*model.Brand, error) {
	var b model.Brand
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: fmt.Sprintf("/brands/%d", id)}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
