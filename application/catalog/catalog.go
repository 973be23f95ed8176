package catalog

import (
	"context"
	"strings"

	"github.com/muhammadheryan/watch-storefront/model"
	catalogrepo "github.com/muhammadheryan/watch-storefront/repository/catalog"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

type CatalogApp interface {
	ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	GetBrand(ctx context.Context, id uint64) (*model.Brand, error)
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

func (s *catalogAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	f := model.ProductFilter{}
	if filter != nil {
		f = *filter
	}
	if f.Page <= 0 {
		f.Page = defaultPage
	}
	if f.Size <= 0 {
		f.Size = defaultSize
	}
	if f.Size > maxSize {
		f.Size = maxSize
	}
	f.Keyword = strings.TrimSpace(f.Keyword)

	items, total, err := s.catalogRepo.ListProducts(ctx, &f)
	if err != nil {
		logger.Error("[ListProducts] error catalogRepo.ListProducts", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	if items == nil {
		items = []model.Product{}
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       f.Page,
		Size:       f.Size,
	}, nil
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	result, err := s.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error catalogRepo.GetProduct", zap.String("error", err.Error()), zap.Uint64("product_id", id))
		return nil, backend.MapError(err)
	}
	return result, nil
}

func (s *catalogAppImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	result, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] error catalogRepo.ListCategories", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	return result, nil
}

func (s *catalogAppImpl) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	result, err := s.catalogRepo.GetCategory(ctx, id)
	if err != nil {
		logger.Error("[GetCategory] error catalogRepo.GetCategory", zap.String("error", err.Error()), zap.Uint64("category_id", id))
		return nil, backend.MapError(err)
	}
	return result, nil
}

func (s *catalogAppImpl) ListBrands(ctx context.Context) ([]model.Brand, error) {
	result, err := s.catalogRepo.ListBrands(ctx)
	if err != nil {
		logger.Error("[ListBrands] error catalogRepo.ListBrands", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	return result, nil
}

func (s *catalogAppImpl) GetBrand(ctx context.Context, id uint64) (*model.Brand, error) {
	result, err := s.catalogRepo.GetBrand(ctx, id)
	if err != nil {
		logger.Error("[GetBrand] error catalogRepo.GetBrand", zap.String("error", err.Error()), zap.Uint64("brand_id", id))
		return nil, backend.MapError(err)
	}
	return result, nil
}
