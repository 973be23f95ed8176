package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appcatalog "github.com/muhammadheryan/watch-storefront/application/catalog"
	"github.com/muhammadheryan/watch-storefront/constant"
	catalogmocks "github.com/muhammadheryan/watch-storefront/mocks/repository/catalog"
	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	cerr "github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestCatalogApp_ListProducts(t *testing.T) {
	type args struct {
		filter *model.ProductFilter
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(repo *catalogmocks.CatalogRepository)
		wantPage int
		wantSize int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: defaults applied",
			args: args{filter: &model.ProductFilter{Keyword: "  seiko "}},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ListProducts", mock.Anything, &model.ProductFilter{Keyword: "seiko", Page: 1, Size: 10}).
					Return([]model.Product{{ID: 1, Name: "Seiko 5", Price: decimal.NewFromInt(100000)}}, int64(1), nil).Once()
			},
			wantPage: 1,
			wantSize: 10,
		},
		{
			name: "success: filters passed through and size capped",
			args: args{filter: &model.ProductFilter{CategoryID: 2, BrandID: 3, Page: 2, Size: 500}},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ListProducts", mock.Anything, &model.ProductFilter{CategoryID: 2, BrandID: 3, Page: 2, Size: 100}).
					Return(nil, int64(0), nil).Once()
			},
			wantPage: 2,
			wantSize: 100,
		},
		{
			name: "error: backend unavailable",
			args: args{filter: nil},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ListProducts", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrBackendUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := catalogmocks.NewCatalogRepository(t)
			tt.mockCall(repo)
			app := appcatalog.NewCatalogApp(repo)

			got, err := app.ListProducts(context.Background(), tt.args.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Page != tt.wantPage || got.Size != tt.wantSize {
				t.Fatalf("page/size = %d/%d, want %d/%d", got.Page, got.Size, tt.wantPage, tt.wantSize)
			}
			if got.Items == nil {
				t.Fatal("Items should never be nil")
			}
		})
	}
}

func TestCatalogApp_Detail(t *testing.T) {
	repo := catalogmocks.NewCatalogRepository(t)
	repo.On("GetProduct", mock.Anything, uint64(1)).Return(&model.Product{ID: 1, Name: "Casio"}, nil).Once()
	repo.On("GetProduct", mock.Anything, uint64(2)).Return(nil, &backend.APIError{StatusCode: http.StatusNotFound}).Once()
	repo.On("ListCategories", mock.Anything).Return([]model.Category{{ID: 1, Name: "Men"}}, nil).Once()
	repo.On("GetCategory", mock.Anything, uint64(1)).Return(&model.Category{ID: 1, Name: "Men"}, nil).Once()
	repo.On("ListBrands", mock.Anything).Return([]model.Brand{{ID: 1, Name: "Casio"}}, nil).Once()
	repo.On("GetBrand", mock.Anything, uint64(9)).Return(nil, &backend.APIError{StatusCode: http.StatusNotFound}).Once()
	app := appcatalog.NewCatalogApp(repo)
	ctx := context.Background()

	if p, err := app.GetProduct(ctx, 1); err != nil || p.Name != "Casio" {
		t.Fatalf("GetProduct(1) = %v, %v", p, err)
	}
	if _, err := app.GetProduct(ctx, 2); !cerr.IsType(err, constant.ErrNotFound) {
		t.Fatalf("GetProduct(2) error = %v, want not found", err)
	}
	if c, err := app.ListCategories(ctx); err != nil || len(c) != 1 {
		t.Fatalf("ListCategories() = %v, %v", c, err)
	}
	if c, err := app.GetCategory(ctx, 1); err != nil || c.Name != "Men" {
		t.Fatalf("GetCategory(1) = %v, %v", c, err)
	}
	if b, err := app.ListBrands(ctx); err != nil || len(b) != 1 {
		t.Fatalf("ListBrands() = %v, %v", b, err)
	}
	if _, err := app.GetBrand(ctx, 9); !cerr.IsType(err, constant.ErrNotFound) {
		t.Fatalf("GetBrand(9) error = %v, want not found", err)
	}
}
