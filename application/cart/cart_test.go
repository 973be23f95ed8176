package cart_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	appcart "github.com/muhammadheryan/watch-storefront/application/cart"
	"github.com/muhammadheryan/watch-storefront/cmd/config"
	"github.com/muhammadheryan/watch-storefront/constant"
	cartmocks "github.com/muhammadheryan/watch-storefront/mocks/repository/cart"
	redismocks "github.com/muhammadheryan/watch-storefront/mocks/repository/redis"
	"github.com/muhammadheryan/watch-storefront/model"
	redisrepo "github.com/muhammadheryan/watch-storefront/repository/redis"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	cerr "github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const ttl = 7 * 24 * time.Hour

var signedIn = &model.Session{ID: "sid", UserID: 1, Token: "tok", IsAuthenticated: true}

func testConfig() *config.Config {
	return &config.Config{Checkout: config.CheckoutConfig{StateTTL: ttl}}
}

func watch(cartItemID, productID uint64, qty int) model.CartItem {
	return model.CartItem{
		CartItemID:    cartItemID,
		ProductID:     productID,
		ProductName:   "Seiko 5",
		UnitPrice:     decimal.NewFromInt(100000),
		OrderQuantity: qty,
	}
}

// withCart makes a redis mock call run the reducer against state.
func withCart(state *model.CartState, fnIndex int) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		fn := args.Get(fnIndex).(func(*model.CartState) error)
		_ = fn(state)
	}
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestCartApp_FetchCart(t *testing.T) {
	type fields struct {
		cartRepo  *cartmocks.CartRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name      string
		fields    fields
		sess      *model.Session
		mockCall  func(f fields)
		wantItems int
		wantPrice string
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:   "success: snapshot replaces local state",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			sess:   signedIn,
			mockCall: func(f fields) {
				f.cartRepo.On("List", mock.Anything, "tok", uint64(1)).Return([]model.CartItem{watch(1, 10, 3)}, nil).Once()
				stale := &model.CartState{UserID: 1, Items: []model.CartItem{watch(9, 99, 5)}}
				f.redisRepo.On("UpdateCart", mock.Anything, uint64(1), ttl, mock.Anything).Run(withCart(stale, 3)).Return(nil).Once()
			},
			wantItems: 3,
			wantPrice: "300000",
		},
		{
			name:    "error: anonymous",
			fields:  fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			sess:    model.NewSession(nil),
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:   "error: backend token expired",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			sess:   signedIn,
			mockCall: func(f fields) {
				f.cartRepo.On("List", mock.Anything, "tok", uint64(1)).Return(nil, &backend.APIError{StatusCode: http.StatusUnauthorized}).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(testConfig(), tt.fields.cartRepo, tt.fields.redisRepo)

			got, err := app.FetchCart(context.Background(), tt.sess)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FetchCart() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.TotalItems != tt.wantItems {
				t.Fatalf("TotalItems = %d, want %d", got.TotalItems, tt.wantItems)
			}
			if !got.TotalPrice.Equal(decimal.RequireFromString(tt.wantPrice)) {
				t.Fatalf("TotalPrice = %s, want %s", got.TotalPrice, tt.wantPrice)
			}
		})
	}
}

func TestCartApp_AddItem(t *testing.T) {
	type fields struct {
		cartRepo  *cartmocks.CartRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name      string
		fields    fields
		req       *model.AddCartItemRequest
		mockCall  func(f fields)
		wantLines int
		wantItems int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:   "success: default quantity one",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			req:    &model.AddCartItemRequest{ProductID: 10},
			mockCall: func(f fields) {
				f.cartRepo.On("Add", mock.Anything, "tok", uint64(1), uint64(10), 1).Return(&model.CartItem{CartItemID: 1, ProductID: 10, OrderQuantity: 1, UnitPrice: decimal.NewFromInt(100000)}, nil).Once()
				f.redisRepo.On("UpdateCart", mock.Anything, uint64(1), ttl, mock.Anything).Run(withCart(&model.CartState{}, 3)).Return(nil).Once()
			},
			wantLines: 1,
			wantItems: 1,
		},
		{
			name:   "success: same product merges into one line",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			req:    &model.AddCartItemRequest{ProductID: 10, Quantity: 2},
			mockCall: func(f fields) {
				f.cartRepo.On("Add", mock.Anything, "tok", uint64(1), uint64(10), 2).Return(&model.CartItem{CartItemID: 1, ProductID: 10, OrderQuantity: 3, UnitPrice: decimal.NewFromInt(100000)}, nil).Once()
				existing := &model.CartState{Items: []model.CartItem{watch(1, 10, 1)}}
				f.redisRepo.On("UpdateCart", mock.Anything, uint64(1), ttl, mock.Anything).Run(withCart(existing, 3)).Return(nil).Once()
			},
			wantLines: 1,
			wantItems: 3,
		},
		{
			name:    "error: negative quantity",
			fields:  fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			req:     &model.AddCartItemRequest{ProductID: 10, Quantity: -1},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:   "error: backend rejects, no local change",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			req:    &model.AddCartItemRequest{ProductID: 10},
			mockCall: func(f fields) {
				f.cartRepo.On("Add", mock.Anything, "tok", uint64(1), uint64(10), 1).Return(nil, &backend.APIError{StatusCode: http.StatusBadRequest, Message: "Out of stock"}).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(testConfig(), tt.fields.cartRepo, tt.fields.redisRepo)

			got, err := app.AddItem(context.Background(), signedIn, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddItem() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if len(got.Items) != tt.wantLines {
				t.Fatalf("len(Items) = %d, want %d", len(got.Items), tt.wantLines)
			}
			if got.TotalItems != tt.wantItems {
				t.Fatalf("TotalItems = %d, want %d", got.TotalItems, tt.wantItems)
			}
		})
	}
}

func TestCartApp_UpdateQuantity(t *testing.T) {
	type fields struct {
		cartRepo  *cartmocks.CartRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name      string
		fields    fields
		quantity  int
		mockCall  func(f fields)
		wantItems int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:      "error: zero quantity rejected without calls",
			fields:    fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			quantity:  0,
			wantErr:   true,
			errCode:   constant.ErrInvalidQuantity,
			wantItems: 0,
		},
		{
			name:   "success: latest response applied",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("NextCartSequence", mock.Anything, uint64(1), uint64(1), ttl).Return(int64(4), nil).Once()
				updated := watch(1, 10, 5)
				f.cartRepo.On("UpdateQuantity", mock.Anything, "tok", uint64(1), 5).Return(&updated, nil).Once()
				state := &model.CartState{Items: []model.CartItem{watch(1, 10, 1)}}
				f.redisRepo.On("UpdateCartFenced", mock.Anything, uint64(1), uint64(1), int64(4), ttl, mock.Anything).Run(withCart(state, 5)).Return(nil).Once()
			},
			quantity:  5,
			wantItems: 5,
		},
		{
			name:   "success: stale response discarded, current state returned",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("NextCartSequence", mock.Anything, uint64(1), uint64(1), ttl).Return(int64(3), nil).Once()
				stale := watch(1, 10, 2)
				f.cartRepo.On("UpdateQuantity", mock.Anything, "tok", uint64(1), 2).Return(&stale, nil).Once()
				f.redisRepo.On("UpdateCartFenced", mock.Anything, uint64(1), uint64(1), int64(3), ttl, mock.Anything).Return(redisrepo.ErrStaleSequence).Once()
				f.redisRepo.On("GetCart", mock.Anything, uint64(1)).Return(&model.CartState{Items: []model.CartItem{watch(1, 10, 7)}}, nil).Once()
			},
			quantity:  2,
			wantItems: 7,
		},
		{
			name:   "success: line removed while in flight stays removed",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("NextCartSequence", mock.Anything, uint64(1), uint64(1), ttl).Return(int64(1), nil).Once()
				late := watch(1, 10, 3)
				f.cartRepo.On("UpdateQuantity", mock.Anything, "tok", uint64(1), 3).Return(&late, nil).Once()
				// line 1 was removed before the response landed
				state := &model.CartState{Items: []model.CartItem{watch(2, 11, 1)}}
				f.redisRepo.On("UpdateCartFenced", mock.Anything, uint64(1), uint64(1), int64(1), ttl, mock.Anything).Run(withCart(state, 5)).Return(nil).Once()
			},
			quantity:  3,
			wantItems: 1,
		},
		{
			name:   "error: backend failure keeps previous state",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("NextCartSequence", mock.Anything, uint64(1), uint64(1), ttl).Return(int64(1), nil).Once()
				f.cartRepo.On("UpdateQuantity", mock.Anything, "tok", uint64(1), 3).Return(nil, errors.New("timeout")).Once()
			},
			quantity: 3,
			wantErr:  true,
			errCode:  constant.ErrBackendUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(testConfig(), tt.fields.cartRepo, tt.fields.redisRepo)

			got, err := app.UpdateQuantity(context.Background(), signedIn, 1, tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateQuantity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.TotalItems != tt.wantItems {
				t.Fatalf("TotalItems = %d, want %d", got.TotalItems, tt.wantItems)
			}
		})
	}
}

func TestCartApp_RemoveItem(t *testing.T) {
	t.Run("success: line removed after confirmation", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		redisRepo := redismocks.NewRepository(t)
		cartRepo.On("Remove", mock.Anything, "tok", uint64(1), uint64(2)).Return(nil).Once()
		state := &model.CartState{Items: []model.CartItem{watch(1, 10, 1), watch(2, 11, 1)}}
		redisRepo.On("UpdateCart", mock.Anything, uint64(1), ttl, mock.Anything).Run(withCart(state, 3)).Return(nil).Once()

		got, err := appcart.NewCartApp(testConfig(), cartRepo, redisRepo).RemoveItem(context.Background(), signedIn, 2)
		if err != nil {
			t.Fatalf("RemoveItem() error = %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].CartItemID != 1 {
			t.Fatalf("Items = %+v, want only cart item 1", got.Items)
		}
	})

	t.Run("error: backend failure leaves state untouched", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		redisRepo := redismocks.NewRepository(t)
		cartRepo.On("Remove", mock.Anything, "tok", uint64(1), uint64(2)).Return(&backend.APIError{StatusCode: http.StatusNotFound}).Once()

		_, err := appcart.NewCartApp(testConfig(), cartRepo, redisRepo).RemoveItem(context.Background(), signedIn, 2)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestCartApp_ClearCart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		redisRepo := redismocks.NewRepository(t)
		cartRepo.On("Clear", mock.Anything, "tok", uint64(1)).Return(nil).Once()
		state := &model.CartState{Items: []model.CartItem{watch(1, 10, 1)}}
		redisRepo.On("UpdateCart", mock.Anything, uint64(1), ttl, mock.Anything).Run(withCart(state, 3)).Return(nil).Once()

		if err := appcart.NewCartApp(testConfig(), cartRepo, redisRepo).ClearCart(context.Background(), signedIn); err != nil {
			t.Fatalf("ClearCart() error = %v", err)
		}
		if !state.IsEmpty() {
			t.Fatal("local cart should be empty")
		}
	})

	t.Run("error: backend failure keeps items", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		redisRepo := redismocks.NewRepository(t)
		cartRepo.On("Clear", mock.Anything, "tok", uint64(1)).Return(&backend.APIError{StatusCode: http.StatusInternalServerError}).Once()

		err := appcart.NewCartApp(testConfig(), cartRepo, redisRepo).ClearCart(context.Background(), signedIn)
		assertErrCode(t, err, constant.ErrBackendUnavailable)
	})

	t.Run("discard local only", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		state := &model.CartState{Items: []model.CartItem{watch(1, 10, 1)}}
		redisRepo.On("UpdateCart", mock.Anything, uint64(1), ttl, mock.Anything).Run(withCart(state, 3)).Return(nil).Once()

		if err := appcart.NewCartApp(testConfig(), cartmocks.NewCartRepository(t), redisRepo).DiscardLocal(context.Background(), 1); err != nil {
			t.Fatalf("DiscardLocal() error = %v", err)
		}
		if !state.IsEmpty() {
			t.Fatal("local cart should be empty")
		}
	})
}
