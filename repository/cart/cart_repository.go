package cart

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
)

type CartRepository interface {
	List(ctx context.Context, token string, userID uint64) ([]model.CartItem, error)
	Add(ctx context.Context, token string, userID, productID uint64, quantity int) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, token string, cartItemID uint64, quantity int) (*model.CartItem, error)
	Remove(ctx context.Context, token string, userID, cartItemID uint64) error
	Clear(ctx context.Context, token string, userID uint64) error
}

type REST struct {
	client *backend.Client
}

func NewCartRepository(client *backend.Client) CartRepository {
	return &REST{client: client}
}

func userQuery(userID uint64) url.Values {
	return url.Values{"userId": {strconv.FormatUint(userID, 10)}}
}

func userHeader(userID uint64) http.Header {
	h := http.Header{}
	h.Set("userId", strconv.FormatUint(userID, 10))
	return h
}

func (r *REST) List(ctx context.Context, token string, userID uint64) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/user/cart/list",
		Query:  userQuery(userID),
		Token:  token,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *REST) Add(ctx context.Context, token string, userID, productID uint64, quantity int) (*model.CartItem, error) {
	var item model.CartItem
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/user/cart/add",
		Query:  userQuery(userID),
		Token:  token,
		Body: map[string]interface{}{
			"productId": productID,
			"quantity":  quantity,
		},
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *REST) UpdateQuantity(ctx context.Context, token string, cartItemID uint64, quantity int) (*model.CartItem, error) {
	var item model.CartItem
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/user/cart/items/%d", cartItemID),
		Token:  token,
		Body:   map[string]int{"quantity": quantity},
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *REST) Remove(ctx context.Context, token string, userID, cartItemID uint64) error {
	return r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/user/cart/%d", cartItemID),
		Header: userHeader(userID),
		Token:  token,
	}, nil)
}

func (r *REST) Clear(ctx context.Context, token string, userID uint64) error {
	return r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   "/user/cart/clear",
		Header: userHeader(userID),
		Token:  token,
	}, nil)
}
