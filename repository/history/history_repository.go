package history

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
)

type HistoryRepository interface {
	List(ctx context.Context, token string, userID uint64, status constant.OrderStatus) ([]model.OrderHistoryEntry, error)
	GetBySerial(ctx context.Context, token, serialNumber string) (*model.OrderDetail, error)
	Cancel(ctx context.Context, token string, orderID uint64) error
}

type REST struct {
	client *backend.Client
}

func NewHistoryRepository(client *backend.Client) HistoryRepository {
	return &REST{client: client}
}

// List returns the orders of userID, all of them when status is empty.
func (r *REST) List(ctx context.Context, token string, userID uint64, status constant.OrderStatus) ([]model.OrderHistoryEntry, error) {
	q := url.Values{"userId": {strconv.FormatUint(userID, 10)}}
	if status != "" {
		q.Set("status", string(status))
	}

	entries := make([]model.OrderHistoryEntry, 0)
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/user/history/getAll",
		Query:  q,
		Token:  token,
	}, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *REST) GetBySerial(ctx context.Context, token, serialNumber string) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/user/history",
		Query:  url.Values{"serialNumber": {serialNumber}},
		Token:  token,
	}, &detail)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *REST) Cancel(ctx context.Context, token string, orderID uint64) error {
	return r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/user/history/%d/cancel", orderID),
		Token:  token,
	}, nil)
}
