package checkout

import (
	"context"
	"net/http"
	"strconv"

	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
)

// CheckoutRepository wraps the backend endpoints of the payment handoff.
type CheckoutRepository interface {
	CreateSession(ctx context.Context, token string, userID uint64, req *model.CheckoutRequest) (*model.PaymentRedirect, error)
	ConfirmPayment(ctx context.Context, token string, ret *model.PaymentReturn) (*model.BackendMessage, error)
	CancelCheckout(ctx context.Context, token string) (*model.BackendMessage, error)
}

type REST struct {
	client *backend.Client
}

func NewCheckoutRepository(client *backend.Client) CheckoutRepository {
	return &REST{client: client}
}

func (r *REST) CreateSession(ctx context.Context, token string, userID uint64, req *model.CheckoutRequest) (*model.PaymentRedirect, error) {
	q := req.Values()
	q.Set("userId", strconv.FormatUint(userID, 10))

	var res model.PaymentRedirect
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/user/cart/checkout",
		Query:  q,
		Token:  token,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *REST) ConfirmPayment(ctx context.Context, token string, ret *model.PaymentReturn) (*model.BackendMessage, error) {
	var res model.BackendMessage
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/user/cart/checkout/success",
		Query:  ret.Values(),
		Token:  token,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *REST) CancelCheckout(ctx context.Context, token string) (*model.BackendMessage, error) {
	var res model.BackendMessage
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/user/cart/checkout/cancel",
		Token:  token,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
