package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
)

// AdminRepository wraps the back-office endpoints. Every call needs an
// admin token.
type AdminRepository interface {
	CreateProduct(ctx context.Context, token string, req *model.ProductUpsertRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, token string, id uint64, req *model.ProductUpsertRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, token string, id uint64) error
	ListOrders(ctx context.Context, token string, status constant.OrderStatus) ([]model.AdminOrder, error)
	GetOrder(ctx context.Context, token string, id uint64) (*model.AdminOrder, error)
	UpdateOrderStatus(ctx context.Context, token string, id uint64, status constant.OrderStatus) error
	ListUsers(ctx context.Context, token string) ([]model.User, error)
	UpdateUserRoles(ctx context.Context, token string, id uint64, roles []string) error
	DeleteUser(ctx context.Context, token string, id uint64) error

	CreateCategory(ctx context.Context, token string, req *model.CategoryUpsertRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, token string, id uint64, req *model.CategoryUpsertRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, token string, id uint64) error
	CreateBrand(ctx context.Context, token string, req *model.BrandUpsertRequest) (*model.Brand, error)
	UpdateBrand(ctx context.Context, token string, id uint64, req *model.BrandUpsertRequest) (*model.Brand, error)
	DeleteBrand(ctx context.Context, token string, id uint64) error

	ListComments(ctx context.Context, token string, filter *model.CommentFilter) ([]model.Comment, error)
	UpdateCommentStatus(ctx context.Context, token string, id uint64, status constant.CommentStatus) error
	DeleteComment(ctx context.Context, token string, id uint64) error
}

type REST struct {
	client *backend.Client
}

func NewAdminRepository(client *backend.Client) AdminRepository {
	return &REST{client: client}
}

func (r *REST) CreateProduct(ctx context.Context, token string, req *model.ProductUpsertRequest) (*model.Product, error) {
	var p model.Product
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: "/admin/products", Token: token, Body: req}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *REST) UpdateProduct(ctx context.Context, token string, id uint64, req *model.ProductUpsertRequest) (*model.Product, error) {
	var p model.Product
	path := fmt.Sprintf("/admin/products/%d", id)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodPut, Path: path, Token: token, Body: req}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *REST) DeleteProduct(ctx context.Context, token string, id uint64) error {
	return r.client.Do(ctx, backend.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/admin/products/%d", id), Token: token}, nil)
}

func (r *REST) ListOrders(ctx context.Context, token string, status constant.OrderStatus) ([]model.AdminOrder, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	out := make([]model.AdminOrder, 0)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/admin/orders", Query: q, Token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) GetOrder(ctx context.Context, token string, id uint64) (*model.AdminOrder, error) {
	var o model.AdminOrder
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: fmt.Sprintf("/admin/orders/%d", id), Token: token}, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *REST) UpdateOrderStatus(ctx context.Context, token string, id uint64, status constant.OrderStatus) error {
	return r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/orders/%d/status", id),
		Token:  token,
		Body:   map[string]string{"status": string(status)},
	}, nil)
}

func (r *REST) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	out := make([]model.User, 0)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/admin/users", Token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) UpdateUserRoles(ctx context.Context, token string, id uint64, roles []string) error {
	return r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/users/%d/roles", id),
		Token:  token,
		Body:   map[string][]string{"roles": roles},
	}, nil)
}

func (r *REST) DeleteUser(ctx context.Context, token string, id uint64) error {
	return r.client.Do(ctx, backend.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/admin/users/%d", id), Token: token}, nil)
}

func (r *REST) CreateCategory(ctx context.Context, token string, req *model.CategoryUpsertRequest) (*model.Category, error) {
	var c model.Category
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: "/admin/categories", Token: token, Body: req}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *REST) UpdateCategory(ctx context.Context, token string, id uint64, req *model.CategoryUpsertRequest) (*model.Category, error) {
	var c model.Category
	path := fmt.Sprintf("/admin/categories/%d", id)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodPut, Path: path, Token: token, Body: req}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *REST) DeleteCategory(ctx context.Context, token string, id uint64) error {
	return r.client.Do(ctx, backend.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/admin/categories/%d", id), Token: token}, nil)
}

func (r *REST) CreateBrand(ctx context.Context, token string, req *model.BrandUpsertRequest) (*model.Brand, error) {
	var b model.Brand
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: "/admin/brands", Token: token, Body: req}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *REST) UpdateBrand(ctx context.Context, token string, id uint64, req *model.BrandUpsertRequest) (*model.Brand, error) {
	var b model.Brand
	path := fmt.Sprintf("/admin/brands/%d", id)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodPut, Path: path, Token: token, Body: req}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *REST) DeleteBrand(ctx context.Context, token string, id uint64) error {
	return r.client.Do(ctx, backend.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/admin/brands/%d", id), Token: token}, nil)
}

func (r *REST) ListComments(ctx context.Context, token string, filter *model.CommentFilter) ([]model.Comment, error) {
	q := url.Values{}
	if filter != nil {
		if filter.ProductID != 0 {
			q.Set("productId", fmt.Sprint(filter.ProductID))
		}
		if filter.Status != "" {
			q.Set("status", string(filter.Status))
		}
	}
	out := make([]model.Comment, 0)
	if err := r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/admin/comments", Query: q, Token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) UpdateCommentStatus(ctx context.Context, token string, id uint64, status constant.CommentStatus) error {
	return r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/comments/%d/status", id),
		Token:  token,
		Body:   map[string]string{"status": string(status)},
	}, nil)
}

func (r *REST) DeleteComment(ctx context.Context, token string, id uint64) error {
	return r.client.Do(ctx, backend.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/admin/comments/%d", id), Token: token}, nil)
}
