package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
)

// GetCart handler
// @Summary Current cart
// @Description Reloads the cart from the backend and hands out pending notices
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Failure 502 {object} Response
// @Router /user/cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session(r)

	res, err := s.CartApp.FetchCart(ctx, sess)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res.Notices = s.SessionApp.Notices(ctx, sess.ID)
	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Item"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} Response
// @Router /user/cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), session(r), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Change quantity
// @Description Quantities below one are rejected; use the delete route to remove a line
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartItemId path int true "Cart item ID"
// @Param request body model.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} Response
// @Router /user/cart/items/{cartItemId} [put]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "cartItemId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.UpdateQuantity(r.Context(), session(r), id, req.Quantity)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Param cartItemId path int true "Cart item ID"
// @Success 200 {object} model.CartResponse
// @Router /user/cart/items/{cartItemId} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "cartItemId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.RemoveItem(r.Context(), session(r), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} Response
// @Router /user/cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.ClearCart(r.Context(), session(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, &model.CartResponse{Items: []model.CartItem{}})
}
