package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	"go.uber.org/zap"
)

// SubmitCheckout handler
// @Summary Start payment
// @Description Validates the delivery form and answers 303 to the payment provider
// @Tags Checkout
// @Accept json
// @Accept x-www-form-urlencoded
// @Param request body model.CheckoutRequest true "Delivery details"
// @Success 303
// @Failure 400 {object} Response
// @Router /user/cart/checkout [post]
func (s *RestHandler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	req, err := readCheckoutForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.Submit(r.Context(), session(r), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
}

func readCheckoutForm(r *http.Request) (*model.CheckoutRequest, error) {
	var req model.CheckoutRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return &req, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	req.ReceiveName = r.PostForm.Get(constant.QueryReceiveName)
	req.ReceivePhone = r.PostForm.Get(constant.QueryReceivePhone)
	req.ReceiveAddress = r.PostForm.Get(constant.QueryReceiveAddress)
	req.Note = r.PostForm.Get(constant.QueryNote)
	return &req, nil
}

// CheckoutSuccess handler
// @Summary Payment provider success return
// @Description Confirms the payment once and lands on the cart page with a notice
// @Tags Checkout
// @Param paymentId query string true "Payment ID"
// @Param PayerID query string true "Payer ID"
// @Param userId query int true "User ID"
// @Success 303
// @Router /user/cart/checkout/success [get]
func (s *RestHandler) CheckoutSuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session(r)

	res, err := s.CheckoutApp.ConfirmReturn(ctx, sess, r.URL.Query())
	if err != nil {
		if errors.IsType(err, constant.ErrUnauthorize) {
			s.fail(w, r, err)
			return
		}
		logger.Ctx(ctx).Warn("[CheckoutSuccess] checkout not confirmed", zap.String("error", err.Error()))
		s.SessionApp.Notify(ctx, sess.ID, model.Notice{Level: model.NoticeError, Message: err.Error()})
		http.Redirect(w, r, s.Config.Checkout.CartPath, http.StatusSeeOther)
		return
	}

	notice := model.Notice{Level: model.NoticeSuccess, Message: res.Message}
	if res.AlreadyReconciled {
		notice = revisitNotice(res)
	}
	s.SessionApp.Notify(ctx, sess.ID, notice)
	http.Redirect(w, r, s.Config.Checkout.CartPath, http.StatusSeeOther)
}

func revisitNotice(res *model.CheckoutResult) model.Notice {
	msg := "This order was already placed"
	switch {
	case res.OrderID != "":
		msg = "Order " + res.OrderID + " was already placed"
	case res.Message != "":
		msg = res.Message
	}
	return model.Notice{Level: model.NoticeInfo, Message: msg}
}

// CheckoutCancel handler
// @Summary Payment provider cancel return
// @Tags Checkout
// @Success 303
// @Router /user/cart/checkout/cancel [get]
func (s *RestHandler) CheckoutCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session(r)

	notice := s.CheckoutApp.CancelReturn(ctx, sess)
	s.SessionApp.Notify(ctx, sess.ID, *notice)
	http.Redirect(w, r, s.Config.Checkout.CartPath, http.StatusSeeOther)
}
