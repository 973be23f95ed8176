package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/watch-storefront/constant"
)

// CheckoutRequest carries the delivery fields of the checkout form.
type CheckoutRequest struct {
	ReceiveAddress string `json:"receiveAddress" validate:"required"`
	ReceiveName    string `json:"receiveName" validate:"required"`
	ReceivePhone   string `json:"receivePhone" validate:"required,phone"`
	Note           string `json:"note"`
}

// Values encodes the delivery fields the way the backend and the provider
// redirect expect them.
func (r CheckoutRequest) Values() url.Values {
	v := url.Values{}
	v.Set(constant.QueryReceiveAddress, r.ReceiveAddress)
	v.Set(constant.QueryReceiveName, r.ReceiveName)
	v.Set(constant.QueryReceivePhone, r.ReceivePhone)
	v.Set(constant.QueryNote, r.Note)
	return v
}

type PaymentRedirect struct {
	RedirectURL string `json:"redirectUrl"`
}

// PaymentReturn is everything the success callback needs, rebuilt from the
// query string of the provider redirect.
type PaymentReturn struct {
	PaymentID string
	PayerID   string
	UserID    uint64
	Delivery  CheckoutRequest
}

// ParsePaymentReturn extracts a PaymentReturn from query. It reports false
// when paymentId, PayerID or userId is missing or userId is not a number.
func ParsePaymentReturn(query url.Values) (*PaymentReturn, bool) {
	paymentID := strings.TrimSpace(query.Get(constant.QueryPaymentID))
	payerID := strings.TrimSpace(query.Get(constant.QueryPayerID))
	rawUserID := strings.TrimSpace(query.Get(constant.QueryUserID))
	if paymentID == "" || payerID == "" || rawUserID == "" {
		return nil, false
	}
	userID, err := strconv.ParseUint(rawUserID, 10, 64)
	if err != nil || userID == 0 {
		return nil, false
	}
	return &PaymentReturn{
		PaymentID: paymentID,
		PayerID:   payerID,
		UserID:    userID,
		Delivery: CheckoutRequest{
			ReceiveAddress: query.Get(constant.QueryReceiveAddress),
			ReceiveName:    query.Get(constant.QueryReceiveName),
			ReceivePhone:   query.Get(constant.QueryReceivePhone),
			Note:           query.Get(constant.QueryNote),
		},
	}, true
}

// Values re-encodes the return for the confirmation call.
func (p *PaymentReturn) Values() url.Values {
	v := p.Delivery.Values()
	v.Set(constant.QueryPaymentID, p.PaymentID)
	v.Set(constant.QueryPayerID, p.PayerID)
	v.Set(constant.QueryUserID, strconv.FormatUint(p.UserID, 10))
	return v
}

// BackendMessage is the plain {message} body several backend endpoints answer with.
type BackendMessage struct {
	Message string `json:"message"`
}

type CheckoutResult struct {
	OrderID           string `json:"orderId"`
	Message           string `json:"message"`
	AlreadyReconciled bool   `json:"alreadyReconciled,omitempty"`
}

// CheckoutAttempt is one row of the checkout journal.
type CheckoutAttempt struct {
	ID          string                 `db:"id" json:"id"`
	UserID      uint64                 `db:"user_id" json:"userId"`
	State       constant.CheckoutState `db:"state" json:"state"`
	PaymentID   string                 `db:"payment_id" json:"paymentId"`
	RedirectURL string                 `db:"redirect_url" json:"redirectUrl"`
	Message     string                 `db:"message" json:"message"`
	CreatedAt   time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time              `db:"updated_at" json:"updatedAt"`
}

// CheckoutTransition is one recorded state change of an attempt.
type CheckoutTransition struct {
	AttemptID string                 `db:"attempt_id" json:"attemptId"`
	FromState constant.CheckoutState `db:"from_state" json:"fromState"`
	ToState   constant.CheckoutState `db:"to_state" json:"toState"`
	Detail    string                 `db:"detail" json:"detail"`
	CreatedAt time.Time              `db:"created_at" json:"createdAt"`
}
