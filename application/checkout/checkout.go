package checkout

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	cartapp "github.com/muhammadheryan/watch-storefront/application/cart"
	"github.com/muhammadheryan/watch-storefront/cmd/config"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	checkoutrepo "github.com/muhammadheryan/watch-storefront/repository/checkout"
	journalrepo "github.com/muhammadheryan/watch-storefront/repository/journal"
	txrepo "github.com/muhammadheryan/watch-storefront/repository/tx"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	validatorx "github.com/muhammadheryan/watch-storefront/utils/validator"
	"go.uber.org/zap"
)

const (
	defaultFailureMessage = "Payment could not be confirmed"
	defaultCancelMessage  = "Payment was cancelled"
)

var (
	orderIDPattern  = regexp.MustCompile(`(?i)mã đơn hàng\s*:\s*([A-Za-z0-9-]+)`)
	trailingNumbers = regexp.MustCompile(`(\d+)\D*$`)

	// words that turn the success marker into its opposite when they precede it
	negations = []string{"không", "chưa", "not", "no", "un"}
)

// HistoryInvalidator marks a user's order history as stale.
type HistoryInvalidator interface {
	Invalidate(ctx context.Context, userID uint64) error
}

// CheckoutApp drives the payment handoff. Submit ends with the browser
// leaving for the provider; ConfirmReturn and CancelReturn resume the flow
// from nothing but the return URL and the session cookie.
type CheckoutApp interface {
	Submit(ctx context.Context, sess *model.Session, req *model.CheckoutRequest) (*model.PaymentRedirect, error)
	ConfirmReturn(ctx context.Context, sess *model.Session, query url.Values) (*model.CheckoutResult, error)
	CancelReturn(ctx context.Context, sess *model.Session) *model.Notice
}

type checkoutAppImpl struct {
	config       *config.Config
	checkoutRepo checkoutrepo.CheckoutRepository
	cartApp      cartapp.CartApp
	invalidator  HistoryInvalidator
	journal      *journal
}

func NewCheckoutApp(config *config.Config, checkoutRepo checkoutrepo.CheckoutRepository, cartApp cartapp.CartApp, invalidator HistoryInvalidator, txRepo txrepo.TxRepository, journalRepo journalrepo.JournalRepository) CheckoutApp {
	return &checkoutAppImpl{
		config:       config,
		checkoutRepo: checkoutRepo,
		cartApp:      cartApp,
		invalidator:  invalidator,
		journal:      &journal{txRepo: txRepo, journalRepo: journalRepo},
	}
}

func (s *checkoutAppImpl) Submit(ctx context.Context, sess *model.Session, req *model.CheckoutRequest) (*model.PaymentRedirect, error) {
	if sess == nil || !sess.IsAuthenticated {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	req.ReceiveName = strings.TrimSpace(req.ReceiveName)
	req.ReceivePhone = strings.TrimSpace(req.ReceivePhone)
	req.ReceiveAddress = strings.TrimSpace(req.ReceiveAddress)
	if err := validatorx.ValidateStruct(req); err != nil {
		if fields := validatorx.FieldErrors(err); fields != nil {
			return nil, errors.SetValidationError(fields)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cart, err := s.cartApp.FetchCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	if cart.TotalItems == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	attempt := s.journal.begin(ctx, sess.UserID)

	redirect, err := s.checkoutRepo.CreateSession(ctx, sess.Token, sess.UserID, req)
	if err != nil {
		logger.Error("[Submit] err checkoutRepo.CreateSession", zap.String("error", err.Error()), zap.Uint64("user_id", sess.UserID))
		s.journal.advance(ctx, attempt, constant.CheckoutStateFailed, err.Error())
		return nil, backend.MapError(err)
	}

	if !validRedirect(redirect.RedirectURL) {
		logger.Error("[Submit] invalid redirect url", zap.String("redirect_url", redirect.RedirectURL))
		s.journal.advance(ctx, attempt, constant.CheckoutStateFailed, "invalid redirect url")
		return nil, errors.SetCustomError(constant.ErrCheckoutFailed)
	}

	attempt.RedirectURL = redirect.RedirectURL
	s.journal.advance(ctx, attempt, constant.CheckoutStateRedirectPending, "")

	return redirect, nil
}

func (s *checkoutAppImpl) ConfirmReturn(ctx context.Context, sess *model.Session, query url.Values) (*model.CheckoutResult, error) {
	if sess == nil || !sess.IsAuthenticated {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	ret, ok := model.ParsePaymentReturn(query)
	if !ok {
		logger.Warn("[ConfirmReturn] missing payment parameters", zap.Uint64("user_id", sess.UserID))
		return nil, errors.SetCustomError(constant.ErrMissingPaymentParams)
	}
	if ret.UserID != sess.UserID {
		logger.Warn("[ConfirmReturn] return url belongs to another user", zap.Uint64("user_id", sess.UserID), zap.Uint64("return_user_id", ret.UserID))
		return nil, errors.SetCustomError(constant.ErrCheckoutFailed)
	}

	if done := s.journal.reconciled(ctx, ret.PaymentID); done != nil {
		// reload or bookmark of a success url that was already handled
		return &model.CheckoutResult{OrderID: extractOrderID(done.Message), Message: done.Message, AlreadyReconciled: true}, nil
	}

	attempt := s.journal.pending(ctx, sess.UserID)
	attempt.PaymentID = ret.PaymentID
	s.journal.advance(ctx, attempt, constant.CheckoutStateReturnSuccess, "")

	res, err := s.checkoutRepo.ConfirmPayment(ctx, sess.Token, ret)
	if err != nil {
		logger.Error("[ConfirmReturn] err checkoutRepo.ConfirmPayment", zap.String("error", err.Error()), zap.String("payment_id", ret.PaymentID))
		s.journal.advance(ctx, attempt, constant.CheckoutStateFailed, err.Error())
		return nil, confirmError(err)
	}

	if !confirmsSuccess(res.Message, s.config.Checkout.SuccessMarker) {
		logger.Warn("[ConfirmReturn] payment not confirmed", zap.String("message", res.Message), zap.String("payment_id", ret.PaymentID))
		attempt.Message = res.Message
		s.journal.advance(ctx, attempt, constant.CheckoutStateFailed, "no success marker")
		msg := res.Message
		if msg == "" {
			msg = defaultFailureMessage
		}
		return nil, errors.SetCustomErrorMessage(constant.ErrCheckoutFailed, msg)
	}

	if err := s.cartApp.ClearCart(ctx, sess); err != nil {
		logger.Warn("[ConfirmReturn] server cart clear failed, discarding local cart", zap.String("error", err.Error()))
		if err := s.cartApp.DiscardLocal(ctx, sess.UserID); err != nil {
			logger.Error("[ConfirmReturn] err DiscardLocal", zap.String("error", err.Error()))
		}
	}

	if err := s.invalidator.Invalidate(ctx, sess.UserID); err != nil {
		logger.Error("[ConfirmReturn] err invalidate history", zap.String("error", err.Error()), zap.Uint64("user_id", sess.UserID))
	}

	attempt.Message = res.Message
	s.journal.advance(ctx, attempt, constant.CheckoutStateReconciled, "")

	return &model.CheckoutResult{
		OrderID: extractOrderID(res.Message),
		Message: res.Message,
	}, nil
}

// CancelReturn always ends in an informational notice; a failing cancel
// call is only logged.
func (s *checkoutAppImpl) CancelReturn(ctx context.Context, sess *model.Session) *model.Notice {
	notice := &model.Notice{Level: model.NoticeInfo, Message: defaultCancelMessage}
	if sess == nil || !sess.IsAuthenticated {
		return notice
	}

	res, err := s.checkoutRepo.CancelCheckout(ctx, sess.Token)
	if err != nil {
		logger.Warn("[CancelReturn] err checkoutRepo.CancelCheckout", zap.String("error", err.Error()), zap.Uint64("user_id", sess.UserID))
	} else if res.Message != "" {
		notice.Message = res.Message
	}

	attempt := s.journal.pending(ctx, sess.UserID)
	attempt.Message = notice.Message
	s.journal.advance(ctx, attempt, constant.CheckoutStateReturnCancel, "")

	return notice
}

func confirmError(err error) error {
	mapped := backend.MapError(err)
	if errors.IsType(mapped, constant.ErrUnauthorize) {
		return mapped
	}
	if apiErr, ok := err.(*backend.APIError); ok && apiErr.Message != "" {
		return errors.SetCustomErrorMessage(constant.ErrCheckoutFailed, apiErr.Message)
	}
	return errors.SetCustomErrorMessage(constant.ErrCheckoutFailed, defaultFailureMessage)
}

func validRedirect(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}

// confirmsSuccess reports whether message carries the success marker in a
// positive sense. "Thanh toán không thành công" contains the marker but is a
// failure.
func confirmsSuccess(message, marker string) bool {
	msg := strings.ToLower(message)
	marker = strings.ToLower(strings.TrimSpace(marker))
	if marker == "" {
		return false
	}

	for offset := 0; ; {
		i := strings.Index(msg[offset:], marker)
		if i < 0 {
			return false
		}
		at := offset + i
		if !negated(msg[:at]) {
			return true
		}
		offset = at + len(marker)
	}
}

func negated(prefix string) bool {
	words := strings.Fields(prefix)
	if len(words) == 0 {
		return false
	}
	last := strings.TrimRight(words[len(words)-1], ".,:;!-")
	for _, n := range negations {
		if last == n {
			return true
		}
	}
	return false
}

// extractOrderID pulls the order id out of a confirmation message such as
// "Thanh toán thành công. Mã đơn hàng: 42".
func extractOrderID(message string) string {
	if m := orderIDPattern.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	if m := trailingNumbers.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	return ""
}
