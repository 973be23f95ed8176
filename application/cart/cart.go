package cart

import (
	"context"
	stderrors "errors"

	"github.com/muhammadheryan/watch-storefront/cmd/config"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	cartrepo "github.com/muhammadheryan/watch-storefront/repository/cart"
	redisrepo "github.com/muhammadheryan/watch-storefront/repository/redis"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	"go.uber.org/zap"
)

// CartApp keeps the storefront's copy of a user's cart in step with the
// backend. State only changes after the backend confirmed a mutation.
type CartApp interface {
	FetchCart(ctx context.Context, sess *model.Session) (*model.CartResponse, error)
	AddItem(ctx context.Context, sess *model.Session, req *model.AddCartItemRequest) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, sess *model.Session, cartItemID uint64, quantity int) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, sess *model.Session, cartItemID uint64) (*model.CartResponse, error)
	ClearCart(ctx context.Context, sess *model.Session) error
	DiscardLocal(ctx context.Context, userID uint64) error
}

type cartAppImpl struct {
	config    *config.Config
	cartRepo  cartrepo.CartRepository
	redisRepo redisrepo.Repository
}

func NewCartApp(config *config.Config, cartRepo cartrepo.CartRepository, redisRepo redisrepo.Repository) CartApp {
	return &cartAppImpl{config: config, cartRepo: cartRepo, redisRepo: redisRepo}
}

func requireSession(sess *model.Session) error {
	if sess == nil || !sess.IsAuthenticated {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	return nil
}

func (s *cartAppImpl) FetchCart(ctx context.Context, sess *model.Session) (*model.CartResponse, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	items, err := s.cartRepo.List(ctx, sess.Token, sess.UserID)
	if err != nil {
		logger.Error("[FetchCart] err cartRepo.List", zap.String("error", err.Error()), zap.Uint64("user_id", sess.UserID))
		return nil, backend.MapError(err)
	}

	return s.apply(ctx, "[FetchCart]", sess.UserID, func(state *model.CartState) {
		state.Replace(items)
	})
}

func (s *cartAppImpl) AddItem(ctx context.Context, sess *model.Session, req *model.AddCartItemRequest) (*model.CartResponse, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	item, err := s.cartRepo.Add(ctx, sess.Token, sess.UserID, req.ProductID, quantity)
	if err != nil {
		logger.Error("[AddItem] err cartRepo.Add", zap.String("error", err.Error()), zap.Uint64("product_id", req.ProductID))
		return nil, backend.MapError(err)
	}

	// the backend merged quantities already, its item replaces ours
	return s.apply(ctx, "[AddItem]", sess.UserID, func(state *model.CartState) {
		state.Apply(*item)
	})
}

// UpdateQuantity rejects quantities below one without calling the backend;
// removing a line goes through RemoveItem only.
func (s *cartAppImpl) UpdateQuantity(ctx context.Context, sess *model.Session, cartItemID uint64, quantity int) (*model.CartResponse, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	seq, err := s.redisRepo.NextCartSequence(ctx, sess.UserID, cartItemID, s.config.Checkout.StateTTL)
	if err != nil {
		logger.Error("[UpdateQuantity] err NextCartSequence", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, sess.Token, cartItemID, quantity)
	if err != nil {
		logger.Error("[UpdateQuantity] err cartRepo.UpdateQuantity", zap.String("error", err.Error()), zap.Uint64("cart_item_id", cartItemID))
		return nil, backend.MapError(err)
	}

	var view *model.CartResponse
	err = s.redisRepo.UpdateCartFenced(ctx, sess.UserID, cartItemID, seq, s.config.Checkout.StateTTL, func(state *model.CartState) error {
		if !state.Update(*item) {
			// removed or cleared while the update was in flight
			logger.Info("[UpdateQuantity] line gone, response dropped", zap.Uint64("cart_item_id", cartItemID))
		}
		view = state.View()
		return nil
	})
	if stderrors.Is(err, redisrepo.ErrStaleSequence) {
		// a later update of the same item owns the state now
		logger.Info("[UpdateQuantity] discarded stale response", zap.Uint64("cart_item_id", cartItemID), zap.Int64("seq", seq))
		return s.current(ctx, "[UpdateQuantity]", sess.UserID)
	}
	if err != nil {
		logger.Error("[UpdateQuantity] err UpdateCartFenced", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return view, nil
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, sess *model.Session, cartItemID uint64) (*model.CartResponse, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Remove(ctx, sess.Token, sess.UserID, cartItemID); err != nil {
		logger.Error("[RemoveItem] err cartRepo.Remove", zap.String("error", err.Error()), zap.Uint64("cart_item_id", cartItemID))
		return nil, backend.MapError(err)
	}

	return s.apply(ctx, "[RemoveItem]", sess.UserID, func(state *model.CartState) {
		state.Remove(cartItemID)
	})
}

func (s *cartAppImpl) ClearCart(ctx context.Context, sess *model.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}

	if err := s.cartRepo.Clear(ctx, sess.Token, sess.UserID); err != nil {
		logger.Error("[ClearCart] err cartRepo.Clear", zap.String("error", err.Error()), zap.Uint64("user_id", sess.UserID))
		return backend.MapError(err)
	}

	_, err := s.apply(ctx, "[ClearCart]", sess.UserID, func(state *model.CartState) {
		state.Clear()
	})
	return err
}

// DiscardLocal empties the storefront copy only. The next FetchCart brings
// back whatever the backend still holds.
func (s *cartAppImpl) DiscardLocal(ctx context.Context, userID uint64) error {
	_, err := s.apply(ctx, "[DiscardLocal]", userID, func(state *model.CartState) {
		state.Clear()
	})
	return err
}

func (s *cartAppImpl) apply(ctx context.Context, op string, userID uint64, fn func(*model.CartState)) (*model.CartResponse, error) {
	var view *model.CartResponse
	err := s.redisRepo.UpdateCart(ctx, userID, s.config.Checkout.StateTTL, func(state *model.CartState) error {
		fn(state)
		view = state.View()
		return nil
	})
	if err != nil {
		logger.Error(op+" err UpdateCart", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return view, nil
}

func (s *cartAppImpl) current(ctx context.Context, op string, userID uint64) (*model.CartResponse, error) {
	state, err := s.redisRepo.GetCart(ctx, userID)
	if err != nil {
		logger.Error(op+" err GetCart", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return state.View(), nil
}
