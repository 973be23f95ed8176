package history

import (
	"context"

	"github.com/muhammadheryan/watch-storefront/cmd/config"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	historyrepo "github.com/muhammadheryan/watch-storefront/repository/history"
	redisrepo "github.com/muhammadheryan/watch-storefront/repository/redis"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	"go.uber.org/zap"
)

type HistoryApp interface {
	FetchHistory(ctx context.Context, sess *model.Session, refresh bool) (*model.HistoryResponse, error)
	FetchHistoryByStatus(ctx context.Context, sess *model.Session, status constant.OrderStatus, refresh bool) (*model.HistoryResponse, error)
	OrderDetail(ctx context.Context, sess *model.Session, serialNumber string) (*model.OrderDetail, error)
	CancelOrder(ctx context.Context, sess *model.Session, orderID uint64) error
	Invalidate(ctx context.Context, userID uint64) error
}

type historyAppImpl struct {
	config      *config.Config
	historyRepo historyrepo.HistoryRepository
	redisRepo   redisrepo.Repository
}

func NewHistoryApp(config *config.Config, historyRepo historyrepo.HistoryRepository, redisRepo redisrepo.Repository) HistoryApp {
	return &historyAppImpl{config: config, historyRepo: historyRepo, redisRepo: redisRepo}
}

func (s *historyAppImpl) FetchHistory(ctx context.Context, sess *model.Session, refresh bool) (*model.HistoryResponse, error) {
	return s.fetch(ctx, sess, "", refresh)
}

func (s *historyAppImpl) FetchHistoryByStatus(ctx context.Context, sess *model.Session, status constant.OrderStatus, refresh bool) (*model.HistoryResponse, error) {
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}
	return s.fetch(ctx, sess, status, refresh)
}

// fetch serves the cached projection when it was loaded for the same filter
// and nothing invalidated it since.
func (s *historyAppImpl) fetch(ctx context.Context, sess *model.Session, status constant.OrderStatus, refresh bool) (*model.HistoryResponse, error) {
	if sess == nil || !sess.IsAuthenticated {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if !refresh {
		state, err := s.redisRepo.GetHistory(ctx, sess.UserID)
		if err != nil {
			logger.Error("[FetchHistory] err GetHistory", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !state.NeedsFetch(status) {
			return &model.HistoryResponse{Status: state.Status, Entries: state.Entries}, nil
		}
	}

	entries, err := s.historyRepo.List(ctx, sess.Token, sess.UserID, status)
	if err != nil {
		logger.Error("[FetchHistory] err historyRepo.List", zap.String("error", err.Error()), zap.Uint64("user_id", sess.UserID))
		return nil, backend.MapError(err)
	}

	var res *model.HistoryResponse
	err = s.redisRepo.UpdateHistory(ctx, sess.UserID, s.config.Checkout.StateTTL, func(state *model.HistoryState) error {
		state.Replace(status, entries)
		res = &model.HistoryResponse{Status: state.Status, Entries: state.Entries}
		return nil
	})
	if err != nil {
		logger.Error("[FetchHistory] err UpdateHistory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return res, nil
}

func (s *historyAppImpl) OrderDetail(ctx context.Context, sess *model.Session, serialNumber string) (*model.OrderDetail, error) {
	if sess == nil || !sess.IsAuthenticated {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if serialNumber == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	detail, err := s.historyRepo.GetBySerial(ctx, sess.Token, serialNumber)
	if err != nil {
		logger.Error("[OrderDetail] err historyRepo.GetBySerial", zap.String("error", err.Error()), zap.String("serial_number", serialNumber))
		return nil, backend.MapError(err)
	}
	return detail, nil
}

// CancelOrder moves a WAITING order to CANCEL. The local entry is updated in
// place and the view is flagged for a refetch, since the backend may have
// changed more than the status (stock, payments).
func (s *historyAppImpl) CancelOrder(ctx context.Context, sess *model.Session, orderID uint64) error {
	if sess == nil || !sess.IsAuthenticated {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	state, err := s.redisRepo.GetHistory(ctx, sess.UserID)
	if err != nil {
		logger.Error("[CancelOrder] err GetHistory", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entry, ok := state.Find(orderID); ok && entry.Status != constant.OrderStatusWaiting {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.historyRepo.Cancel(ctx, sess.Token, orderID); err != nil {
		logger.Error("[CancelOrder] err historyRepo.Cancel", zap.String("error", err.Error()), zap.Uint64("order_id", orderID))
		return backend.MapError(err)
	}

	err = s.redisRepo.UpdateHistory(ctx, sess.UserID, s.config.Checkout.StateTTL, func(state *model.HistoryState) error {
		state.MarkCancelled(orderID)
		return nil
	})
	if err != nil {
		logger.Error("[CancelOrder] err UpdateHistory", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *historyAppImpl) Invalidate(ctx context.Context, userID uint64) error {
	err := s.redisRepo.UpdateHistory(ctx, userID, s.config.Checkout.StateTTL, func(state *model.HistoryState) error {
		state.Invalidate()
		return nil
	})
	if err != nil {
		logger.Error("[Invalidate] err UpdateHistory", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
