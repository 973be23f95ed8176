package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	journalrepo "github.com/muhammadheryan/watch-storefront/repository/journal"
	txrepo "github.com/muhammadheryan/watch-storefront/repository/tx"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	"go.uber.org/zap"
)

// journal records checkout state changes. Write failures are logged and
// never change the outcome seen by the shopper.
type journal struct {
	txRepo      txrepo.TxRepository
	journalRepo journalrepo.JournalRepository
}

// begin opens a new attempt in SUBMITTING.
func (j *journal) begin(ctx context.Context, userID uint64) *model.CheckoutAttempt {
	now := time.Now()
	attempt := &model.CheckoutAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		State:     constant.CheckoutStateSubmitting,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := j.txRepo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		if err := j.journalRepo.InsertAttemptTx(ctx, tx, attempt); err != nil {
			return err
		}
		return j.journalRepo.InsertTransitionTx(ctx, tx, &model.CheckoutTransition{
			AttemptID: attempt.ID,
			FromState: constant.CheckoutStateIdle,
			ToState:   constant.CheckoutStateSubmitting,
			CreatedAt: now,
		})
	})
	if err != nil {
		logger.Error("[journal.begin] err RunInTx", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
	}
	return attempt
}

// pending returns the attempt the provider sent the browser back for. A
// return without a known attempt (journal down, other device) gets a fresh
// one so the rest of the flow can still be recorded.
func (j *journal) pending(ctx context.Context, userID uint64) *model.CheckoutAttempt {
	attempt, err := j.journalRepo.LatestPendingAttempt(ctx, userID)
	if err != nil {
		logger.Error("[journal.pending] err LatestPendingAttempt", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
	}
	if attempt != nil {
		return attempt
	}

	now := time.Now()
	attempt = &model.CheckoutAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		State:     constant.CheckoutStateRedirectPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = j.txRepo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		return j.journalRepo.InsertAttemptTx(ctx, tx, attempt)
	})
	if err != nil {
		logger.Error("[journal.pending] err RunInTx", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
	}
	return attempt
}

// reconciled returns the attempt that already settled paymentID, or nil.
func (j *journal) reconciled(ctx context.Context, paymentID string) *model.CheckoutAttempt {
	attempt, err := j.journalRepo.GetAttemptByPaymentID(ctx, paymentID)
	if err != nil {
		logger.Error("[journal.reconciled] err GetAttemptByPaymentID", zap.String("error", err.Error()), zap.String("payment_id", paymentID))
		return nil
	}
	if attempt == nil || attempt.State != constant.CheckoutStateReconciled {
		return nil
	}
	return attempt
}

// advance moves attempt to state and records the transition.
func (j *journal) advance(ctx context.Context, attempt *model.CheckoutAttempt, state constant.CheckoutState, detail string) {
	from := attempt.State
	attempt.State = state
	attempt.UpdatedAt = time.Now()

	err := j.txRepo.RunInTx(ctx, func(tx *sqlx.Tx) error {
		if err := j.journalRepo.UpdateAttemptTx(ctx, tx, attempt); err != nil {
			return err
		}
		return j.journalRepo.InsertTransitionTx(ctx, tx, &model.CheckoutTransition{
			AttemptID: attempt.ID,
			FromState: from,
			ToState:   state,
			Detail:    detail,
			CreatedAt: attempt.UpdatedAt,
		})
	})
	if err != nil {
		logger.Error("[journal.advance] err RunInTx", zap.String("error", err.Error()),
			zap.String("attempt_id", attempt.ID), zap.String("to_state", string(state)))
	}
}
