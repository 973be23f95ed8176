package journal

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

// JournalRepository persists checkout attempts and their state transitions.
type JournalRepository interface {
	InsertAttemptTx(ctx context.Context, tx *sqlx.Tx, attempt *model.CheckoutAttempt) error
	UpdateAttemptTx(ctx context.Context, tx *sqlx.Tx, attempt *model.CheckoutAttempt) error
	InsertTransitionTx(ctx context.Context, tx *sqlx.Tx, t *model.CheckoutTransition) error
	LatestPendingAttempt(ctx context.Context, userID uint64) (*model.CheckoutAttempt, error)
	GetAttemptByPaymentID(ctx context.Context, paymentID string) (*model.CheckoutAttempt, error)
	ListAttempts(ctx context.Context, userID uint64, limit int) ([]model.CheckoutAttempt, error)
	ListTransitions(ctx context.Context, attemptID string) ([]model.CheckoutTransition, error)
}

func NewJournalRepository(conn *sqlx.DB) JournalRepository {
	return &SQL{conn: conn}
}

const (
	insertAttempt = "INSERT INTO checkout_attempt (id, user_id, state, payment_id, redirect_url, message, created_at, updated_at) VALUES (:id, :user_id, :state, :payment_id, :redirect_url, :message, :created_at, :updated_at)"

	updateAttempt = "UPDATE checkout_attempt SET state = :state, payment_id = :payment_id, redirect_url = :redirect_url, message = :message, updated_at = :updated_at WHERE id = :id"

	insertTransition = "INSERT INTO checkout_transition (attempt_id, from_state, to_state, detail, created_at) VALUES (:attempt_id, :from_state, :to_state, :detail, :created_at)"

	selectAttempt = "SELECT id, user_id, state, payment_id, redirect_url, message, created_at, updated_at FROM checkout_attempt"
)

func (r *SQL) InsertAttemptTx(ctx context.Context, tx *sqlx.Tx, attempt *model.CheckoutAttempt) error {
	_, err := tx.NamedExecContext(ctx, insertAttempt, attempt)
	return err
}

func (r *SQL) UpdateAttemptTx(ctx context.Context, tx *sqlx.Tx, attempt *model.CheckoutAttempt) error {
	_, err := tx.NamedExecContext(ctx, updateAttempt, attempt)
	return err
}

func (r *SQL) InsertTransitionTx(ctx context.Context, tx *sqlx.Tx, t *model.CheckoutTransition) error {
	_, err := tx.NamedExecContext(ctx, insertTransition, t)
	return err
}

// LatestPendingAttempt returns the newest attempt of userID still waiting for
// the provider to send the browser back, or nil.
func (r *SQL) LatestPendingAttempt(ctx context.Context, userID uint64) (*model.CheckoutAttempt, error) {
	var a model.CheckoutAttempt
	q := selectAttempt + " WHERE user_id = ? AND state = ? ORDER BY created_at DESC LIMIT 1"
	err := r.conn.GetContext(ctx, &a, q, userID, constant.CheckoutStateRedirectPending)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SQL) GetAttemptByPaymentID(ctx context.Context, paymentID string) (*model.CheckoutAttempt, error) {
	var a model.CheckoutAttempt
	q := selectAttempt + " WHERE payment_id = ? ORDER BY updated_at DESC LIMIT 1"
	err := r.conn.GetContext(ctx, &a, q, paymentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAttempts returns the newest attempts of userID first.
func (r *SQL) ListAttempts(ctx context.Context, userID uint64, limit int) ([]model.CheckoutAttempt, error) {
	out := make([]model.CheckoutAttempt, 0)
	q := selectAttempt + " WHERE user_id = ? ORDER BY created_at DESC LIMIT ?"
	if err := r.conn.SelectContext(ctx, &out, q, userID, limit); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) ListTransitions(ctx context.Context, attemptID string) ([]model.CheckoutTransition, error) {
	out := make([]model.CheckoutTransition, 0)
	q := "SELECT attempt_id, from_state, to_state, detail, created_at FROM checkout_transition WHERE attempt_id = ? ORDER BY id"
	if err := r.conn.SelectContext(ctx, &out, q, attemptID); err != nil {
		return nil, err
	}
	return out, nil
}
