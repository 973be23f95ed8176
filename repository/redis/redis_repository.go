package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/muhammadheryan/watch-storefront/model"
	goredis "github.com/redis/go-redis/v9"
)

// ErrStaleSequence is returned when a fenced cart update lost to a newer request.
var ErrStaleSequence = errors.New("stale cart sequence")

// ErrConflict is returned when a state update kept racing with other writers.
var ErrConflict = errors.New("state update conflict")

const maxWatchRetries = 5

// Repository keeps browser sessions and the per-user storefront state.
type Repository interface {
	SetSession(ctx context.Context, session *model.SessionEntity, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.SessionEntity, error)
	DeleteSession(ctx context.Context, sessionID string) error

	PushNotice(ctx context.Context, sessionID string, notice model.Notice, ttl time.Duration) error
	PopNotices(ctx context.Context, sessionID string) ([]model.Notice, error)

	GetCart(ctx context.Context, userID uint64) (*model.CartState, error)
	UpdateCart(ctx context.Context, userID uint64, ttl time.Duration, fn func(*model.CartState) error) error
	NextCartSequence(ctx context.Context, userID, cartItemID uint64, ttl time.Duration) (int64, error)
	UpdateCartFenced(ctx context.Context, userID, cartItemID uint64, seq int64, ttl time.Duration, fn func(*model.CartState) error) error

	GetHistory(ctx context.Context, userID uint64) (*model.HistoryState, error)
	UpdateHistory(ctx context.Context, userID uint64, ttl time.Duration, fn func(*model.HistoryState) error) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func noticeKey(sessionID string) string {
	return "notice:" + sessionID
}

func cartKey(userID uint64) string {
	return fmt.Sprintf("cart:%d", userID)
}

func cartSeqKey(userID, cartItemID uint64) string {
	return fmt.Sprintf("cart:%d:seq:%d", userID, cartItemID)
}

func historyKey(userID uint64) string {
	return fmt.Sprintf("history:%d", userID)
}

// SetSession stores a session with TTL
func (r *redis) SetSession(ctx context.Context, session *model.SessionEntity, ttl time.Duration) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.ID), b, ttl).Err()
}

// GetSession retrieves a session; a missing or expired one yields nil, nil
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.SessionEntity, error) {
	raw, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ent model.SessionEntity
	if err := json.Unmarshal(raw, &ent); err != nil {
		return nil, err
	}
	return &ent, nil
}

// DeleteSession removes a session and its pending notices
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID), noticeKey(sessionID)).Err()
}

func (r *redis) PushNotice(ctx context.Context, sessionID string, notice model.Notice, ttl time.Duration) error {
	b, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	key := noticeKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.RPush(ctx, key, b)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// PopNotices returns and removes every pending notice of a session.
func (r *redis) PopNotices(ctx context.Context, sessionID string) ([]model.Notice, error) {
	key := noticeKey(sessionID)
	var rng *goredis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		rng = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	notices := make([]model.Notice, 0, len(rng.Val()))
	for _, raw := range rng.Val() {
		var n model.Notice
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		notices = append(notices, n)
	}
	return notices, nil
}

func (r *redis) GetCart(ctx context.Context, userID uint64) (*model.CartState, error) {
	state := &model.CartState{UserID: userID, Items: []model.CartItem{}}
	if err := r.getJSON(ctx, cartKey(userID), state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *redis) UpdateCart(ctx context.Context, userID uint64, ttl time.Duration, fn func(*model.CartState) error) error {
	return watchUpdate(ctx, r.client, cartKey(userID), ttl, nil,
		func() *model.CartState { return &model.CartState{UserID: userID, Items: []model.CartItem{}} },
		func(_ *goredis.Tx, state *model.CartState) error { return fn(state) },
	)
}

// NextCartSequence issues the fence number of the next update of one cart item.
func (r *redis) NextCartSequence(ctx context.Context, userID, cartItemID uint64, ttl time.Duration) (int64, error) {
	key := cartSeqKey(userID, cartItemID)
	var incr *goredis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// UpdateCartFenced applies fn only while seq is still the latest sequence
// issued for the item, otherwise it returns ErrStaleSequence.
func (r *redis) UpdateCartFenced(ctx context.Context, userID, cartItemID uint64, seq int64, ttl time.Duration, fn func(*model.CartState) error) error {
	seqKey := cartSeqKey(userID, cartItemID)
	return watchUpdate(ctx, r.client, cartKey(userID), ttl, []string{seqKey},
		func() *model.CartState { return &model.CartState{UserID: userID, Items: []model.CartItem{}} },
		func(tx *goredis.Tx, state *model.CartState) error {
			current, err := tx.Get(ctx, seqKey).Int64()
			if err != nil && err != goredis.Nil {
				return err
			}
			if current != seq {
				return ErrStaleSequence
			}
			return fn(state)
		},
	)
}

func (r *redis) GetHistory(ctx context.Context, userID uint64) (*model.HistoryState, error) {
	state := &model.HistoryState{UserID: userID, Entries: []model.OrderHistoryEntry{}}
	if err := r.getJSON(ctx, historyKey(userID), state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *redis) UpdateHistory(ctx context.Context, userID uint64, ttl time.Duration, fn func(*model.HistoryState) error) error {
	return watchUpdate(ctx, r.client, historyKey(userID), ttl, nil,
		func() *model.HistoryState { return &model.HistoryState{UserID: userID, Entries: []model.OrderHistoryEntry{}} },
		func(_ *goredis.Tx, state *model.HistoryState) error { return fn(state) },
	)
}

func (r *redis) getJSON(ctx context.Context, key string, dst interface{}) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// watchUpdate runs a read-modify-write of the JSON value at key inside an
// optimistic transaction, retrying when another writer touched key or any
// of the extra watched keys.
func watchUpdate[T any](ctx context.Context, client *goredis.Client, key string, ttl time.Duration, extra []string, newState func() *T, fn func(*goredis.Tx, *T) error) error {
	txf := func(tx *goredis.Tx) error {
		state := newState()
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && err != goredis.Nil {
			return err
		}
		if err == nil {
			if err := json.Unmarshal(raw, state); err != nil {
				return err
			}
		}
		if err := fn(tx, state); err != nil {
			return err
		}
		b, err := json.Marshal(state)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, b, ttl)
			return nil
		})
		return err
	}

	keys := append([]string{key}, extra...)
	for i := 0; i < maxWatchRetries; i++ {
		err := client.Watch(ctx, txf, keys...)
		if err == goredis.TxFailedErr {
			continue
		}
		return err
	}
	return ErrConflict
}
