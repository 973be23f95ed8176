package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/muhammadheryan/watch-storefront/model"
	redisrepo "github.com/muhammadheryan/watch-storefront/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const ttl = time.Hour

func newRepo(t *testing.T) (redisrepo.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.NewRepository(client), mr
}

func line(cartItemID, productID uint64, qty int) model.CartItem {
	return model.CartItem{
		CartItemID:    cartItemID,
		ProductID:     productID,
		ProductName:   "Orient Bambino",
		UnitPrice:     decimal.NewFromInt(250000),
		OrderQuantity: qty,
	}
}

func TestRepository_Session(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	ent := &model.SessionEntity{ID: "sid-1", UserID: 7, Username: "an", Roles: []string{"USER"}, Token: "tok"}
	if err := repo.SetSession(ctx, ent, ttl); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}

	got, err := repo.GetSession(ctx, "sid-1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got == nil || got.UserID != 7 || got.Token != "tok" {
		t.Fatalf("GetSession() = %+v", got)
	}

	mr.FastForward(ttl + time.Second)
	got, err = repo.GetSession(ctx, "sid-1")
	if err != nil || got != nil {
		t.Fatalf("GetSession() after expiry = %+v, %v; want nil, nil", got, err)
	}
}

func TestRepository_NoticesPoppedOnce(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	first := model.Notice{Level: model.NoticeSuccess, Message: "Order 42 placed"}
	second := model.Notice{Level: model.NoticeInfo, Message: "Payment was cancelled"}
	for _, n := range []model.Notice{first, second} {
		if err := repo.PushNotice(ctx, "sid-1", n, ttl); err != nil {
			t.Fatalf("PushNotice() error = %v", err)
		}
	}

	got, err := repo.PopNotices(ctx, "sid-1")
	if err != nil {
		t.Fatalf("PopNotices() error = %v", err)
	}
	if len(got) != 2 || got[0] != first || got[1] != second {
		t.Fatalf("PopNotices() = %+v, want [%+v %+v]", got, first, second)
	}

	got, err = repo.PopNotices(ctx, "sid-1")
	if err != nil {
		t.Fatalf("second PopNotices() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("second PopNotices() = %+v, want none", got)
	}
}

func TestRepository_DeleteSessionDropsNotices(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_ = repo.SetSession(ctx, &model.SessionEntity{ID: "sid-1", Token: "tok"}, ttl)
	_ = repo.PushNotice(ctx, "sid-1", model.Notice{Level: model.NoticeInfo, Message: "hi"}, ttl)

	if err := repo.DeleteSession(ctx, "sid-1"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if got, _ := repo.PopNotices(ctx, "sid-1"); len(got) != 0 {
		t.Fatalf("notices survived DeleteSession: %+v", got)
	}
}

func TestRepository_GetCartMiss(t *testing.T) {
	repo, _ := newRepo(t)

	state, err := repo.GetCart(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	if state == nil || state.UserID != 7 || state.Items == nil || !state.IsEmpty() {
		t.Fatalf("GetCart() on a miss = %+v, want empty state", state)
	}
}

func TestRepository_UpdateCartFenced(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_ = repo.UpdateCart(ctx, 7, ttl, func(s *model.CartState) error {
		s.Apply(line(1, 10, 1))
		return nil
	})

	older, err := repo.NextCartSequence(ctx, 7, 1, ttl)
	if err != nil {
		t.Fatalf("NextCartSequence() error = %v", err)
	}
	newer, _ := repo.NextCartSequence(ctx, 7, 1, ttl)
	if newer <= older {
		t.Fatalf("sequence did not grow: %d then %d", older, newer)
	}

	called := false
	err = repo.UpdateCartFenced(ctx, 7, 1, older, ttl, func(s *model.CartState) error {
		called = true
		s.Update(line(1, 10, 2))
		return nil
	})
	if !errors.Is(err, redisrepo.ErrStaleSequence) {
		t.Fatalf("UpdateCartFenced(older) error = %v, want ErrStaleSequence", err)
	}
	if called {
		t.Fatal("stale update ran its reducer")
	}

	err = repo.UpdateCartFenced(ctx, 7, 1, newer, ttl, func(s *model.CartState) error {
		s.Update(line(1, 10, 5))
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateCartFenced(newer) error = %v", err)
	}

	state, _ := repo.GetCart(ctx, 7)
	if got, _ := state.Find(1); got.OrderQuantity != 5 {
		t.Fatalf("OrderQuantity = %d, want 5", got.OrderQuantity)
	}
}

func TestRepository_FencedUpdateAfterRemove(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_ = repo.UpdateCart(ctx, 7, ttl, func(s *model.CartState) error {
		s.Apply(line(1, 10, 1))
		return nil
	})
	seq, _ := repo.NextCartSequence(ctx, 7, 1, ttl)

	// confirmed remove lands before the quantity response
	_ = repo.UpdateCart(ctx, 7, ttl, func(s *model.CartState) error {
		s.Remove(1)
		return nil
	})

	err := repo.UpdateCartFenced(ctx, 7, 1, seq, ttl, func(s *model.CartState) error {
		s.Update(line(1, 10, 3))
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateCartFenced() error = %v", err)
	}

	state, _ := repo.GetCart(ctx, 7)
	if !state.IsEmpty() {
		t.Fatalf("removed line came back: %+v", state.Items)
	}
}

func TestRepository_UpdateCartRetriesOnConflict(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	attempts := 0
	err := repo.UpdateCart(ctx, 7, ttl, func(s *model.CartState) error {
		attempts++
		if attempts == 1 {
			// another request writes the cart between our read and EXEC
			if err := repo.UpdateCart(ctx, 7, ttl, func(other *model.CartState) error {
				other.Apply(line(2, 11, 1))
				return nil
			}); err != nil {
				t.Fatalf("concurrent UpdateCart() error = %v", err)
			}
		}
		s.Apply(line(1, 10, 1))
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateCart() error = %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}

	state, _ := repo.GetCart(ctx, 7)
	if len(state.Items) != 2 {
		t.Fatalf("len(Items) = %d, want both writes kept", len(state.Items))
	}
}

func TestRepository_UpdateHistoryGivesUpAfterRepeatedConflicts(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	attempts := 0
	err := repo.UpdateHistory(ctx, 7, ttl, func(s *model.HistoryState) error {
		attempts++
		_ = repo.UpdateHistory(ctx, 7, ttl, func(other *model.HistoryState) error {
			other.HasFetched = !other.HasFetched
			return nil
		})
		s.HasFetched = true
		return nil
	})
	if !errors.Is(err, redisrepo.ErrConflict) {
		t.Fatalf("UpdateHistory() error = %v, want ErrConflict", err)
	}
	if attempts != 5 {
		t.Fatalf("attempts = %d, want 5", attempts)
	}
}
