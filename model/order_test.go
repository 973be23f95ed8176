package model_test

import (
	"testing"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
)

func TestHistoryState_Projection(t *testing.T) {
	state := &model.HistoryState{UserID: 1}
	if !state.NeedsFetch("") {
		t.Fatal("fresh state should need a fetch")
	}

	state.Replace("", []model.OrderHistoryEntry{
		{OrderID: 1, Status: constant.OrderStatusWaiting},
		{OrderID: 2, Status: constant.OrderStatusSuccess},
	})
	if state.NeedsFetch("") {
		t.Fatal("all-orders view was just fetched")
	}
	if !state.NeedsFetch(constant.OrderStatusWaiting) {
		t.Fatal("switching filter must refetch")
	}

	state.Replace(constant.OrderStatusWaiting, []model.OrderHistoryEntry{{OrderID: 1, Status: constant.OrderStatusWaiting}})
	if len(state.Entries) != 1 {
		t.Fatalf("filtered projection should supersede the full one, got %d entries", len(state.Entries))
	}
	if !state.NeedsFetch("") {
		t.Fatal("all-orders view was superseded and must refetch")
	}
}

func TestHistoryState_MarkCancelled(t *testing.T) {
	state := &model.HistoryState{}
	state.Replace("", []model.OrderHistoryEntry{{OrderID: 5, Status: constant.OrderStatusWaiting}})

	if !state.MarkCancelled(5) {
		t.Fatal("MarkCancelled(5) = false, want true")
	}
	entry, _ := state.Find(5)
	if entry.Status != constant.OrderStatusCancel {
		t.Fatalf("Status = %s, want CANCEL", entry.Status)
	}
	if state.HasFetched {
		t.Fatal("HasFetched should be reset after a cancel")
	}
	if state.MarkCancelled(6) {
		t.Fatal("MarkCancelled(6) = true for unknown order")
	}
}

func TestHistoryState_Invalidate(t *testing.T) {
	state := &model.HistoryState{}
	state.Replace(constant.OrderStatusWaiting, nil)
	if state.Entries == nil {
		t.Fatal("Replace with nil should store an empty list")
	}

	state.Invalidate()
	if !state.NeedsFetch(constant.OrderStatusWaiting) {
		t.Fatal("invalidated view must refetch")
	}
}
