package model

import (
	"time"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/shopspring/decimal"
)

type OrderHistoryEntry struct {
	OrderID      uint64               `json:"orderId"`
	SerialNumber string               `json:"serialNumber"`
	Status       constant.OrderStatus `json:"status"`
	TotalPrice   decimal.Decimal      `json:"totalPrice"`
	CreatedAt    time.Time            `json:"createdAt"`
	ReceivedAt   *time.Time           `json:"receivedAt,omitempty"`
}

type OrderDetailItem struct {
	ProductID    uint64          `json:"productId"`
	ProductName  string          `json:"productName"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	ProductImage string          `json:"productImage"`
}

type OrderDetail struct {
	OrderHistoryEntry
	ReceiveName    string            `json:"receiveName"`
	ReceivePhone   string            `json:"receivePhone"`
	ReceiveAddress string            `json:"receiveAddress"`
	Note           string            `json:"note,omitempty"`
	Items          []OrderDetailItem `json:"items"`
}

// HistoryState is the order history view of one user. Status is the active
// filter; empty means all orders.
type HistoryState struct {
	UserID     uint64               `json:"user_id"`
	Entries    []OrderHistoryEntry  `json:"entries"`
	Status     constant.OrderStatus `json:"status"`
	HasFetched bool                 `json:"has_fetched"`
}

// NeedsFetch reports whether the view for status has to be loaded again.
func (h *HistoryState) NeedsFetch(status constant.OrderStatus) bool {
	return !h.HasFetched || h.Status != status
}

// Replace stores a fresh projection, superseding any previous filter.
func (h *HistoryState) Replace(status constant.OrderStatus, entries []OrderHistoryEntry) {
	h.Status = status
	h.Entries = entries
	if h.Entries == nil {
		h.Entries = []OrderHistoryEntry{}
	}
	h.HasFetched = true
}

// MarkCancelled sets the local entry of orderID to CANCEL and forces the
// next read to refetch. It reports whether the entry was present.
func (h *HistoryState) MarkCancelled(orderID uint64) bool {
	h.HasFetched = false
	for i := range h.Entries {
		if h.Entries[i].OrderID == orderID {
			h.Entries[i].Status = constant.OrderStatusCancel
			return true
		}
	}
	return false
}

func (h *HistoryState) Find(orderID uint64) (OrderHistoryEntry, bool) {
	for _, e := range h.Entries {
		if e.OrderID == orderID {
			return e, true
		}
	}
	return OrderHistoryEntry{}, false
}

func (h *HistoryState) Invalidate() {
	h.HasFetched = false
}

type HistoryResponse struct {
	Status  constant.OrderStatus `json:"status,omitempty"`
	Entries []OrderHistoryEntry  `json:"entries"`
}

type UpdateOrderStatusRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required"`
}

// AdminOrder is an order as listed in the back-office.
type AdminOrder struct {
	OrderHistoryEntry
	UserID       uint64 `json:"userId"`
	ReceiveName  string `json:"receiveName"`
	ReceivePhone string `json:"receivePhone"`
}
