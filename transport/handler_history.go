package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/watch-storefront/constant"
)

// ListHistory handler
// @Summary Order history
// @Description All orders, or only those with the given status. Cached until invalidated unless refresh is set
// @Tags History
// @Produce json
// @Param status query string false "WAITING, CONFIRM, DELIVERY, SUCCESS or CANCEL"
// @Param refresh query bool false "Bypass the cached view"
// @Success 200 {object} model.HistoryResponse
// @Router /user/history [get]
func (s *RestHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	refresh := queryBool(r, "refresh")
	status := constant.OrderStatus(r.URL.Query().Get("status"))

	if status == "" {
		res, err := s.HistoryApp.FetchHistory(ctx, session(r), refresh)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeSuccess(w, res)
		return
	}

	res, err := s.HistoryApp.FetchHistoryByStatus(ctx, session(r), status, refresh)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrderDetail handler
// @Summary Order detail
// @Tags History
// @Produce json
// @Param serialNumber path string true "Order serial number"
// @Success 200 {object} model.OrderDetail
// @Router /user/history/{serialNumber} [get]
func (s *RestHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	res, err := s.HistoryApp.OrderDetail(r.Context(), session(r), mux.Vars(r)["serialNumber"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// CancelOrder handler
// @Summary Cancel a waiting order
// @Tags History
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /user/history/{orderId}/cancel [put]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.HistoryApp.CancelOrder(r.Context(), session(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"orderId": id, "status": constant.OrderStatusCancel})
}

// InvalidateHistory handler
// @Summary Mark a user's order history stale
// @Tags Internal
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Security BearerAuth
// @Router /internal/v1/history/{userId}/invalidate [post]
func (s *RestHandler) InvalidateHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUint(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.HistoryApp.Invalidate(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
