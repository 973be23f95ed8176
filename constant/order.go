package constant

type OrderStatus string

const (
	OrderStatusWaiting  OrderStatus = "WAITING"
	OrderStatusConfirm  OrderStatus = "CONFIRM"
	OrderStatusDelivery OrderStatus = "DELIVERY"
	OrderStatusSuccess  OrderStatus = "SUCCESS"
	OrderStatusCancel   OrderStatus = "CANCEL"
)

// Valid reports whether s is one of the statuses the shop backend knows.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusWaiting, OrderStatusConfirm, OrderStatusDelivery, OrderStatusSuccess, OrderStatusCancel:
		return true
	}
	return false
}

// orderTransitions lists the moves an admin may make on an order.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusWaiting:  {OrderStatusConfirm, OrderStatusCancel},
	OrderStatusConfirm:  {OrderStatusDelivery, OrderStatusCancel},
	OrderStatusDelivery: {OrderStatusSuccess},
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, to := range orderTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}
