package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidCredential
	ErrBackendUnavailable
	ErrEmptyCart
	ErrInvalidQuantity
	ErrInvalidOrderStatus
	ErrCheckoutFailed
	ErrMissingPaymentParams
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrForbidden:            "forbidden request",
	ErrInvalidCredential:    "username or password invalid",
	ErrBackendUnavailable:   "shop service unavailable",
	ErrEmptyCart:            "cart is empty",
	ErrInvalidQuantity:      "quantity must be at least 1",
	ErrInvalidOrderStatus:   "invalid order status",
	ErrCheckoutFailed:       "checkout failed",
	ErrMissingPaymentParams: "payment return is missing required parameters",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrInvalidCredential:    http.StatusBadRequest,
	ErrBackendUnavailable:   http.StatusBadGateway,
	ErrEmptyCart:            http.StatusBadRequest,
	ErrInvalidQuantity:      http.StatusBadRequest,
	ErrInvalidOrderStatus:   http.StatusBadRequest,
	ErrCheckoutFailed:       http.StatusBadRequest,
	ErrMissingPaymentParams: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrForbidden:            "0005",
	ErrInvalidCredential:    "0006",
	ErrBackendUnavailable:   "0007",
	ErrEmptyCart:            "0008",
	ErrInvalidQuantity:      "0009",
	ErrInvalidOrderStatus:   "0010",
	ErrCheckoutFailed:       "0011",
	ErrMissingPaymentParams: "0012",
}
