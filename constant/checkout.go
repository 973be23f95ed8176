package constant

type CheckoutState string

const (
	CheckoutStateIdle            CheckoutState = "IDLE"
	CheckoutStateSubmitting      CheckoutState = "SUBMITTING"
	CheckoutStateRedirectPending CheckoutState = "REDIRECT_PENDING"
	CheckoutStateReturnSuccess   CheckoutState = "RETURN_SUCCESS"
	CheckoutStateReturnCancel    CheckoutState = "RETURN_CANCEL"
	CheckoutStateReconciled      CheckoutState = "RECONCILED"
	CheckoutStateFailed          CheckoutState = "FAILED"
)

// Query parameter names carried through the payment provider redirect.
const (
	QueryPaymentID      = "paymentId"
	QueryPayerID        = "PayerID"
	QueryUserID         = "userId"
	QueryReceiveAddress = "receiveAddress"
	QueryReceiveName    = "receiveName"
	QueryReceivePhone   = "receivePhone"
	QueryNote           = "note"
)

const RoleAdmin = "ADMIN"
