package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/watch-storefront/application/admin"
	cartapp "github.com/muhammadheryan/watch-storefront/application/cart"
	catalogapp "github.com/muhammadheryan/watch-storefront/application/catalog"
	checkoutapp "github.com/muhammadheryan/watch-storefront/application/checkout"
	historyapp "github.com/muhammadheryan/watch-storefront/application/history"
	sessionapp "github.com/muhammadheryan/watch-storefront/application/session"
	"github.com/muhammadheryan/watch-storefront/cmd/config"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	utilsContext "github.com/muhammadheryan/watch-storefront/utils/context"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
	validatorx "github.com/muhammadheryan/watch-storefront/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config      *config.Config
	SessionApp  sessionapp.SessionApp
	CatalogApp  catalogapp.CatalogApp
	CartApp     cartapp.CartApp
	CheckoutApp checkoutapp.CheckoutApp
	HistoryApp  historyapp.HistoryApp
	AdminApp    adminapp.AdminApp
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Session
	mux.HandleFunc("/auth/sign-in", rh.SignIn).Methods(http.MethodPost)
	mux.HandleFunc("/auth/sign-out", rh.SignOut).Methods(http.MethodPost, http.MethodGet)
	mux.HandleFunc("/auth/session", rh.CurrentSession).Methods(http.MethodGet)

	// Catalog
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	mux.HandleFunc("/categories/{id}", rh.GetCategory).Methods(http.MethodGet)
	mux.HandleFunc("/brands", rh.ListBrands).Methods(http.MethodGet)
	mux.HandleFunc("/brands/{id}", rh.GetBrand).Methods(http.MethodGet)

	// Cart
	mux.HandleFunc("/user/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/user/cart", rh.ClearCart).Methods(http.MethodDelete)
	mux.HandleFunc("/user/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/user/cart/items/{cartItemId}", rh.UpdateCartItem).Methods(http.MethodPut)
	mux.HandleFunc("/user/cart/items/{cartItemId}", rh.RemoveCartItem).Methods(http.MethodDelete)

	// Checkout
	mux.HandleFunc("/user/cart/checkout", rh.SubmitCheckout).Methods(http.MethodPost)
	mux.HandleFunc("/user/cart/checkout/success", rh.CheckoutSuccess).Methods(http.MethodGet)
	mux.HandleFunc("/user/cart/checkout/cancel", rh.CheckoutCancel).Methods(http.MethodGet)

	// Order history
	mux.HandleFunc("/user/history", rh.ListHistory).Methods(http.MethodGet)
	mux.HandleFunc("/user/history/{serialNumber}", rh.GetOrderDetail).Methods(http.MethodGet)
	mux.HandleFunc("/user/history/{orderId}/cancel", rh.CancelOrder).Methods(http.MethodPut)

	// Back-office
	mux.HandleFunc("/admin/products", rh.AdminCreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/admin/products/{id}", rh.AdminUpdateProduct).Methods(http.MethodPut)
	mux.HandleFunc("/admin/products/{id}", rh.AdminDeleteProduct).Methods(http.MethodDelete)
	mux.HandleFunc("/admin/orders", rh.AdminListOrders).Methods(http.MethodGet)
	mux.HandleFunc("/admin/orders/{id}/status", rh.AdminUpdateOrderStatus).Methods(http.MethodPut)
	mux.HandleFunc("/admin/users", rh.AdminListUsers).Methods(http.MethodGet)
	mux.HandleFunc("/admin/users/{id}", rh.AdminDeleteUser).Methods(http.MethodDelete)
	mux.HandleFunc("/admin/users/{id}/roles", rh.AdminUpdateUserRoles).Methods(http.MethodPut)
	mux.HandleFunc("/admin/users/{id}/checkouts", rh.AdminCheckoutAttempts).Methods(http.MethodGet)
	mux.HandleFunc("/admin/checkouts/{attemptId}/transitions", rh.AdminCheckoutTransitions).Methods(http.MethodGet)
	mux.HandleFunc("/admin/categories", rh.AdminCreateCategory).Methods(http.MethodPost)
	mux.HandleFunc("/admin/categories/{id}", rh.AdminUpdateCategory).Methods(http.MethodPut)
	mux.HandleFunc("/admin/categories/{id}", rh.AdminDeleteCategory).Methods(http.MethodDelete)
	mux.HandleFunc("/admin/brands", rh.AdminCreateBrand).Methods(http.MethodPost)
	mux.HandleFunc("/admin/brands/{id}", rh.AdminUpdateBrand).Methods(http.MethodPut)
	mux.HandleFunc("/admin/brands/{id}", rh.AdminDeleteBrand).Methods(http.MethodDelete)
	mux.HandleFunc("/admin/comments", rh.AdminListComments).Methods(http.MethodGet)
	mux.HandleFunc("/admin/comments/{id}/status", rh.AdminUpdateCommentStatus).Methods(http.MethodPut)
	mux.HandleFunc("/admin/comments/{id}", rh.AdminDeleteComment).Methods(http.MethodDelete)
	mux.HandleFunc("/admin/dashboard", rh.AdminDashboard).Methods(http.MethodGet)

	// Internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(rh.Config.Internal.APIKey))
	internal.HandleFunc("/history/{userId}/invalidate", rh.InvalidateHistory).Methods(http.MethodPost)

	// middleware
	mux.Use(RecoveryMiddleware())
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware(rh.Config, rh.SessionApp))

	return mux
}

// session returns the session restored by SessionMiddleware.
func session(r *http.Request) *model.Session {
	if s, ok := utilsContext.GetSession(r.Context()); ok {
		return s
	}
	return model.NewSession(nil)
}

// fail writes err. A backend 401 on a signed-in call means the token went
// stale: the session is destroyed and the browser sent to sign in again.
func (s *RestHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	sess := session(r)
	if errors.IsType(err, constant.ErrUnauthorize) && sess.IsAuthenticated {
		s.SessionApp.DropSession(r.Context(), sess.ID)
		clearSessionCookie(w, s.Config)
		redirectToSignIn(w, r, s.Config)
		return
	}
	writeError(w, err)
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(v); err != nil {
		if fields := validatorx.FieldErrors(err); fields != nil {
			return errors.SetValidationError(fields)
		}
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// SignIn handler
// @Summary Sign in
// @Description Sign in against the shop backend and start a browser session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignInRequest true "Sign-in Request"
// @Success 200 {object} model.SignInResponse
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /auth/sign-in [post]
func (s *RestHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SessionApp.SignIn(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	// a previous session on this browser is replaced
	if old := session(r); old.ID != "" {
		s.SessionApp.DropSession(ctx, old.ID)
	}

	setSessionCookie(w, s.Config, res.SessionID)
	writeSuccess(w, res)
}

// SignOut handler
// @Summary Sign out
// @Description Ends the session locally; the backend logout is best effort
// @Tags Auth
// @Produce json
// @Success 200 {object} Response
// @Router /auth/sign-out [post]
func (s *RestHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	s.SessionApp.SignOut(r.Context(), session(r).ID)
	clearSessionCookie(w, s.Config)
	writeSuccess(w, model.NewSession(nil))
}

// CurrentSession handler
// @Summary Current session
// @Description Restores the session from the cookie without calling the backend
// @Tags Auth
// @Produce json
// @Success 200 {object} model.Session
// @Router /auth/session [get]
func (s *RestHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, session(r))
}
