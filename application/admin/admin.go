package admin

import (
	"context"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
	adminrepo "github.com/muhammadheryan/watch-storefront/repository/admin"
	journalrepo "github.com/muhammadheryan/watch-storefront/repository/journal"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	validatorx "github.com/muhammadheryan/watch-storefront/utils/validator"
	"go.uber.org/zap"
)

// HistoryInvalidator marks a user's order history as stale.
type HistoryInvalidator interface {
	Invalidate(ctx context.Context, userID uint64) error
}

// AdminApp is the back-office. Every operation requires the ADMIN role.
type AdminApp interface {
	CreateProduct(ctx context.Context, sess *model.Session, req *model.ProductUpsertRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, sess *model.Session, id uint64, req *model.ProductUpsertRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, sess *model.Session, id uint64) error
	ListOrders(ctx context.Context, sess *model.Session, status constant.OrderStatus) ([]model.AdminOrder, error)
	UpdateOrderStatus(ctx context.Context, sess *model.Session, orderID uint64, status constant.OrderStatus) (*model.AdminOrder, error)
	ListUsers(ctx context.Context, sess *model.Session) ([]model.User, error)
	UpdateUserRoles(ctx context.Context, sess *model.Session, userID uint64, req *model.UpdateUserRolesRequest) error
	DeleteUser(ctx context.Context, sess *model.Session, userID uint64) error

	CreateCategory(ctx context.Context, sess *model.Session, req *model.CategoryUpsertRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, sess *model.Session, id uint64, req *model.CategoryUpsertRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, sess *model.Session, id uint64) error
	CreateBrand(ctx context.Context, sess *model.Session, req *model.BrandUpsertRequest) (*model.Brand, error)
	UpdateBrand(ctx context.Context, sess *model.Session, id uint64, req *model.BrandUpsertRequest) (*model.Brand, error)
	DeleteBrand(ctx context.Context, sess *model.Session, id uint64) error

	ListComments(ctx context.Context, sess *model.Session, filter *model.CommentFilter) ([]model.Comment, error)
	UpdateCommentStatus(ctx context.Context, sess *model.Session, id uint64, status constant.CommentStatus) error
	DeleteComment(ctx context.Context, sess *model.Session, id uint64) error

	Dashboard(ctx context.Context, sess *model.Session) (*model.Dashboard, error)
	CheckoutAttempts(ctx context.Context, sess *model.Session, userID uint64) ([]model.CheckoutAttempt, error)
	CheckoutTransitions(ctx context.Context, sess *model.Session, attemptID string) ([]model.CheckoutTransition, error)
}

const checkoutAttemptLimit = 20

type adminAppImpl struct {
	adminRepo   adminrepo.AdminRepository
	journalRepo journalrepo.JournalRepository
	invalidator HistoryInvalidator
}

func NewAdminApp(adminRepo adminrepo.AdminRepository, journalRepo journalrepo.JournalRepository, invalidator HistoryInvalidator) AdminApp {
	return &adminAppImpl{adminRepo: adminRepo, journalRepo: journalRepo, invalidator: invalidator}
}

func requireAdmin(sess *model.Session) error {
	if sess == nil || !sess.IsAuthenticated {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !sess.HasRole(constant.RoleAdmin) {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}

// validate runs the struct rules on req and returns the field errors found,
// or a plain invalid request error when req cannot be validated at all.
func validate(req interface{}) (map[string]string, error) {
	fields := map[string]string{}
	if err := validatorx.ValidateStruct(req); err != nil {
		fe := validatorx.FieldErrors(err)
		if fe == nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		fields = fe
	}
	return fields, nil
}

func validateRequest(req interface{}) error {
	fields, err := validate(req)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return errors.SetValidationError(fields)
	}
	return nil
}

func validateProduct(req *model.ProductUpsertRequest) error {
	if req == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	fields, err := validate(req)
	if err != nil {
		return err
	}
	if !req.Price.IsPositive() {
		fields["price"] = "must be greater than 0"
	}
	if len(fields) > 0 {
		return errors.SetValidationError(fields)
	}
	return nil
}

func (s *adminAppImpl) CreateProduct(ctx context.Context, sess *model.Session, req *model.ProductUpsertRequest) (*model.Product, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	p, err := s.adminRepo.CreateProduct(ctx, sess.Token, req)
	if err != nil {
		logger.Error("[CreateProduct] err adminRepo.CreateProduct", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	return p, nil
}

func (s *adminAppImpl) UpdateProduct(ctx context.Context, sess *model.Session, id uint64, req *model.ProductUpsertRequest) (*model.Product, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	p, err := s.adminRepo.UpdateProduct(ctx, sess.Token, id, req)
	if err != nil {
		logger.Error("[UpdateProduct] err adminRepo.UpdateProduct", zap.String("error", err.Error()), zap.Uint64("product_id", id))
		return nil, backend.MapError(err)
	}
	return p, nil
}

func (s *adminAppImpl) DeleteProduct(ctx context.Context, sess *model.Session, id uint64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	if err := s.adminRepo.DeleteProduct(ctx, sess.Token, id); err != nil {
		logger.Error("[DeleteProduct] err adminRepo.DeleteProduct", zap.String("error", err.Error()), zap.Uint64("product_id", id))
		return backend.MapError(err)
	}
	return nil
}

func (s *adminAppImpl) ListOrders(ctx context.Context, sess *model.Session, status constant.OrderStatus) ([]model.AdminOrder, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	orders, err := s.adminRepo.ListOrders(ctx, sess.Token, status)
	if err != nil {
		logger.Error("[ListOrders] err adminRepo.ListOrders", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	if orders == nil {
		orders = []model.AdminOrder{}
	}
	return orders, nil
}

// UpdateOrderStatus moves an order along WAITING, CONFIRM, DELIVERY, SUCCESS
// or to CANCEL, and marks the owner's order history stale.
func (s *adminAppImpl) UpdateOrderStatus(ctx context.Context, sess *model.Session, orderID uint64, status constant.OrderStatus) (*model.AdminOrder, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	order, err := s.adminRepo.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		logger.Error("[UpdateOrderStatus] err adminRepo.GetOrder", zap.String("error", err.Error()), zap.Uint64("order_id", orderID))
		return nil, backend.MapError(err)
	}
	if !order.Status.CanTransition(status) {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidOrderStatus,
			"cannot move order from "+string(order.Status)+" to "+string(status))
	}

	if err := s.adminRepo.UpdateOrderStatus(ctx, sess.Token, orderID, status); err != nil {
		logger.Error("[UpdateOrderStatus] err adminRepo.UpdateOrderStatus", zap.String("error", err.Error()), zap.Uint64("order_id", orderID))
		return nil, backend.MapError(err)
	}
	order.Status = status

	if err := s.invalidator.Invalidate(ctx, order.UserID); err != nil {
		logger.Warn("[UpdateOrderStatus] err invalidate history", zap.String("error", err.Error()), zap.Uint64("user_id", order.UserID))
	}
	return order, nil
}

func (s *adminAppImpl) ListUsers(ctx context.Context, sess *model.Session) ([]model.User, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := s.adminRepo.ListUsers(ctx, sess.Token)
	if err != nil {
		logger.Error("[ListUsers] err adminRepo.ListUsers", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// UpdateUserRoles replaces the roles of a user. An admin cannot drop their
// own ADMIN role.
func (s *adminAppImpl) UpdateUserRoles(ctx context.Context, sess *model.Session, userID uint64, req *model.UpdateUserRolesRequest) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if req == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validateRequest(req); err != nil {
		return err
	}
	if userID == sess.UserID && !containsRole(req.Roles, constant.RoleAdmin) {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "cannot remove your own admin role")
	}

	if err := s.adminRepo.UpdateUserRoles(ctx, sess.Token, userID, req.Roles); err != nil {
		logger.Error("[UpdateUserRoles] err adminRepo.UpdateUserRoles", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return backend.MapError(err)
	}
	return nil
}

func (s *adminAppImpl) DeleteUser(ctx context.Context, sess *model.Session, userID uint64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if userID == sess.UserID {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "cannot delete your own account")
	}

	if err := s.adminRepo.DeleteUser(ctx, sess.Token, userID); err != nil {
		logger.Error("[DeleteUser] err adminRepo.DeleteUser", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return backend.MapError(err)
	}
	return nil
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s *adminAppImpl) CreateCategory(ctx context.Context, sess *model.Session, req *model.CategoryUpsertRequest) (*model.Category, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	c, err := s.adminRepo.CreateCategory(ctx, sess.Token, req)
	if err != nil {
		logger.Error("[CreateCategory] err adminRepo.CreateCategory", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	return c, nil
}

func (s *adminAppImpl) UpdateCategory(ctx context.Context, sess *model.Session, id uint64, req *model.CategoryUpsertRequest) (*model.Category, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	c, err := s.adminRepo.UpdateCategory(ctx, sess.Token, id, req)
	if err != nil {
		logger.Error("[UpdateCategory] err adminRepo.UpdateCategory", zap.String("error", err.Error()), zap.Uint64("category_id", id))
		return nil, backend.MapError(err)
	}
	return c, nil
}

func (s *adminAppImpl) DeleteCategory(ctx context.Context, sess *model.Session, id uint64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	if err := s.adminRepo.DeleteCategory(ctx, sess.Token, id); err != nil {
		logger.Error("[DeleteCategory] err adminRepo.DeleteCategory", zap.String("error", err.Error()), zap.Uint64("category_id", id))
		return backend.MapError(err)
	}
	return nil
}

func (s *adminAppImpl) CreateBrand(ctx context.Context, sess *model.Session, req *model.BrandUpsertRequest) (*model.Brand, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	b, err := s.adminRepo.CreateBrand(ctx, sess.Token, req)
	if err != nil {
		logger.Error("[CreateBrand] err adminRepo.CreateBrand", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	return b, nil
}

func (s *adminAppImpl) UpdateBrand(ctx context.Context, sess *model.Session, id uint64, req *model.BrandUpsertRequest) (*model.Brand, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	b, err := s.adminRepo.UpdateBrand(ctx, sess.Token, id, req)
	if err != nil {
		logger.Error("[UpdateBrand] err adminRepo.UpdateBrand", zap.String("error", err.Error()), zap.Uint64("brand_id", id))
		return nil, backend.MapError(err)
	}
	return b, nil
}

func (s *adminAppImpl) DeleteBrand(ctx context.Context, sess *model.Session, id uint64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	if err := s.adminRepo.DeleteBrand(ctx, sess.Token, id); err != nil {
		logger.Error("[DeleteBrand] err adminRepo.DeleteBrand", zap.String("error", err.Error()), zap.Uint64("brand_id", id))
		return backend.MapError(err)
	}
	return nil
}

func (s *adminAppImpl) ListComments(ctx context.Context, sess *model.Session, filter *model.CommentFilter) ([]model.Comment, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &model.CommentFilter{}
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid comment status")
	}

	comments, err := s.adminRepo.ListComments(ctx, sess.Token, filter)
	if err != nil {
		logger.Error("[ListComments] err adminRepo.ListComments", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

// UpdateCommentStatus shows or hides a comment on the product page.
func (s *adminAppImpl) UpdateCommentStatus(ctx context.Context, sess *model.Session, id uint64, status constant.CommentStatus) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if !status.Valid() {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid comment status")
	}

	if err := s.adminRepo.UpdateCommentStatus(ctx, sess.Token, id, status); err != nil {
		logger.Error("[UpdateCommentStatus] err adminRepo.UpdateCommentStatus", zap.String("error", err.Error()), zap.Uint64("comment_id", id))
		return backend.MapError(err)
	}
	return nil
}

func (s *adminAppImpl) DeleteComment(ctx context.Context, sess *model.Session, id uint64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	if err := s.adminRepo.DeleteComment(ctx, sess.Token, id); err != nil {
		logger.Error("[DeleteComment] err adminRepo.DeleteComment", zap.String("error", err.Error()), zap.Uint64("comment_id", id))
		return backend.MapError(err)
	}
	return nil
}

// Dashboard aggregates every order and the user count into chart data.
func (s *adminAppImpl) Dashboard(ctx context.Context, sess *model.Session) (*model.Dashboard, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	orders, err := s.adminRepo.ListOrders(ctx, sess.Token, "")
	if err != nil {
		logger.Error("[Dashboard] err adminRepo.ListOrders", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	users, err := s.adminRepo.ListUsers(ctx, sess.Token)
	if err != nil {
		logger.Error("[Dashboard] err adminRepo.ListUsers", zap.String("error", err.Error()))
		return nil, backend.MapError(err)
	}
	return model.BuildDashboard(orders, len(users)), nil
}

// CheckoutAttempts lists the latest journaled checkout attempts of a user.
func (s *adminAppImpl) CheckoutAttempts(ctx context.Context, sess *model.Session, userID uint64) ([]model.CheckoutAttempt, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	attempts, err := s.journalRepo.ListAttempts(ctx, userID, checkoutAttemptLimit)
	if err != nil {
		logger.Error("[CheckoutAttempts] err journalRepo.ListAttempts", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return attempts, nil
}

func (s *adminAppImpl) CheckoutTransitions(ctx context.Context, sess *model.Session, attemptID string) ([]model.CheckoutTransition, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	transitions, err := s.journalRepo.ListTransitions(ctx, attemptID)
	if err != nil {
		logger.Error("[CheckoutTransitions] err journalRepo.ListTransitions", zap.String("error", err.Error()), zap.String("attempt_id", attemptID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(transitions) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return transitions, nil
}
