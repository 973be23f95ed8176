package admin_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	appadmin "github.com/muhammadheryan/watch-storefront/application/admin"
	"github.com/muhammadheryan/watch-storefront/constant"
	checkoutappmocks "github.com/muhammadheryan/watch-storefront/mocks/application/checkout"
	adminmocks "github.com/muhammadheryan/watch-storefront/mocks/repository/admin"
	journalmocks "github.com/muhammadheryan/watch-storefront/mocks/repository/journal"
	"github.com/muhammadheryan/watch-storefront/model"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	cerr "github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var (
	admin    = &model.Session{ID: "sid", UserID: 1, Token: "admin-tok", Roles: []string{constant.RoleAdmin}, IsAuthenticated: true}
	customer = &model.Session{ID: "sid", UserID: 2, Token: "tok", Roles: []string{"USER"}, IsAuthenticated: true}
)

func assertErrCode(t *testing.T, err error, want constant.ErrorType) cerr.CustomError {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
	return ce
}

func product() *model.ProductUpsertRequest {
	return &model.ProductUpsertRequest{
		Name:       "Orient Bambino",
		Price:      decimal.NewFromInt(3500000),
		Stock:      5,
		CategoryID: 1,
		BrandID:    2,
	}
}

func TestAdminApp_CreateProduct(t *testing.T) {
	type fields struct {
		adminRepo *adminmocks.AdminRepository
	}
	tests := []struct {
		name       string
		fields     fields
		sess       *model.Session
		req        *model.ProductUpsertRequest
		mockCall   func(f fields)
		wantFields []string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:   "success",
			fields: fields{adminRepo: adminmocks.NewAdminRepository(t)},
			sess:   admin,
			req:    product(),
			mockCall: func(f fields) {
				f.adminRepo.On("CreateProduct", mock.Anything, "admin-tok", mock.Anything).Return(&model.Product{ID: 11, Name: "Orient Bambino"}, nil).Once()
			},
		},
		{
			name:    "error: customer forbidden",
			fields:  fields{adminRepo: adminmocks.NewAdminRepository(t)},
			sess:    customer,
			req:     product(),
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: anonymous",
			fields:  fields{adminRepo: adminmocks.NewAdminRepository(t)},
			sess:    model.NewSession(nil),
			req:     product(),
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:   "error: zero price and missing name",
			fields: fields{adminRepo: adminmocks.NewAdminRepository(t)},
			sess:   admin,
			req: func() *model.ProductUpsertRequest {
				p := product()
				p.Name = ""
				p.Price = decimal.Zero
				return p
			}(),
			wantFields: []string{"name", "price"},
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:   "error: backend field errors",
			fields: fields{adminRepo: adminmocks.NewAdminRepository(t)},
			sess:   admin,
			req:    product(),
			mockCall: func(f fields) {
				f.adminRepo.On("CreateProduct", mock.Anything, "admin-tok", mock.Anything).
					Return(nil, &backend.APIError{StatusCode: http.StatusBadRequest, Fields: map[string]string{"name": "already exists"}}).Once()
			},
			wantFields: []string{"name"},
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appadmin.NewAdminApp(tt.fields.adminRepo, journalmocks.NewJournalRepository(t), checkoutappmocks.NewHistoryInvalidator(t))

			got, err := app.CreateProduct(context.Background(), tt.sess, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrCode(t, err, tt.errCode)
				for _, field := range tt.wantFields {
					if _, ok := ce.Fields()[field]; !ok {
						t.Fatalf("missing field error for %q in %v", field, ce.Fields())
					}
				}
				return
			}
			if got.ID != 11 {
				t.Fatalf("ID = %d, want 11", got.ID)
			}
		})
	}
}

func TestAdminApp_UpdateOrderStatus(t *testing.T) {
	type fields struct {
		adminRepo   *adminmocks.AdminRepository
		invalidator *checkoutappmocks.HistoryInvalidator
	}
	order := func(status constant.OrderStatus) *model.AdminOrder {
		return &model.AdminOrder{OrderHistoryEntry: model.OrderHistoryEntry{OrderID: 5, Status: status}, UserID: 2}
	}
	tests := []struct {
		name     string
		fields   fields
		status   constant.OrderStatus
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: waiting to confirm",
			fields: fields{adminRepo: adminmocks.NewAdminRepository(t), invalidator: checkoutappmocks.NewHistoryInvalidator(t)},
			status: constant.OrderStatusConfirm,
			mockCall: func(f fields) {
				f.adminRepo.On("GetOrder", mock.Anything, "admin-tok", uint64(5)).Return(order(constant.OrderStatusWaiting), nil).Once()
				f.adminRepo.On("UpdateOrderStatus", mock.Anything, "admin-tok", uint64(5), constant.OrderStatusConfirm).Return(nil).Once()
				f.invalidator.On("Invalidate", mock.Anything, uint64(2)).Return(nil).Once()
			},
		},
		{
			name:   "success: invalidation failure is not fatal",
			fields: fields{adminRepo: adminmocks.NewAdminRepository(t), invalidator: checkoutappmocks.NewHistoryInvalidator(t)},
			status: constant.OrderStatusSuccess,
			mockCall: func(f fields) {
				f.adminRepo.On("GetOrder", mock.Anything, "admin-tok", uint64(5)).Return(order(constant.OrderStatusDelivery), nil).Once()
				f.adminRepo.On("UpdateOrderStatus", mock.Anything, "admin-tok", uint64(5), constant.OrderStatusSuccess).Return(nil).Once()
				f.invalidator.On("Invalidate", mock.Anything, uint64(2)).Return(errors.New("broker down")).Once()
			},
		},
		{
			name:   "error: cannot skip delivery",
			fields: fields{adminRepo: adminmocks.NewAdminRepository(t), invalidator: checkoutappmocks.NewHistoryInvalidator(t)},
			status: constant.OrderStatusSuccess,
			mockCall: func(f fields) {
				f.adminRepo.On("GetOrder", mock.Anything, "admin-tok", uint64(5)).Return(order(constant.OrderStatusWaiting), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name:   "error: delivered order cannot be cancelled",
			fields: fields{adminRepo: adminmocks.NewAdminRepository(t), invalidator: checkoutappmocks.NewHistoryInvalidator(t)},
			status: constant.OrderStatusCancel,
			mockCall: func(f fields) {
				f.adminRepo.On("GetOrder", mock.Anything, "admin-tok", uint64(5)).Return(order(constant.OrderStatusDelivery), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name:    "error: unknown status",
			fields:  fields{adminRepo: adminmocks.NewAdminRepository(t), invalidator: checkoutappmocks.NewHistoryInvalidator(t)},
			status:  constant.OrderStatus("SHIPPED"),
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appadmin.NewAdminApp(tt.fields.adminRepo, journalmocks.NewJournalRepository(t), tt.fields.invalidator)

			got, err := app.UpdateOrderStatus(context.Background(), admin, 5, tt.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateOrderStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != tt.status {
				t.Fatalf("Status = %s, want %s", got.Status, tt.status)
			}
		})
	}
}

func TestAdminApp_Lists(t *testing.T) {
	repo := adminmocks.NewAdminRepository(t)
	repo.On("ListOrders", mock.Anything, "admin-tok", constant.OrderStatusWaiting).Return(nil, nil).Once()
	repo.On("ListUsers", mock.Anything, "admin-tok").Return([]model.User{{ID: 1, Username: "admin"}}, nil).Once()
	repo.On("DeleteProduct", mock.Anything, "admin-tok", uint64(3)).Return(nil).Once()
	app := appadmin.NewAdminApp(repo, journalmocks.NewJournalRepository(t), checkoutappmocks.NewHistoryInvalidator(t))
	ctx := context.Background()

	orders, err := app.ListOrders(ctx, admin, constant.OrderStatusWaiting)
	if err != nil || orders == nil {
		t.Fatalf("ListOrders() = %v, %v", orders, err)
	}
	users, err := app.ListUsers(ctx, admin)
	if err != nil || len(users) != 1 {
		t.Fatalf("ListUsers() = %v, %v", users, err)
	}
	if err := app.DeleteProduct(ctx, admin, 3); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
	if _, err := app.ListUsers(ctx, customer); !cerr.IsType(err, constant.ErrForbidden) {
		t.Fatalf("ListUsers(customer) error = %v, want forbidden", err)
	}
}

func TestAdminApp_CategoryAndBrand(t *testing.T) {
	tests := []struct {
		name       string
		sess       *model.Session
		run        func(app appadmin.AdminApp) error
		mockCall   func(repo *adminmocks.AdminRepository)
		wantFields []string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: create category",
			sess: admin,
			run: func(app appadmin.AdminApp) error {
				_, err := app.CreateCategory(context.Background(), admin, &model.CategoryUpsertRequest{Name: "Diver"})
				return err
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("CreateCategory", mock.Anything, "admin-tok", &model.CategoryUpsertRequest{Name: "Diver"}).
					Return(&model.Category{ID: 3, Name: "Diver"}, nil).Once()
			},
		},
		{
			name: "error: category without name, no backend call",
			run: func(app appadmin.AdminApp) error {
				_, err := app.UpdateCategory(context.Background(), admin, 3, &model.CategoryUpsertRequest{})
				return err
			},
			wantFields: []string{"name"},
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name: "success: delete category",
			run: func(app appadmin.AdminApp) error {
				return app.DeleteCategory(context.Background(), admin, 3)
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("DeleteCategory", mock.Anything, "admin-tok", uint64(3)).Return(nil).Once()
			},
		},
		{
			name: "error: brand with a bad image url",
			run: func(app appadmin.AdminApp) error {
				_, err := app.CreateBrand(context.Background(), admin, &model.BrandUpsertRequest{Name: "Seiko", Image: "not a url"})
				return err
			},
			wantFields: []string{"image"},
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name: "success: update brand",
			run: func(app appadmin.AdminApp) error {
				_, err := app.UpdateBrand(context.Background(), admin, 4, &model.BrandUpsertRequest{Name: "Seiko"})
				return err
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("UpdateBrand", mock.Anything, "admin-tok", uint64(4), &model.BrandUpsertRequest{Name: "Seiko"}).
					Return(&model.Brand{ID: 4, Name: "Seiko"}, nil).Once()
			},
		},
		{
			name: "error: brand still referenced by products",
			run: func(app appadmin.AdminApp) error {
				return app.DeleteBrand(context.Background(), admin, 4)
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("DeleteBrand", mock.Anything, "admin-tok", uint64(4)).
					Return(&backend.APIError{StatusCode: http.StatusConflict, Message: "Brand has products"}).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: customer cannot delete a category",
			run: func(app appadmin.AdminApp) error {
				return app.DeleteCategory(context.Background(), customer, 3)
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adminmocks.NewAdminRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appadmin.NewAdminApp(repo, journalmocks.NewJournalRepository(t), checkoutappmocks.NewHistoryInvalidator(t))

			err := tt.run(app)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			ce := assertErrCode(t, err, tt.errCode)
			for _, f := range tt.wantFields {
				if _, ok := ce.Fields()[f]; !ok {
					t.Fatalf("Fields() = %v, missing %q", ce.Fields(), f)
				}
			}
		})
	}
}

func TestAdminApp_Users(t *testing.T) {
	tests := []struct {
		name     string
		run      func(app appadmin.AdminApp) error
		mockCall func(repo *adminmocks.AdminRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: promote another user",
			run: func(app appadmin.AdminApp) error {
				return app.UpdateUserRoles(context.Background(), admin, 2, &model.UpdateUserRolesRequest{Roles: []string{"USER", "ADMIN"}})
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("UpdateUserRoles", mock.Anything, "admin-tok", uint64(2), []string{"USER", "ADMIN"}).Return(nil).Once()
			},
		},
		{
			name: "error: unknown role",
			run: func(app appadmin.AdminApp) error {
				return app.UpdateUserRoles(context.Background(), admin, 2, &model.UpdateUserRolesRequest{Roles: []string{"ROOT"}})
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: admin drops own admin role",
			run: func(app appadmin.AdminApp) error {
				return app.UpdateUserRoles(context.Background(), admin, 1, &model.UpdateUserRolesRequest{Roles: []string{"USER"}})
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: admin deletes own account",
			run: func(app appadmin.AdminApp) error {
				return app.DeleteUser(context.Background(), admin, 1)
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "success: delete another user",
			run: func(app appadmin.AdminApp) error {
				return app.DeleteUser(context.Background(), admin, 2)
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("DeleteUser", mock.Anything, "admin-tok", uint64(2)).Return(nil).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adminmocks.NewAdminRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appadmin.NewAdminApp(repo, journalmocks.NewJournalRepository(t), checkoutappmocks.NewHistoryInvalidator(t))

			err := tt.run(app)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_Comments(t *testing.T) {
	tests := []struct {
		name     string
		run      func(app appadmin.AdminApp) error
		mockCall func(repo *adminmocks.AdminRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: list hidden comments of a product",
			run: func(app appadmin.AdminApp) error {
				got, err := app.ListComments(context.Background(), admin, &model.CommentFilter{ProductID: 9, Status: constant.CommentStatusHidden})
				if err == nil && got == nil {
					t.Fatal("ListComments() returned nil slice")
				}
				return err
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("ListComments", mock.Anything, "admin-tok", &model.CommentFilter{ProductID: 9, Status: constant.CommentStatusHidden}).
					Return(nil, nil).Once()
			},
		},
		{
			name: "error: unknown filter status",
			run: func(app appadmin.AdminApp) error {
				_, err := app.ListComments(context.Background(), admin, &model.CommentFilter{Status: "SPAM"})
				return err
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "success: hide a comment",
			run: func(app appadmin.AdminApp) error {
				return app.UpdateCommentStatus(context.Background(), admin, 5, constant.CommentStatusHidden)
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("UpdateCommentStatus", mock.Anything, "admin-tok", uint64(5), constant.CommentStatusHidden).Return(nil).Once()
			},
		},
		{
			name: "error: unknown target status, no backend call",
			run: func(app appadmin.AdminApp) error {
				return app.UpdateCommentStatus(context.Background(), admin, 5, "DELETED")
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: delete of a missing comment",
			run: func(app appadmin.AdminApp) error {
				return app.DeleteComment(context.Background(), admin, 5)
			},
			mockCall: func(repo *adminmocks.AdminRepository) {
				repo.On("DeleteComment", mock.Anything, "admin-tok", uint64(5)).
					Return(&backend.APIError{StatusCode: http.StatusNotFound}).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adminmocks.NewAdminRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appadmin.NewAdminApp(repo, journalmocks.NewJournalRepository(t), checkoutappmocks.NewHistoryInvalidator(t))

			err := tt.run(app)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_Dashboard(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	order := func(status constant.OrderStatus, price int64, at time.Time) model.AdminOrder {
		return model.AdminOrder{OrderHistoryEntry: model.OrderHistoryEntry{Status: status, TotalPrice: decimal.NewFromInt(price), CreatedAt: at}}
	}

	repo := adminmocks.NewAdminRepository(t)
	repo.On("ListOrders", mock.Anything, "admin-tok", constant.OrderStatus("")).Return([]model.AdminOrder{
		order(constant.OrderStatusSuccess, 300, feb),
		order(constant.OrderStatusWaiting, 100, jan),
		order(constant.OrderStatusCancel, 999, jan),
	}, nil).Once()
	repo.On("ListUsers", mock.Anything, "admin-tok").Return([]model.User{{ID: 1}, {ID: 2}}, nil).Once()

	app := appadmin.NewAdminApp(repo, journalmocks.NewJournalRepository(t), checkoutappmocks.NewHistoryInvalidator(t))
	got, err := app.Dashboard(context.Background(), admin)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if got.TotalOrders != 3 || got.TotalUsers != 2 {
		t.Fatalf("totals = %d orders, %d users; want 3, 2", got.TotalOrders, got.TotalUsers)
	}
	if !got.Revenue.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("Revenue = %s, want 400", got.Revenue)
	}
	if got.OrdersByStatus[constant.OrderStatusCancel] != 1 {
		t.Fatalf("OrdersByStatus = %v", got.OrdersByStatus)
	}
	if len(got.MonthlyRevenue) != 2 || got.MonthlyRevenue[0].Month != "2026-01" || !got.MonthlyRevenue[0].Revenue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("MonthlyRevenue = %+v", got.MonthlyRevenue)
	}
}

func TestAdminApp_CheckoutJournal(t *testing.T) {
	t.Run("attempts of a user", func(t *testing.T) {
		journal := journalmocks.NewJournalRepository(t)
		journal.On("ListAttempts", mock.Anything, uint64(7), 20).
			Return([]model.CheckoutAttempt{{ID: "att-1", UserID: 7, State: constant.CheckoutStateReconciled}}, nil).Once()
		app := appadmin.NewAdminApp(adminmocks.NewAdminRepository(t), journal, checkoutappmocks.NewHistoryInvalidator(t))

		got, err := app.CheckoutAttempts(context.Background(), admin, 7)
		if err != nil || len(got) != 1 {
			t.Fatalf("CheckoutAttempts() = %v, %v", got, err)
		}
	})

	t.Run("transitions of an attempt", func(t *testing.T) {
		journal := journalmocks.NewJournalRepository(t)
		journal.On("ListTransitions", mock.Anything, "att-1").Return([]model.CheckoutTransition{
			{AttemptID: "att-1", FromState: constant.CheckoutStateIdle, ToState: constant.CheckoutStateSubmitting},
			{AttemptID: "att-1", FromState: constant.CheckoutStateSubmitting, ToState: constant.CheckoutStateRedirectPending},
		}, nil).Once()
		app := appadmin.NewAdminApp(adminmocks.NewAdminRepository(t), journal, checkoutappmocks.NewHistoryInvalidator(t))

		got, err := app.CheckoutTransitions(context.Background(), admin, "att-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("CheckoutTransitions() = %v, %v", got, err)
		}
	})

	t.Run("unknown attempt", func(t *testing.T) {
		journal := journalmocks.NewJournalRepository(t)
		journal.On("ListTransitions", mock.Anything, "nope").Return([]model.CheckoutTransition{}, nil).Once()
		app := appadmin.NewAdminApp(adminmocks.NewAdminRepository(t), journal, checkoutappmocks.NewHistoryInvalidator(t))

		_, err := app.CheckoutTransitions(context.Background(), admin, "nope")
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("journal down", func(t *testing.T) {
		journal := journalmocks.NewJournalRepository(t)
		journal.On("ListAttempts", mock.Anything, uint64(7), 20).Return(nil, errors.New("db down")).Once()
		app := appadmin.NewAdminApp(adminmocks.NewAdminRepository(t), journal, checkoutappmocks.NewHistoryInvalidator(t))

		_, err := app.CheckoutAttempts(context.Background(), admin, 7)
		assertErrCode(t, err, constant.ErrInternal)
	})
}
