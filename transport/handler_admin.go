package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/model"
)

func readProduct(r *http.Request) (*model.ProductUpsertRequest, error) {
	var req model.ProductUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// AdminCreateProduct handler
// @Summary Create product
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.ProductUpsertRequest true "Product"
// @Success 200 {object} model.Product
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /admin/products [post]
func (s *RestHandler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := readProduct(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.CreateProduct(r.Context(), session(r), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminUpdateProduct handler
// @Summary Update product
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ProductUpsertRequest true "Product"
// @Success 200 {object} model.Product
// @Router /admin/products/{id} [put]
func (s *RestHandler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := readProduct(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.UpdateProduct(r.Context(), session(r), id, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminDeleteProduct handler
// @Summary Delete product
// @Tags Admin
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Router /admin/products/{id} [delete]
func (s *RestHandler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteProduct(r.Context(), session(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminListOrders handler
// @Summary List orders
// @Tags Admin
// @Produce json
// @Param status query string false "Order status"
// @Success 200 {array} model.AdminOrder
// @Router /admin/orders [get]
func (s *RestHandler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	status := constant.OrderStatus(r.URL.Query().Get("status"))

	res, err := s.AdminApp.ListOrders(r.Context(), session(r), status)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminUpdateOrderStatus handler
// @Summary Change order status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} model.AdminOrder
// @Failure 400 {object} Response
// @Router /admin/orders/{id}/status [put]
func (s *RestHandler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.UpdateOrderStatus(r.Context(), session(r), id, req.Status)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminListUsers handler
// @Summary List users
// @Tags Admin
// @Produce json
// @Success 200 {array} model.User
// @Router /admin/users [get]
func (s *RestHandler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.ListUsers(r.Context(), session(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminUpdateUserRoles handler
// @Summary Replace a user's roles
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRolesRequest true "Roles"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /admin/users/{id}/roles [put]
func (s *RestHandler) AdminUpdateUserRoles(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateUserRolesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.UpdateUserRoles(r.Context(), session(r), id, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminDeleteUser handler
// @Summary Delete user
// @Tags Admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /admin/users/{id} [delete]
func (s *RestHandler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteUser(r.Context(), session(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminCreateCategory handler
// @Summary Create category
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.CategoryUpsertRequest true "Category"
// @Success 200 {object} model.Category
// @Failure 400 {object} Response
// @Router /admin/categories [post]
func (s *RestHandler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.CreateCategory(r.Context(), session(r), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminUpdateCategory handler
// @Summary Update category
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body model.CategoryUpsertRequest true "Category"
// @Success 200 {object} model.Category
// @Router /admin/categories/{id} [put]
func (s *RestHandler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.CategoryUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.UpdateCategory(r.Context(), session(r), id, &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminDeleteCategory handler
// @Summary Delete category
// @Tags Admin
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} Response
// @Router /admin/categories/{id} [delete]
func (s *RestHandler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteCategory(r.Context(), session(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminCreateBrand handler
// @Summary Create brand
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.BrandUpsertRequest true "Brand"
// @Success 200 {object} model.Brand
// @Failure 400 {object} Response
// @Router /admin/brands [post]
func (s *RestHandler) AdminCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req model.BrandUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.CreateBrand(r.Context(), session(r), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminUpdateBrand handler
// @Summary Update brand
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param request body model.BrandUpsertRequest true "Brand"
// @Success 200 {object} model.Brand
// @Router /admin/brands/{id} [put]
func (s *RestHandler) AdminUpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.BrandUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.UpdateBrand(r.Context(), session(r), id, &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminDeleteBrand handler
// @Summary Delete brand
// @Tags Admin
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} Response
// @Router /admin/brands/{id} [delete]
func (s *RestHandler) AdminDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteBrand(r.Context(), session(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminListComments handler
// @Summary Comments awaiting moderation
// @Tags Admin
// @Produce json
// @Param productId query int false "Product ID"
// @Param status query string false "VISIBLE or HIDDEN"
// @Success 200 {array} model.Comment
// @Router /admin/comments [get]
func (s *RestHandler) AdminListComments(w http.ResponseWriter, r *http.Request) {
	filter := &model.CommentFilter{
		ProductID: queryUint(r, "productId"),
		Status:    constant.CommentStatus(r.URL.Query().Get("status")),
	}

	res, err := s.AdminApp.ListComments(r.Context(), session(r), filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminUpdateCommentStatus handler
// @Summary Show or hide a comment
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body model.UpdateCommentStatusRequest true "New status"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /admin/comments/{id}/status [put]
func (s *RestHandler) AdminUpdateCommentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateCommentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.UpdateCommentStatus(r.Context(), session(r), id, req.Status); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminDeleteComment handler
// @Summary Delete comment
// @Tags Admin
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} Response
// @Router /admin/comments/{id} [delete]
func (s *RestHandler) AdminDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteComment(r.Context(), session(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, nil)
}

// AdminDashboard handler
// @Summary Dashboard chart data
// @Tags Admin
// @Produce json
// @Success 200 {object} model.Dashboard
// @Router /admin/dashboard [get]
func (s *RestHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.Dashboard(r.Context(), session(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminCheckoutAttempts handler
// @Summary Journaled checkout attempts of a user
// @Tags Admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.CheckoutAttempt
// @Router /admin/users/{id}/checkouts [get]
func (s *RestHandler) AdminCheckoutAttempts(w http.ResponseWriter, r *http.Request) {
	id, err := pathUint(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.CheckoutAttempts(r.Context(), session(r), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// AdminCheckoutTransitions handler
// @Summary State transitions of one checkout attempt
// @Tags Admin
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {array} model.CheckoutTransition
// @Failure 404 {object} Response
// @Router /admin/checkouts/{attemptId}/transitions [get]
func (s *RestHandler) AdminCheckoutTransitions(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.CheckoutTransitions(r.Context(), session(r), mux.Vars(r)["attemptId"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}
